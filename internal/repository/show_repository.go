package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, venueID, artistID uint, startTime time.Time) (*models.Show, error)
	FindAll(ctx context.Context) ([]dto.ShowListing, error)
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

// Create books artistID at venueID. Either id failing to resolve is a
// conflict and nothing is written.
func (r *showRepository) Create(ctx context.Context, venueID, artistID uint, startTime time.Time) (*models.Show, error) {
	show := models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Venue{}, venueID); err != nil {
			return fmt.Errorf("venue %d: %w", venueID, err)
		}
		if err := mustExist(tx, &models.Artist{}, artistID); err != nil {
			return fmt.Errorf("artist %d: %w", artistID, err)
		}
		return tx.Create(&show).Error
	})
	if err != nil {
		return nil, wrapErr("create show", err)
	}
	return &show, nil
}

// mustExist maps a missing referenced row to ErrConflict.
func mustExist(tx *gorm.DB, model any, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrConflict
	}
	return nil
}

func (r *showRepository) FindAll(ctx context.Context) ([]dto.ShowListing, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Order("start_time ASC, id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, wrapErr("list shows", err)
	}

	out := make([]dto.ShowListing, 0, len(shows))
	for i := range shows {
		out = append(out, dto.ToShowListing(&shows[i]))
	}
	return out, nil
}
