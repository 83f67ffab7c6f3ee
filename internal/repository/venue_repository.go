package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/farellandr/fyyur/internal/aggregate"
	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository interface {
	ListGroupedByArea(ctx context.Context) ([]dto.Area, error)
	Search(ctx context.Context, term string) (dto.VenueSearchResult, error)
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	Detail(ctx context.Context, id uint) (*dto.VenueDetail, error)
	Create(ctx context.Context, fields dto.VenueFields, genreNames []string) (*models.Venue, error)
	Update(ctx context.Context, id uint, fields dto.VenueFields, genreNames []string) (*models.Venue, error)
	Delete(ctx context.Context, id uint) (dto.DeleteResult, error)
}

type venueRepository struct {
	db     *gorm.DB
	genres GenreRepository
	now    func() time.Time
}

func NewVenueRepository(db *gorm.DB, genres GenreRepository, opts ...Option) VenueRepository {
	s := newSettings(opts)
	return &venueRepository{db: db, genres: genres, now: s.now}
}

func applyVenueFields(v *models.Venue, f dto.VenueFields) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.Website = f.Website
	v.SeekingTalent = models.ParseSeekingFlag(f.SeekingTalent)
	v.SeekingDescription = f.SeekingDescription
}

func (r *venueRepository) ListGroupedByArea(ctx context.Context) ([]dto.Area, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Preload("Shows").Order("id ASC").Find(&venues).Error; err != nil {
		return nil, wrapErr("list venues", err)
	}
	return aggregate.GroupByArea(venues, r.now()), nil
}

func (r *venueRepository) Search(ctx context.Context, term string) (dto.VenueSearchResult, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Preload("Shows").Order("id ASC").Find(&venues).Error; err != nil {
		return dto.VenueSearchResult{}, wrapErr("search venues", err)
	}

	// Matching happens here rather than in SQL: database LOWER folds only
	// ASCII on SQLite and on C-collated Postgres.
	matched := venues[:0]
	for _, v := range venues {
		if aggregate.MatchesName(v.Name, term) {
			matched = append(matched, v)
		}
	}
	return aggregate.VenueSearch(matched, r.now()), nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).Preload("Genres", orderByName).First(&venue, id).Error; err != nil {
		return nil, wrapErr(fmt.Sprintf("find venue %d", id), err)
	}
	return &venue, nil
}

func (r *venueRepository) Detail(ctx context.Context, id uint) (*dto.VenueDetail, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Genres", orderByName).
		Preload("Shows", orderByStartTime).
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		return nil, wrapErr(fmt.Sprintf("venue detail %d", id), err)
	}

	detail := aggregate.VenueDetail(&venue, r.now())
	return &detail, nil
}

func (r *venueRepository) Create(ctx context.Context, fields dto.VenueFields, genreNames []string) (*models.Venue, error) {
	var venue models.Venue

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := r.genres.Resolve(ctx, tx, genreNames)
		if err != nil {
			return err
		}

		applyVenueFields(&venue, fields)
		venue.Genres = genres

		// Genres already exist; only the venue_genres links are written.
		return tx.Omit("Genres.*").Create(&venue).Error
	})
	if err != nil {
		return nil, wrapErr("create venue", err)
	}
	return &venue, nil
}

func (r *venueRepository) Update(ctx context.Context, id uint, fields dto.VenueFields, genreNames []string) (*models.Venue, error) {
	var venue models.Venue

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}

		genres, err := r.genres.Resolve(ctx, tx, genreNames)
		if err != nil {
			return err
		}

		applyVenueFields(&venue, fields)
		if err := tx.Omit(clause.Associations).Save(&venue).Error; err != nil {
			return err
		}
		if err := replaceGenres(tx, &venue, genres); err != nil {
			return err
		}
		venue.Genres = genres
		return nil
	})
	if err != nil {
		return nil, wrapErr(fmt.Sprintf("update venue %d", id), err)
	}
	return &venue, nil
}

// Delete removes the venue, its shows and its genre links in one
// transaction. Missing ids return ErrNotFound; any other failure rolls back
// and is reported through the result.
func (r *venueRepository) Delete(ctx context.Context, id uint) (dto.DeleteResult, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeleteResult{}, wrapErr(fmt.Sprintf("delete venue %d", id), err)
		}
		log.Printf("delete venue %d: lookup: %v", id, err)
		return dto.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("An error has occurred. Venue %d has not been deleted.", id),
		}, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venue.ID).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&venue).Association("Genres").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&venue)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeleteResult{}, wrapErr(fmt.Sprintf("delete venue %d", id), err)
		}
		log.Printf("delete venue %d: %v", id, err)
		return dto.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("An error has occurred. %s has not been deleted.", venue.Name),
		}, nil
	}

	return dto.DeleteResult{
		Success: true,
		Message: fmt.Sprintf("%s has successfully been deleted.", venue.Name),
	}, nil
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

func orderByStartTime(db *gorm.DB) *gorm.DB {
	return db.Order("start_time ASC, id ASC")
}

// replaceGenres swaps the owner's whole genre set for genres.
func replaceGenres(tx *gorm.DB, owner any, genres []models.Genre) error {
	assoc := tx.Model(owner).Association("Genres")
	if len(genres) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(genres)
}
