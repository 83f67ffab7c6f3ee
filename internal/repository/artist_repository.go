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

type ArtistRepository interface {
	FindAll(ctx context.Context) ([]dto.ArtistSummary, error)
	Search(ctx context.Context, term string) (dto.ArtistSearchResult, error)
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	Detail(ctx context.Context, id uint) (*dto.ArtistDetail, error)
	Create(ctx context.Context, fields dto.ArtistFields, genreNames []string) (*models.Artist, error)
	Update(ctx context.Context, id uint, fields dto.ArtistFields, genreNames []string) (*models.Artist, error)
	Delete(ctx context.Context, id uint) (dto.DeleteResult, error)
}

type artistRepository struct {
	db     *gorm.DB
	genres GenreRepository
	now    func() time.Time
}

func NewArtistRepository(db *gorm.DB, genres GenreRepository, opts ...Option) ArtistRepository {
	s := newSettings(opts)
	return &artistRepository{db: db, genres: genres, now: s.now}
}

func applyArtistFields(a *models.Artist, f dto.ArtistFields) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.Website = f.Website
	a.SeekingVenue = models.ParseSeekingFlag(f.SeekingVenue)
	a.SeekingDescription = f.SeekingDescription
}

func (r *artistRepository) FindAll(ctx context.Context) ([]dto.ArtistSummary, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Preload("Shows").Order("id ASC").Find(&artists).Error; err != nil {
		return nil, wrapErr("list artists", err)
	}

	now := r.now()
	out := make([]dto.ArtistSummary, 0, len(artists))
	for i := range artists {
		out = append(out, aggregate.ArtistSummary(&artists[i], now))
	}
	return out, nil
}

func (r *artistRepository) Search(ctx context.Context, term string) (dto.ArtistSearchResult, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Preload("Shows").Order("id ASC").Find(&artists).Error; err != nil {
		return dto.ArtistSearchResult{}, wrapErr("search artists", err)
	}

	matched := artists[:0]
	for _, a := range artists {
		if aggregate.MatchesName(a.Name, term) {
			matched = append(matched, a)
		}
	}
	return aggregate.ArtistSearch(matched, r.now()), nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).Preload("Genres", orderByName).First(&artist, id).Error; err != nil {
		return nil, wrapErr(fmt.Sprintf("find artist %d", id), err)
	}
	return &artist, nil
}

func (r *artistRepository) Detail(ctx context.Context, id uint) (*dto.ArtistDetail, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).
		Preload("Genres", orderByName).
		Preload("Shows", orderByStartTime).
		Preload("Shows.Venue").
		First(&artist, id).Error
	if err != nil {
		return nil, wrapErr(fmt.Sprintf("artist detail %d", id), err)
	}

	detail := aggregate.ArtistDetail(&artist, r.now())
	return &detail, nil
}

func (r *artistRepository) Create(ctx context.Context, fields dto.ArtistFields, genreNames []string) (*models.Artist, error) {
	var artist models.Artist

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := r.genres.Resolve(ctx, tx, genreNames)
		if err != nil {
			return err
		}

		applyArtistFields(&artist, fields)
		artist.Genres = genres
		return tx.Omit("Genres.*").Create(&artist).Error
	})
	if err != nil {
		return nil, wrapErr("create artist", err)
	}
	return &artist, nil
}

func (r *artistRepository) Update(ctx context.Context, id uint, fields dto.ArtistFields, genreNames []string) (*models.Artist, error) {
	var artist models.Artist

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}

		genres, err := r.genres.Resolve(ctx, tx, genreNames)
		if err != nil {
			return err
		}

		applyArtistFields(&artist, fields)
		if err := tx.Omit(clause.Associations).Save(&artist).Error; err != nil {
			return err
		}
		if err := replaceGenres(tx, &artist, genres); err != nil {
			return err
		}
		artist.Genres = genres
		return nil
	})
	if err != nil {
		return nil, wrapErr(fmt.Sprintf("update artist %d", id), err)
	}
	return &artist, nil
}

// Delete follows the same cascade as venues: shows and genre links go with
// the artist, all in one transaction.
func (r *artistRepository) Delete(ctx context.Context, id uint) (dto.DeleteResult, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeleteResult{}, wrapErr(fmt.Sprintf("delete artist %d", id), err)
		}
		log.Printf("delete artist %d: lookup: %v", id, err)
		return dto.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("An error has occurred. Artist %d has not been deleted.", id),
		}, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", artist.ID).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&artist).Association("Genres").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&artist)
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
			return dto.DeleteResult{}, wrapErr(fmt.Sprintf("delete artist %d", id), err)
		}
		log.Printf("delete artist %d: %v", id, err)
		return dto.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("An error has occurred. %s has not been deleted.", artist.Name),
		}, nil
	}

	return dto.DeleteResult{
		Success: true,
		Message: fmt.Sprintf("%s has successfully been deleted.", artist.Name),
	}, nil
}
