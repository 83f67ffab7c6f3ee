package repository

import (
	"context"
	"fmt"

	"github.com/farellandr/fyyur/internal/aggregate"
	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenreRepository interface {
	Resolve(ctx context.Context, tx *gorm.DB, names []string) ([]models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

// Resolve returns one Genre per distinct name, creating the missing ones
// inside tx. The insert skips names that already exist (unique index on
// genres.name), so two writers introducing the same name end up sharing a
// single row instead of racing a lookup against an insert.
func (r *genreRepository) Resolve(ctx context.Context, tx *gorm.DB, names []string) ([]models.Genre, error) {
	names = aggregate.DedupeNames(names)
	if len(names) == 0 {
		return []models.Genre{}, nil
	}

	rows := make([]models.Genre, len(names))
	for i, name := range names {
		rows[i] = models.Genre{Name: name}
	}
	if err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&rows).Error; err != nil {
		return nil, err
	}

	var found []models.Genre
	if err := tx.WithContext(ctx).Where("name IN ?", names).Find(&found).Error; err != nil {
		return nil, err
	}

	byName := make(map[string]models.Genre, len(found))
	for _, g := range found {
		byName[g.Name] = g
	}
	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		g, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("genre %q missing after upsert: %w", name, ErrPersistence)
		}
		genres = append(genres, g)
	}
	return genres, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error; err != nil {
		return nil, wrapErr("list genres", err)
	}
	return genres, nil
}
