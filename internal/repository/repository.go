package repository

import (
	"time"

	"gorm.io/gorm"
)

type Option func(*settings)

type settings struct {
	now func() time.Time
}

// WithClock replaces time.Now as the reference for past/upcoming splits.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

func newSettings(opts []Option) settings {
	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Repositories bundles every repository over one database handle.
type Repositories struct {
	Genres  GenreRepository
	Venues  VenueRepository
	Artists ArtistRepository
	Shows   ShowRepository
}

func New(db *gorm.DB, opts ...Option) *Repositories {
	genres := NewGenreRepository(db)
	return &Repositories{
		Genres:  genres,
		Venues:  NewVenueRepository(db, genres, opts...),
		Artists: NewArtistRepository(db, genres, opts...),
		Shows:   NewShowRepository(db),
	}
}
