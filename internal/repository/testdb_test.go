package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/farellandr/fyyur/config"
	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixedNow is the reference clock for every repository under test.
var fixedNow = time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// newTestDB opens a throwaway SQLite file with foreign keys on. Writers take
// the lock at BEGIN so concurrent tests queue instead of deadlocking.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fyyur.db")
	dsn := "file:" + path + "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func newTestRepos(t *testing.T) (*gorm.DB, *Repositories) {
	t.Helper()
	db := newTestDB(t)
	return db, New(db, WithClock(clock))
}

func musicalHop() dto.VenueFields {
	return dto.VenueFields{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		ImageLink:          "https://images.example.com/musical-hop.jpg",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		Website:            "https://www.themusicalhop.com",
		SeekingTalent:      "y",
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks.",
	}
}

func gunsNPetals() dto.ArtistFields {
	return dto.ArtistFields{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		ImageLink:          "https://images.example.com/guns-n-petals.jpg",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		Website:            "https://www.gunsnpetalsband.com",
		SeekingVenue:       "y",
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	}
}

func venueNamed(name, state, city string) dto.VenueFields {
	return dto.VenueFields{Name: name, State: state, City: city}
}

func artistNamed(name string) dto.ArtistFields {
	return dto.ArtistFields{Name: name, City: "San Francisco", State: "CA"}
}

func mustCreateVenue(t *testing.T, repos *Repositories, f dto.VenueFields, genres ...string) *models.Venue {
	t.Helper()
	v, err := repos.Venues.Create(context.Background(), f, genres)
	require.NoError(t, err)
	return v
}

func mustCreateArtist(t *testing.T, repos *Repositories, f dto.ArtistFields, genres ...string) *models.Artist {
	t.Helper()
	a, err := repos.Artists.Create(context.Background(), f, genres)
	require.NoError(t, err)
	return a
}

func mustCreateShow(t *testing.T, repos *Repositories, venueID, artistID uint, offset time.Duration) *models.Show {
	t.Helper()
	s, err := repos.Shows.Create(context.Background(), venueID, artistID, fixedNow.Add(offset))
	require.NoError(t, err)
	return s
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
