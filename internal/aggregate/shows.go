// Package aggregate shapes loaded models into view data: grouping venues by
// area, splitting shows around a reference time and counting upcoming shows.
// Every function takes the reference time explicitly so one computation never
// mixes two readings of the clock.
package aggregate

import (
	"time"

	"github.com/farellandr/fyyur/internal/models"
)

// SplitShows partitions shows into those strictly before now and those
// strictly after it. A show starting exactly at now lands in neither.
func SplitShows(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	past = make([]models.Show, 0)
	upcoming = make([]models.Show, 0)
	for _, s := range shows {
		switch {
		case s.StartTime.Before(now):
			past = append(past, s)
		case s.StartTime.After(now):
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

func CountUpcoming(shows []models.Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if s.StartTime.After(now) {
			n++
		}
	}
	return n
}
