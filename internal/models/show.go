package models

import "time"

// Show is one booking: a single artist performing at a single venue.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	Venue     *Venue    `json:"venue,omitempty"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	Artist    *Artist   `json:"artist,omitempty"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
}

func (Show) TableName() string {
	return "shows"
}
