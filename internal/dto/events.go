package dto

import "time"

// Message payloads published after successful writes.

type VenueCreatedEvent struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	City   string   `json:"city"`
	State  string   `json:"state"`
	Genres []string `json:"genres"`
}

type ArtistCreatedEvent struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	City   string   `json:"city"`
	State  string   `json:"state"`
	Genres []string `json:"genres"`
}

type ShowCreatedEvent struct {
	ID        uint      `json:"id"`
	VenueID   uint      `json:"venue_id"`
	ArtistID  uint      `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

type DeletedEvent struct {
	ID uint `json:"id"`
}
