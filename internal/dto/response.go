package dto

import (
	"time"

	"github.com/farellandr/fyyur/internal/models"
)

type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing one (state, city) pair.
type Area struct {
	State  string         `json:"state"`
	City   string         `json:"city"`
	Venues []VenueSummary `json:"venues"`
}

type VenueSearchResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

type ArtistSearchResult struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// VenueShow is a show listed on a venue page, annotated with its artist.
type VenueShow struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShow is a show listed on an artist page, annotated with its venue.
type ArtistShow struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint        `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	ID                 uint         `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ShowListing is one row of the all-shows page.
type ShowListing struct {
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// DeleteResult is the soft outcome of a delete; failures are reported here
// rather than as an error so callers can choose how to respond.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func ToVenueShow(s *models.Show) VenueShow {
	out := VenueShow{ArtistID: s.ArtistID, StartTime: s.StartTime}
	if s.Artist != nil {
		out.ArtistName = s.Artist.Name
		out.ArtistImageLink = s.Artist.ImageLink
	}
	return out
}

func ToArtistShow(s *models.Show) ArtistShow {
	out := ArtistShow{VenueID: s.VenueID, StartTime: s.StartTime}
	if s.Venue != nil {
		out.VenueName = s.Venue.Name
		out.VenueImageLink = s.Venue.ImageLink
	}
	return out
}

func ToShowListing(s *models.Show) ShowListing {
	out := ShowListing{VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.StartTime}
	if s.Venue != nil {
		out.VenueName = s.Venue.Name
	}
	if s.Artist != nil {
		out.ArtistName = s.Artist.Name
		out.ArtistImageLink = s.Artist.ImageLink
	}
	return out
}
