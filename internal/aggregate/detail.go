package aggregate

import (
	"time"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/models"
)

// VenueDetail expects v.Shows to be loaded with their Artist and v.Genres
// with their names.
func VenueDetail(v *models.Venue, now time.Time) dto.VenueDetail {
	past, upcoming := SplitShows(v.Shows, now)

	d := dto.VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             models.GenreNames(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          make([]dto.VenueShow, 0, len(past)),
		UpcomingShows:      make([]dto.VenueShow, 0, len(upcoming)),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	for i := range past {
		d.PastShows = append(d.PastShows, dto.ToVenueShow(&past[i]))
	}
	for i := range upcoming {
		d.UpcomingShows = append(d.UpcomingShows, dto.ToVenueShow(&upcoming[i]))
	}
	return d
}

func ArtistDetail(a *models.Artist, now time.Time) dto.ArtistDetail {
	past, upcoming := SplitShows(a.Shows, now)

	d := dto.ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             models.GenreNames(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          make([]dto.ArtistShow, 0, len(past)),
		UpcomingShows:      make([]dto.ArtistShow, 0, len(upcoming)),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	for i := range past {
		d.PastShows = append(d.PastShows, dto.ToArtistShow(&past[i]))
	}
	for i := range upcoming {
		d.UpcomingShows = append(d.UpcomingShows, dto.ToArtistShow(&upcoming[i]))
	}
	return d
}
