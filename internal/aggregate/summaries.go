package aggregate

import (
	"strings"
	"time"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/models"
)

func VenueSummary(v *models.Venue, now time.Time) dto.VenueSummary {
	return dto.VenueSummary{
		ID:               v.ID,
		Name:             v.Name,
		NumUpcomingShows: CountUpcoming(v.Shows, now),
	}
}

func ArtistSummary(a *models.Artist, now time.Time) dto.ArtistSummary {
	return dto.ArtistSummary{
		ID:               a.ID,
		Name:             a.Name,
		NumUpcomingShows: CountUpcoming(a.Shows, now),
	}
}

func VenueSearch(venues []models.Venue, now time.Time) dto.VenueSearchResult {
	res := dto.VenueSearchResult{Data: make([]dto.VenueSummary, 0, len(venues))}
	for i := range venues {
		res.Data = append(res.Data, VenueSummary(&venues[i], now))
	}
	res.Count = len(res.Data)
	return res
}

func ArtistSearch(artists []models.Artist, now time.Time) dto.ArtistSearchResult {
	res := dto.ArtistSearchResult{Data: make([]dto.ArtistSummary, 0, len(artists))}
	for i := range artists {
		res.Data = append(res.Data, ArtistSummary(&artists[i], now))
	}
	res.Count = len(res.Data)
	return res
}

// MatchesName reports whether term occurs in name, ignoring case.
func MatchesName(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// DedupeNames drops blank and repeated names, keeping first-seen order.
func DedupeNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
