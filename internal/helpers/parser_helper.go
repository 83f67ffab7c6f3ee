package helpers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/gin-gonic/gin"
)

var ErrInvalidStartTime = errors.New("invalid start time")

// startTimeLayouts are tried in order. Layouts without a zone are read as UTC.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

func StringToUint(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartTime, s)
}

// FormGenres collects the submitted genre names. Both repeated "genres"
// fields and indexed "genres[0]", "genres[1]"... fields are accepted.
func FormGenres(c *gin.Context) []string {
	genres := c.PostFormArray("genres")
	if len(genres) > 0 {
		return genres
	}
	genres = c.PostFormArray("genres[]")
	if len(genres) > 0 {
		return genres
	}
	for i := 0; ; i++ {
		genre := c.PostForm(fmt.Sprintf("genres[%d]", i))
		if genre == "" {
			break
		}
		genres = append(genres, genre)
	}
	return genres
}

func ParseVenueForm(c *gin.Context) (dto.VenueFields, []string) {
	fields := dto.VenueFields{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Address:            c.PostForm("address"),
		Phone:              c.PostForm("phone"),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website_link"),
		SeekingTalent:      c.PostForm("seeking_talent"),
		SeekingDescription: c.PostForm("seeking_description"),
	}
	return fields, FormGenres(c)
}

func ParseArtistForm(c *gin.Context) (dto.ArtistFields, []string) {
	fields := dto.ArtistFields{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Phone:              c.PostForm("phone"),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website_link"),
		SeekingVenue:       c.PostForm("seeking_venue"),
		SeekingDescription: c.PostForm("seeking_description"),
	}
	return fields, FormGenres(c)
}
