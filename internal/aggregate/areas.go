package aggregate

import (
	"sort"
	"time"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/models"
)

type areaKey struct {
	state string
	city  string
}

// GroupByArea groups venues by (state, city). Input order is not assumed:
// the distinct pairs are collected first, sorted by state then city, and each
// pair then picks its venues out of the full list in their original order.
func GroupByArea(venues []models.Venue, now time.Time) []dto.Area {
	seen := make(map[areaKey]struct{})
	keys := make([]areaKey, 0)
	for _, v := range venues {
		k := areaKey{state: v.State, city: v.City}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].city < keys[j].city
	})

	areas := make([]dto.Area, 0, len(keys))
	for _, k := range keys {
		area := dto.Area{State: k.state, City: k.city, Venues: make([]dto.VenueSummary, 0)}
		for i := range venues {
			if venues[i].State == k.state && venues[i].City == k.city {
				area.Venues = append(area.Venues, VenueSummary(&venues[i], now))
			}
		}
		areas = append(areas, area)
	}
	return areas
}
