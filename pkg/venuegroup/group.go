// Package venuegroup keys matches by the stadium they are played at so a map
// can render one marker per venue.
package venuegroup

import (
	"strconv"

	"github.com/kass/matchmap/pkg/geo"
	"github.com/kass/matchmap/pkg/models"
)

const (
	geoPrefix = "geo:"
	idPrefix  = "id:"

	// ~0.1 m, tolerates float noise between records of the same stadium
	keyPrecision = 6
)

// GroupKey returns the grouping key for a match. Coordinates win over the
// venue id since two venue records can describe the same stadium. ok is
// false when the match cannot be grouped.
func GroupKey(m *models.Match) (key string, ok bool) {
	if m == nil || m.Fixture.Venue == nil {
		return "", false
	}
	v := m.Fixture.Venue

	if p, ok := geo.VenuePoint(v); ok {
		p = geo.RoundPoint(p, keyPrecision)
		return geoPrefix + formatCoord(p.Lon) + "," + formatCoord(p.Lat), true
	}
	if v.ID.Present() {
		return idPrefix + string(v.ID), true
	}
	return "", false
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// VenueGroup is one marker: the venue of the first match seen under Key and
// every match sharing that key, in input order.
type VenueGroup struct {
	Key     string         `json:"key"`
	Venue   models.Venue   `json:"venue"`
	Matches []models.Match `json:"matches"`
}

// Groups is the ordered result of GroupMatches
type Groups []VenueGroup

// GroupMatches partitions matches by GroupKey. Groups appear in the order
// their key was first seen; ungroupable matches are dropped.
func GroupMatches(matches []models.Match) Groups {
	groups := Groups{}
	index := make(map[string]int)

	for i := range matches {
		m := &matches[i]
		key, ok := GroupKey(m)
		if !ok {
			continue
		}
		if at, seen := index[key]; seen {
			groups[at].Matches = append(groups[at].Matches, *m)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, VenueGroup{
			Key:     key,
			Venue:   *m.Fixture.Venue,
			Matches: []models.Match{*m},
		})
	}
	return groups
}

// Lookup returns the group stored under key
func (g Groups) Lookup(key string) (VenueGroup, bool) {
	for _, group := range g {
		if group.Key == key {
			return group, true
		}
	}
	return VenueGroup{}, false
}

// Keys returns the group keys in order
func (g Groups) Keys() []string {
	keys := make([]string, len(g))
	for i, group := range g {
		keys[i] = group.Key
	}
	return keys
}

// Len returns the total number of grouped matches
func (g Groups) Len() int {
	n := 0
	for _, group := range g {
		n += len(group.Matches)
	}
	return n
}
