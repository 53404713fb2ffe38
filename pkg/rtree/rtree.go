// Package rtree implements a read-only R-Tree over curated catalog entries
// (stadiums, city centers) for nearest-neighbour and radius lookups in
// degree space.
package rtree

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dhconnelly/rtreego"
	"github.com/kass/matchmap/pkg/geo"
	"github.com/kass/matchmap/pkg/models"
)

const (
	tolerance   = 1e-9
	minChildren = 4
	maxChildren = 16
	dimensions  = 2
	// candidates fetched from the tree before exact re-ranking
	nearestCandidates = 8
)

// spatialEntry wraps an entry to implement rtreego.Spatial interface
type spatialEntry struct {
	*models.CatalogEntry
	order int
	rect  *rtreego.Rect
}

func (se *spatialEntry) Bounds() *rtreego.Rect {
	return se.rect
}

// GeoIndex is an R-Tree backed catalog. It is safe for concurrent reads.
type GeoIndex struct {
	tree      *rtreego.Rtree
	mu        sync.RWMutex
	itemCount atomic.Int64
}

// Match is a catalog entry together with its distance (degrees) from the query
type Match struct {
	Entry    *models.CatalogEntry
	Distance float64
}

// NewGeoIndex creates an empty index
func NewGeoIndex() *GeoIndex {
	return &GeoIndex{
		tree: rtreego.NewTree(dimensions, minChildren, maxChildren),
	}
}

// NewGeoIndexFromEntries builds an index in one step
func NewGeoIndexFromEntries(entries []*models.CatalogEntry) (*GeoIndex, error) {
	g := NewGeoIndex()
	if err := g.IndexEntries(entries); err != nil {
		return nil, err
	}
	return g, nil
}

// IndexEntries adds entries to the index. Entries without a location are
// skipped; entries with out-of-range coordinates are rejected and reported
// together, the valid remainder is still indexed.
func (g *GeoIndex) IndexEntries(entries []*models.CatalogEntry) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var invalid []string
	base := int(g.itemCount.Load())
	count := int64(0)
	for _, entry := range entries {
		if entry == nil || entry.Location == nil {
			continue
		}
		if !geo.ValidPoint(*entry.Location) {
			invalid = append(invalid, entry.ID)
			continue
		}
		p := rtreego.Point{entry.Location.Lon, entry.Location.Lat}
		g.tree.Insert(&spatialEntry{
			CatalogEntry: entry,
			order:        base + int(count),
			rect:         p.ToRect(tolerance),
		})
		count++
	}
	g.itemCount.Add(count)

	if len(invalid) > 0 {
		return fmt.Errorf("invalid coordinates for catalog entries: %s", strings.Join(invalid, ", "))
	}
	return nil
}

// Nearest returns the entry closest to center by Euclidean distance in
// degree space. Equal distances resolve to the entry indexed first.
func (g *GeoIndex) Nearest(center models.GeoPoint) (Match, bool) {
	matches := g.NearestNeighbors(center, 1)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// NearestNeighbors returns up to n entries ordered by distance from center
func (g *GeoIndex) NearestNeighbors(center models.GeoPoint, n int) []Match {
	if n <= 0 || !geo.ValidPoint(center) {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	k := n
	if k < nearestCandidates {
		k = nearestCandidates
	}
	results := g.tree.NearestNeighbors(k, rtreego.Point{center.Lon, center.Lat})

	type ranked struct {
		Match
		order int
	}
	candidates := make([]ranked, 0, len(results))
	for _, result := range results {
		se, ok := result.(*spatialEntry)
		if !ok || se == nil {
			continue
		}
		candidates = append(candidates, ranked{
			Match: Match{Entry: se.CatalogEntry, Distance: geo.Euclidean(center, *se.Location)},
			order: se.order,
		})
	}

	// Rect distances are approximate, re-rank on exact point distance
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].order < candidates[j].order
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = c.Match
	}
	return matches
}

// QueryBox returns all entries within the given bounding box
func (g *GeoIndex) QueryBox(box models.BoundingBox) ([]*models.CatalogEntry, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bounds, err := rtreego.NewRect(
		rtreego.Point{box.BottomLeft.Lon, box.BottomLeft.Lat},
		[]float64{box.LonSpan(), box.LatSpan()},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid bounding box: %w", err)
	}

	results := g.tree.SearchIntersect(bounds)
	entries := make([]*spatialEntry, 0, len(results))
	for _, result := range results {
		se, ok := result.(*spatialEntry)
		if !ok || se == nil {
			continue
		}
		loc := se.Location
		if loc.Lat >= box.BottomLeft.Lat && loc.Lat <= box.TopRight.Lat &&
			loc.Lon >= box.BottomLeft.Lon && loc.Lon <= box.TopRight.Lon {
			entries = append(entries, se)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })
	out := make([]*models.CatalogEntry, len(entries))
	for i, se := range entries {
		out[i] = se.CatalogEntry
	}
	return out, nil
}

// QueryRadius returns all entries strictly closer than radius degrees to
// center, nearest first
func (g *GeoIndex) QueryRadius(center models.GeoPoint, radius float64) ([]Match, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", radius)
	}
	box := models.BoundingBox{
		BottomLeft: models.GeoPoint{Lon: center.Lon - radius, Lat: center.Lat - radius},
		TopRight:   models.GeoPoint{Lon: center.Lon + radius, Lat: center.Lat + radius},
	}
	entries, err := g.QueryBox(box)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, e := range entries {
		d := geo.Euclidean(center, *e.Location)
		if d < radius {
			matches = append(matches, Match{Entry: e, Distance: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Distance < matches[j].Distance })
	return matches, nil
}

// Entries returns every indexed entry in insertion order
func (g *GeoIndex) Entries() []*models.CatalogEntry {
	entries, err := g.QueryBox(models.BoundingBox{
		BottomLeft: models.GeoPoint{Lon: -181, Lat: -91},
		TopRight:   models.GeoPoint{Lon: 181, Lat: 91},
	})
	if err != nil {
		return nil
	}
	return entries
}

// Count returns the number of indexed entries
func (g *GeoIndex) Count() int64 {
	return g.itemCount.Load()
}
