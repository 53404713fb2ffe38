// Package bounds frames a set of points as a map region, padding tight city
// clusters generously and spread-out regional selections less so.
package bounds

import (
	"fmt"
	"math"
	"sync"

	"github.com/kass/matchmap/pkg/geo"
	"github.com/kass/matchmap/pkg/logging"
	"github.com/kass/matchmap/pkg/models"
	"github.com/kass/matchmap/pkg/rtree"
	"github.com/sirupsen/logrus"
)

// Library defaults, applied to zero-valued Options fields
const (
	DefaultMinSpan      = 0.02
	DefaultMaxSpan      = 60.0
	DefaultBasePadding  = 1.5
	DefaultUrbanPadding = 2.0
	DefaultRuralPadding = 1.3
	DefaultSpan         = 20.0

	DefaultUrbanRadius = 0.5 // degrees
	tightThreshold     = 0.2 // spanLat + spanLng, degrees
)

// DefaultFallbackCenter is central Europe
var DefaultFallbackCenter = models.GeoPoint{Lon: 10, Lat: 50}

// Options controls AdaptiveBounds. Zero fields take the library defaults.
type Options struct {
	MinSpan float64 `mapstructure:"min_span" json:"minSpan"`
	MaxSpan float64 `mapstructure:"max_span" json:"maxSpan"`
	// BasePadding is used only when the box cannot be classified, i.e.
	// there is no urban centre catalog and the cluster is not tight
	BasePadding  float64 `mapstructure:"base_padding" json:"basePadding"`
	UrbanPadding float64 `mapstructure:"urban_padding" json:"urbanPadding"`
	RuralPadding float64 `mapstructure:"rural_padding" json:"ruralPadding"`

	FallbackCenter models.GeoPoint `mapstructure:"fallback_center" json:"fallbackCenter"`
	DefaultSpan    float64         `mapstructure:"default_span" json:"defaultSpan"`
}

// DefaultOptions returns the library defaults
func DefaultOptions() Options {
	return Options{
		MinSpan:        DefaultMinSpan,
		MaxSpan:        DefaultMaxSpan,
		BasePadding:    DefaultBasePadding,
		UrbanPadding:   DefaultUrbanPadding,
		RuralPadding:   DefaultRuralPadding,
		FallbackCenter: DefaultFallbackCenter,
		DefaultSpan:    DefaultSpan,
	}
}

func orDefault(v, def float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// normalized fills defaults and orders the span limits
func (o Options) normalized() Options {
	o.MinSpan = orDefault(o.MinSpan, DefaultMinSpan)
	o.MaxSpan = orDefault(o.MaxSpan, DefaultMaxSpan)
	if o.MinSpan > o.MaxSpan {
		o.MinSpan, o.MaxSpan = o.MaxSpan, o.MinSpan
	}
	o.BasePadding = orDefault(o.BasePadding, DefaultBasePadding)
	o.UrbanPadding = orDefault(o.UrbanPadding, DefaultUrbanPadding)
	o.RuralPadding = orDefault(o.RuralPadding, DefaultRuralPadding)
	o.DefaultSpan = orDefault(o.DefaultSpan, DefaultSpan)
	if o.FallbackCenter == (models.GeoPoint{}) || !geo.ValidPoint(o.FallbackCenter) {
		o.FallbackCenter = DefaultFallbackCenter
	}
	return o
}

func (o Options) clamp(span float64) float64 {
	return math.Max(o.MinSpan, math.Min(o.MaxSpan, span))
}

// Setting is the density classification of a bounding box
type Setting string

const (
	Urban   Setting = "urban"
	Rural   Setting = "rural"
	Unknown Setting = "unknown"
)

// Classification explains which padding a box receives
type Classification struct {
	Setting Setting `json:"setting"`
	// City is the urban centre the box centre fell near, if any
	City  string `json:"city,omitempty"`
	Tight bool   `json:"tight"`

	// ExtentKm is the great-circle length of the box diagonal
	ExtentKm float64 `json:"extentKm"`
}

// Calculator frames point sets. It is immutable after construction and
// safe for concurrent use.
type Calculator struct {
	urban       *rtree.GeoIndex
	urbanRadius float64
	logger      logrus.FieldLogger
	centers     []*models.CatalogEntry
}

// CalculatorOption configures a Calculator
type CalculatorOption func(*Calculator)

// WithUrbanCenters replaces the built-in urban centre catalog. An empty
// catalog disables location-based classification.
func WithUrbanCenters(entries []*models.CatalogEntry) CalculatorOption {
	return func(c *Calculator) {
		c.centers = entries
	}
}

// WithUrbanRadius sets how close, in degrees, a box centre must be to an
// urban centre
func WithUrbanRadius(deg float64) CalculatorOption {
	return func(c *Calculator) {
		if deg > 0 {
			c.urbanRadius = deg
		}
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(l logrus.FieldLogger) CalculatorOption {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCalculator builds a calculator over the built-in urban centres unless
// WithUrbanCenters says otherwise
func NewCalculator(opts ...CalculatorOption) (*Calculator, error) {
	c := &Calculator{
		urbanRadius: DefaultUrbanRadius,
		logger:      logging.Discard(),
		centers:     UrbanCenters(),
	}
	for _, opt := range opts {
		opt(c)
	}

	urban, err := rtree.NewGeoIndexFromEntries(c.centers)
	if err != nil {
		return nil, fmt.Errorf("build urban centre catalog: %w", err)
	}
	c.urban = urban
	c.centers = nil
	return c, nil
}

var (
	defaultCalculator *Calculator
	defaultOnce       sync.Once
)

// Default returns the shared calculator over the built-in urban centres
func Default() *Calculator {
	defaultOnce.Do(func() {
		c, err := NewCalculator()
		if err != nil {
			panic(err)
		}
		defaultCalculator = c
	})
	return defaultCalculator
}

// Classify decides whether box is an urban cluster. A box is urban when
// its centre lies within the urban radius of a catalogued city or when it
// is tight enough to be a city on its own.
func (c *Calculator) Classify(box models.BoundingBox) Classification {
	cls := Classification{
		Setting:  Unknown,
		Tight:    box.LatSpan()+box.LonSpan() < tightThreshold,
		ExtentKm: geo.Distance(box.BottomLeft.Lat, box.BottomLeft.Lon, box.TopRight.Lat, box.TopRight.Lon),
	}

	if c.urban.Count() > 0 {
		cls.Setting = Rural
		matches, err := c.urban.QueryRadius(box.Center(), c.urbanRadius)
		if err == nil && len(matches) > 0 {
			cls.Setting = Urban
			cls.City = matches[0].Entry.ID
		}
	}
	if cls.Tight {
		cls.Setting = Urban
	}
	return cls
}

// Frame computes the region for points along with the classification that
// chose its padding. Invalid points are ignored; with no valid point the
// fallback region is returned and the classification is Unknown.
func (c *Calculator) Frame(points []models.GeoPoint, opts Options) (models.MapRegion, Classification) {
	opts = opts.normalized()

	box, ok := geo.Extent(points)
	if !ok {
		c.logger.WithField("points", len(points)).Debug("no valid points, using fallback region")
		span := opts.clamp(opts.DefaultSpan)
		return models.MapRegion{
			Center:        opts.FallbackCenter,
			LatitudeSpan:  span,
			LongitudeSpan: span,
		}, Classification{Setting: Unknown}
	}

	cls := c.Classify(box)
	padding := opts.BasePadding
	switch cls.Setting {
	case Urban:
		padding = opts.UrbanPadding
	case Rural:
		padding = opts.RuralPadding
	}

	region := models.MapRegion{
		Center:        box.Center(),
		LatitudeSpan:  opts.clamp(box.LatSpan() * padding),
		LongitudeSpan: opts.clamp(box.LonSpan() * padding),
	}
	c.logger.WithFields(logrus.Fields{
		"setting":  cls.Setting,
		"city":     cls.City,
		"padding":  padding,
		"extentKm": math.Round(cls.ExtentKm),
	}).Debug("framed points")
	return region, cls
}

// AdaptiveBounds returns the map region framing points
func (c *Calculator) AdaptiveBounds(points []models.GeoPoint, opts Options) models.MapRegion {
	region, _ := c.Frame(points, opts)
	return region
}

// AdaptiveBounds frames points with the default calculator
func AdaptiveBounds(points []models.GeoPoint, opts Options) models.MapRegion {
	return Default().AdaptiveBounds(points, opts)
}

// Classify classifies box with the default calculator
func Classify(box models.BoundingBox) Classification {
	return Default().Classify(box)
}
