package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// GeoPoint represents a geographic coordinate in degrees
type GeoPoint struct {
	Lon float64 `json:"longitude"`
	Lat float64 `json:"latitude"`
}

// BoundingBox represents a rectangular area defined by two corners
type BoundingBox struct {
	BottomLeft GeoPoint
	TopRight   GeoPoint
}

// Center returns the midpoint of the box
func (b BoundingBox) Center() GeoPoint {
	return GeoPoint{
		Lon: (b.BottomLeft.Lon + b.TopRight.Lon) / 2,
		Lat: (b.BottomLeft.Lat + b.TopRight.Lat) / 2,
	}
}

// LatSpan returns the height of the box in degrees
func (b BoundingBox) LatSpan() float64 { return b.TopRight.Lat - b.BottomLeft.Lat }

// LonSpan returns the width of the box in degrees
func (b BoundingBox) LonSpan() float64 { return b.TopRight.Lon - b.BottomLeft.Lon }

// VenueID is a venue identifier that upstream records carry as either a
// string or a number.
type VenueID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *VenueID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("venue id: %w", err)
		}
		*id = VenueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("venue id must be a string or number: %w", err)
	}
	*id = VenueID(n.String())
	return nil
}

// Present reports whether the id carries a usable value. The literal
// strings "null" and "undefined" leak out of some upstream serializers and
// count as absent.
func (id VenueID) Present() bool {
	s := strings.TrimSpace(string(id))
	return s != "" && s != "null" && s != "undefined"
}

// Venue is a stadium record as supplied by upstream collaborators.
// Every field is optional.
type Venue struct {
	ID          VenueID   `json:"id,omitempty"`
	Name        string    `json:"name,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"` // [longitude, latitude]
}

// Fixture carries the kick-off date, an optional claimed zone and venue.
type Fixture struct {
	Date     string `json:"date"`
	Timezone string `json:"timezone,omitempty"`
	Venue    *Venue `json:"venue,omitempty"`
}

// VenueCity returns the venue city or "" when there is no venue
func (f *Fixture) VenueCity() string {
	if f == nil || f.Venue == nil {
		return ""
	}
	return f.Venue.City
}

// Team is the minimal team shape carried on a match
type Team struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Name string          `json:"name,omitempty"`
}

// Teams holds both sides of a match
type Teams struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

// Match is an upstream match record. Fields beyond the fixture are carried
// through untouched.
type Match struct {
	Fixture Fixture `json:"fixture"`
	Teams   Teams   `json:"teams"`
}

// ResolvedTimezone is the outcome of timezone resolution. ZoneID is always
// a member of the recognized zone allow-list.
type ResolvedTimezone struct {
	ZoneID      string  `json:"zoneId"`
	IsValidated bool    `json:"isValidated"`
	Source      string  `json:"source"`
	CatalogName string  `json:"catalogName,omitempty"`
	Distance    float64 `json:"distance,omitempty"`
}

// MapRegion is a camera viewport: a center plus spans in degrees
type MapRegion struct {
	Center        GeoPoint `json:"center"`
	LatitudeSpan  float64  `json:"latitudeSpan"`
	LongitudeSpan float64  `json:"longitudeSpan"`
}

// CatalogEntry is a named coordinate tagged with a value, e.g. a stadium
// tagged with its zone or a city center tagged with its name.
type CatalogEntry struct {
	ID       string    `json:"id"`
	Value    string    `json:"value"`
	Location *GeoPoint `json:"location"`
}
