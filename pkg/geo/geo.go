// Package geo holds the geometry shared by the venue components: coordinate
// validation, rounding, degree-space and great-circle distances, and the
// bounding box of a point set.
package geo

import (
	"math"

	"github.com/kass/matchmap/pkg/models"
)

const earthRadius = 6371.0 // km

// Valid reports whether lon/lat are finite and inside [-180,180] x [-90,90].
// Points failing this are excluded from every computation, never clamped.
func Valid(lon, lat float64) bool {
	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsInf(lon, 0) || math.IsInf(lat, 0) {
		return false
	}
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// ValidPoint is Valid for a GeoPoint
func ValidPoint(p models.GeoPoint) bool {
	return Valid(p.Lon, p.Lat)
}

// FromCoordinates converts a [lon, lat] pair into a point. It fails for
// anything that is not exactly two valid numbers.
func FromCoordinates(coords []float64) (models.GeoPoint, bool) {
	if len(coords) != 2 || !Valid(coords[0], coords[1]) {
		return models.GeoPoint{}, false
	}
	return models.GeoPoint{Lon: coords[0], Lat: coords[1]}, true
}

// VenuePoint returns the venue's coordinates when present and valid
func VenuePoint(v *models.Venue) (models.GeoPoint, bool) {
	if v == nil {
		return models.GeoPoint{}, false
	}
	return FromCoordinates(v.Coordinates)
}

// Round rounds v to the given number of decimal places. Negative zero is
// normalised so that rounded values format identically.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// RoundPoint rounds both axes of p
func RoundPoint(p models.GeoPoint, places int) models.GeoPoint {
	return models.GeoPoint{Lon: Round(p.Lon, places), Lat: Round(p.Lat, places)}
}

// Euclidean returns the straight-line distance between a and b in degree
// space. It deliberately ignores meridian convergence.
func Euclidean(a, b models.GeoPoint) float64 {
	dLon := a.Lon - b.Lon
	dLat := a.Lat - b.Lat
	return math.Sqrt(dLon*dLon + dLat*dLat)
}

// Distance calculates the Haversine distance between two points in kilometers
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

// Extent returns the axis-aligned bounding box of the valid points in ps.
// ok is false when no valid point exists.
func Extent(ps []models.GeoPoint) (box models.BoundingBox, ok bool) {
	for _, p := range ps {
		if !ValidPoint(p) {
			continue
		}
		if !ok {
			box = models.BoundingBox{BottomLeft: p, TopRight: p}
			ok = true
			continue
		}
		box.BottomLeft.Lon = math.Min(box.BottomLeft.Lon, p.Lon)
		box.BottomLeft.Lat = math.Min(box.BottomLeft.Lat, p.Lat)
		box.TopRight.Lon = math.Max(box.TopRight.Lon, p.Lon)
		box.TopRight.Lat = math.Max(box.TopRight.Lat, p.Lat)
	}
	return box, ok
}
