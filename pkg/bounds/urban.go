package bounds

import "github.com/kass/matchmap/pkg/models"

type urbanCenter struct {
	name     string
	lon, lat float64
}

// urbanCenters are metropolitan areas with dense clusters of grounds
var urbanCenters = []urbanCenter{
	// Europe
	{"London", -0.1278, 51.5074},
	{"Manchester", -2.2426, 53.4808},
	{"Liverpool", -2.9916, 53.4084},
	{"Birmingham", -1.8904, 52.4862},
	{"Glasgow", -4.2518, 55.8642},
	{"Dublin", -6.2603, 53.3498},
	{"Lisbon", -9.1393, 38.7223},
	{"Porto", -8.6291, 41.1579},
	{"Madrid", -3.7038, 40.4168},
	{"Barcelona", 2.1734, 41.3851},
	{"Seville", -5.9845, 37.3891},
	{"Valencia", -0.3763, 39.4699},
	{"Paris", 2.3522, 48.8566},
	{"Lyon", 4.8357, 45.7640},
	{"Marseille", 5.3698, 43.2965},
	{"Brussels", 4.3517, 50.8503},
	{"Amsterdam", 4.9041, 52.3676},
	{"Rotterdam", 4.4777, 51.9244},
	{"Berlin", 13.4050, 52.5200},
	{"Hamburg", 9.9937, 53.5511},
	{"Munich", 11.5820, 48.1351},
	{"Cologne", 6.9603, 50.9375},
	{"Dortmund", 7.4653, 51.5136},
	{"Frankfurt", 8.6821, 50.1109},
	{"Milan", 9.1900, 45.4642},
	{"Rome", 12.4964, 41.9028},
	{"Turin", 7.6869, 45.0703},
	{"Naples", 14.2681, 40.8518},
	{"Zurich", 8.5417, 47.3769},
	{"Vienna", 16.3738, 48.2082},
	{"Prague", 14.4378, 50.0755},
	{"Warsaw", 21.0122, 52.2297},
	{"Copenhagen", 12.5683, 55.6761},
	{"Stockholm", 18.0686, 59.3293},
	{"Oslo", 10.7522, 59.9139},
	{"Athens", 23.7275, 37.9838},
	{"Istanbul", 28.9784, 41.0082},
	{"Moscow", 37.6173, 55.7558},

	// Americas
	{"New York", -74.0060, 40.7128},
	{"Los Angeles", -118.2437, 34.0522},
	{"Chicago", -87.6298, 41.8781},
	{"Toronto", -79.3832, 43.6532},
	{"Mexico City", -99.1332, 19.4326},
	{"São Paulo", -46.6333, -23.5505},
	{"Rio de Janeiro", -43.1729, -22.9068},
	{"Buenos Aires", -58.3816, -34.6037},
	{"Santiago", -70.6693, -33.4489},
	{"Bogotá", -74.0721, 4.7110},
	{"Lima", -77.0428, -12.0464},

	// Asia, Oceania, Africa
	{"Tokyo", 139.6917, 35.6895},
	{"Seoul", 126.9780, 37.5665},
	{"Shanghai", 121.4737, 31.2304},
	{"Beijing", 116.4074, 39.9042},
	{"Riyadh", 46.6753, 24.7136},
	{"Doha", 51.5310, 25.2854},
	{"Dubai", 55.2708, 25.2048},
	{"Singapore", 103.8198, 1.3521},
	{"Sydney", 151.2093, -33.8688},
	{"Melbourne", 144.9631, -37.8136},
	{"Cairo", 31.2357, 30.0444},
	{"Johannesburg", 28.0473, -26.2041},
	{"Lagos", 3.3792, 6.5244},
}

// UrbanCenters returns the built-in urban centre catalog as index entries
// tagged with the city name
func UrbanCenters() []*models.CatalogEntry {
	entries := make([]*models.CatalogEntry, len(urbanCenters))
	for i, c := range urbanCenters {
		entries[i] = &models.CatalogEntry{
			ID:       c.name,
			Value:    c.name,
			Location: &models.GeoPoint{Lon: c.lon, Lat: c.lat},
		}
	}
	return entries
}
