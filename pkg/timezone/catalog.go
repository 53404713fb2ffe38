package timezone

import (
	"time"
	_ "time/tzdata"

	"github.com/kass/matchmap/pkg/models"
)

// Catalog tables are read-only after package initialisation.

// recognizedZones is the allow-list every resolved zone must belong to.
var recognizedZones = map[string]bool{
	"UTC": true,

	"Europe/London": true, "Europe/Dublin": true, "Europe/Lisbon": true,
	"Europe/Madrid": true, "Europe/Paris": true, "Europe/Brussels": true,
	"Europe/Amsterdam": true, "Europe/Berlin": true, "Europe/Rome": true,
	"Europe/Zurich": true, "Europe/Vienna": true, "Europe/Prague": true,
	"Europe/Warsaw": true, "Europe/Copenhagen": true, "Europe/Stockholm": true,
	"Europe/Oslo": true, "Europe/Helsinki": true, "Europe/Athens": true,
	"Europe/Istanbul": true, "Europe/Moscow": true, "Europe/Kyiv": true,
	"Europe/Belgrade": true, "Europe/Zagreb": true, "Europe/Budapest": true,
	"Europe/Bucharest": true, "Europe/Sofia": true,

	"America/New_York": true, "America/Chicago": true, "America/Denver": true,
	"America/Phoenix": true, "America/Los_Angeles": true, "America/Toronto": true,
	"America/Vancouver": true, "America/Mexico_City": true, "America/Monterrey": true,
	"America/Sao_Paulo": true, "America/Argentina/Buenos_Aires": true,
	"America/Santiago": true, "America/Bogota": true, "America/Lima": true,
	"America/Montevideo": true,

	"Asia/Tokyo": true, "Asia/Seoul": true, "Asia/Shanghai": true,
	"Asia/Riyadh": true, "Asia/Dubai": true, "Asia/Qatar": true,
	"Asia/Kolkata": true, "Asia/Singapore": true,

	"Australia/Sydney": true, "Australia/Melbourne": true,
	"Australia/Brisbane": true, "Australia/Perth": true, "Pacific/Auckland": true,

	"Africa/Cairo": true, "Africa/Johannesburg": true,
	"Africa/Casablanca": true, "Africa/Lagos": true,
}

// IsRecognized reports whether zoneID is in the allow-list
func IsRecognized(zoneID string) bool {
	return recognizedZones[zoneID]
}

// RecognizedZones returns the allow-list, unordered
func RecognizedZones() []string {
	zones := make([]string, 0, len(recognizedZones))
	for z := range recognizedZones {
		zones = append(zones, z)
	}
	return zones
}

type venueZone struct {
	name     string
	lon, lat float64
	zone     string
}

// venueCatalog maps stadium coordinates to their zone
var venueCatalog = []venueZone{
	// England, Scotland, Wales
	{"Wembley Stadium", -0.2795, 51.5560, "Europe/London"},
	{"Emirates Stadium", -0.1086, 51.5549, "Europe/London"},
	{"Tottenham Hotspur Stadium", -0.0664, 51.6043, "Europe/London"},
	{"Stamford Bridge", -0.1910, 51.4817, "Europe/London"},
	{"London Stadium", -0.0166, 51.5387, "Europe/London"},
	{"Selhurst Park", -0.0855, 51.3983, "Europe/London"},
	{"Craven Cottage", -0.2217, 51.4749, "Europe/London"},
	{"Gtech Community Stadium", -0.2886, 51.4907, "Europe/London"},
	{"Old Trafford", -2.2913, 53.4631, "Europe/London"},
	{"Etihad Stadium", -2.2004, 53.4831, "Europe/London"},
	{"Anfield", -2.9608, 53.4308, "Europe/London"},
	{"Goodison Park", -2.9664, 53.4388, "Europe/London"},
	{"St James' Park", -1.6216, 54.9756, "Europe/London"},
	{"Villa Park", -1.8848, 52.5092, "Europe/London"},
	{"Elland Road", -1.5721, 53.7778, "Europe/London"},
	{"Amex Stadium", -0.0836, 50.8616, "Europe/London"},
	{"Molineux Stadium", -2.1304, 52.5902, "Europe/London"},
	{"City Ground", -1.1328, 52.9400, "Europe/London"},
	{"Vitality Stadium", -1.8383, 50.7352, "Europe/London"},
	{"King Power Stadium", -1.1422, 52.6204, "Europe/London"},
	{"Celtic Park", -4.2055, 55.8497, "Europe/London"},
	{"Ibrox Stadium", -4.3094, 55.8532, "Europe/London"},
	{"Hampden Park", -4.2518, 55.8258, "Europe/London"},
	{"Principality Stadium", -3.1826, 51.4782, "Europe/London"},

	// Ireland, Portugal, Spain
	{"Aviva Stadium", -6.2285, 53.3352, "Europe/Dublin"},
	{"Estadio da Luz", -9.1847, 38.7527, "Europe/Lisbon"},
	{"Estadio Jose Alvalade", -9.1609, 38.7613, "Europe/Lisbon"},
	{"Estadio do Dragao", -8.5837, 41.1617, "Europe/Lisbon"},
	{"Santiago Bernabeu", -3.6883, 40.4531, "Europe/Madrid"},
	{"Metropolitano", -3.5994, 40.4362, "Europe/Madrid"},
	{"Camp Nou", 2.1228, 41.3809, "Europe/Madrid"},
	{"Ramon Sanchez-Pizjuan", -5.9705, 37.3840, "Europe/Madrid"},
	{"Benito Villamarin", -5.9817, 37.3565, "Europe/Madrid"},
	{"Mestalla", -0.3584, 39.4746, "Europe/Madrid"},
	{"San Mames", -2.9494, 43.2641, "Europe/Madrid"},
	{"Reale Arena", -1.9737, 43.3014, "Europe/Madrid"},

	// France, Benelux
	{"Parc des Princes", 2.2530, 48.8414, "Europe/Paris"},
	{"Stade de France", 2.3601, 48.9245, "Europe/Paris"},
	{"Orange Velodrome", 5.3958, 43.2699, "Europe/Paris"},
	{"Groupama Stadium", 4.9822, 45.7653, "Europe/Paris"},
	{"Stade Pierre-Mauroy", 3.1305, 50.6119, "Europe/Paris"},
	{"Allianz Riviera", 7.1926, 43.7051, "Europe/Paris"},
	{"Stade Louis II", 7.4157, 43.7275, "Europe/Paris"},
	{"King Baudouin Stadium", 4.3339, 50.8959, "Europe/Brussels"},
	{"Jan Breydel Stadium", 3.1806, 51.1932, "Europe/Brussels"},
	{"Johan Cruyff Arena", 4.9419, 52.3143, "Europe/Amsterdam"},
	{"De Kuip", 4.5232, 51.8939, "Europe/Amsterdam"},
	{"Philips Stadion", 5.4676, 51.4417, "Europe/Amsterdam"},

	// Germany, Italy, Alps
	{"Allianz Arena", 11.6247, 48.2188, "Europe/Berlin"},
	{"Signal Iduna Park", 7.4519, 51.4926, "Europe/Berlin"},
	{"Olympiastadion Berlin", 13.2395, 52.5147, "Europe/Berlin"},
	{"BayArena", 7.0022, 51.0383, "Europe/Berlin"},
	{"Red Bull Arena Leipzig", 12.3482, 51.3458, "Europe/Berlin"},
	{"Deutsche Bank Park", 8.6454, 50.0686, "Europe/Berlin"},
	{"Volksparkstadion", 9.8987, 53.5872, "Europe/Berlin"},
	{"MHPArena", 9.2320, 48.7923, "Europe/Berlin"},
	{"Veltins-Arena", 7.0677, 51.5546, "Europe/Berlin"},
	{"San Siro", 9.1240, 45.4781, "Europe/Rome"},
	{"Stadio Olimpico", 12.4547, 41.9341, "Europe/Rome"},
	{"Allianz Stadium Turin", 7.6413, 45.1096, "Europe/Rome"},
	{"Stadio Diego Armando Maradona", 14.1930, 40.8280, "Europe/Rome"},
	{"Stadio Artemio Franchi", 11.2822, 43.7808, "Europe/Rome"},
	{"Gewiss Stadium", 9.6808, 45.7089, "Europe/Rome"},
	{"St. Jakob-Park", 7.6203, 47.5416, "Europe/Zurich"},
	{"Letzigrund", 8.5044, 47.3828, "Europe/Zurich"},
	{"Wankdorf Stadium", 7.4652, 46.9632, "Europe/Zurich"},
	{"Ernst-Happel-Stadion", 16.4206, 48.2074, "Europe/Vienna"},
	{"Red Bull Arena Salzburg", 13.0061, 47.8163, "Europe/Vienna"},

	// Northern, Central and Eastern Europe
	{"Fortuna Arena", 14.4929, 50.0677, "Europe/Prague"},
	{"PGE Narodowy", 21.0453, 52.2395, "Europe/Warsaw"},
	{"Parken Stadium", 12.5722, 55.7025, "Europe/Copenhagen"},
	{"Strawberry Arena", 18.0000, 59.3724, "Europe/Stockholm"},
	{"Ullevaal Stadion", 10.7344, 59.9490, "Europe/Oslo"},
	{"Helsinki Olympic Stadium", 24.9259, 60.1869, "Europe/Helsinki"},
	{"Olympic Stadium Athens", 23.7878, 38.0362, "Europe/Athens"},
	{"Karaiskakis Stadium", 23.6645, 37.9462, "Europe/Athens"},
	{"Ataturk Olympic Stadium", 28.7658, 41.0744, "Europe/Istanbul"},
	{"Rams Park", 28.9908, 41.1033, "Europe/Istanbul"},
	{"Sukru Saracoglu Stadium", 29.0369, 40.9877, "Europe/Istanbul"},
	{"Luzhniki Stadium", 37.5536, 55.7158, "Europe/Moscow"},
	{"Olimpiyskiy Stadium", 30.5217, 50.4333, "Europe/Kyiv"},
	{"Rajko Mitic Stadium", 20.4646, 44.7833, "Europe/Belgrade"},
	{"Stadion Maksimir", 16.0178, 45.8186, "Europe/Zagreb"},
	{"Puskas Arena", 19.0983, 47.5031, "Europe/Budapest"},
	{"Arena Nationala", 26.1526, 44.4372, "Europe/Bucharest"},
	{"Vasil Levski National Stadium", 23.3356, 42.6877, "Europe/Sofia"},

	// North America
	{"MetLife Stadium", -74.0745, 40.8135, "America/New_York"},
	{"Gillette Stadium", -71.2643, 42.0909, "America/New_York"},
	{"Lincoln Financial Field", -75.1675, 39.9008, "America/New_York"},
	{"Audi Field", -77.0125, 38.8686, "America/New_York"},
	{"Mercedes-Benz Stadium", -84.4008, 33.7554, "America/New_York"},
	{"Hard Rock Stadium", -80.2389, 25.9580, "America/New_York"},
	{"Soldier Field", -87.6167, 41.8623, "America/Chicago"},
	{"AT&T Stadium", -97.0929, 32.7473, "America/Chicago"},
	{"NRG Stadium", -95.4107, 29.6847, "America/Chicago"},
	{"Arrowhead Stadium", -94.4839, 39.0489, "America/Chicago"},
	{"Dick's Sporting Goods Park", -104.8919, 39.8056, "America/Denver"},
	{"State Farm Stadium", -112.2626, 33.5276, "America/Phoenix"},
	{"SoFi Stadium", -118.3392, 33.9535, "America/Los_Angeles"},
	{"Rose Bowl", -118.1676, 34.1613, "America/Los_Angeles"},
	{"Levi's Stadium", -121.9700, 37.4032, "America/Los_Angeles"},
	{"Lumen Field", -122.3316, 47.5952, "America/Los_Angeles"},
	{"Providence Park", -122.6917, 45.5215, "America/Los_Angeles"},
	{"BMO Field", -79.4186, 43.6332, "America/Toronto"},
	{"Stade Saputo", -73.5525, 45.5628, "America/Toronto"},
	{"BC Place", -123.1119, 49.2767, "America/Vancouver"},
	{"Estadio Azteca", -99.1505, 19.3029, "America/Mexico_City"},
	{"Estadio Akron", -103.4627, 20.6818, "America/Mexico_City"},
	{"Estadio BBVA", -100.2446, 25.6690, "America/Monterrey"},

	// South America
	{"Maracana", -43.2302, -22.9122, "America/Sao_Paulo"},
	{"Morumbi", -46.7197, -23.6000, "America/Sao_Paulo"},
	{"Allianz Parque", -46.6784, -23.5275, "America/Sao_Paulo"},
	{"Mineirao", -43.9708, -19.8659, "America/Sao_Paulo"},
	{"Arena do Gremio", -51.1992, -29.9738, "America/Sao_Paulo"},
	{"La Bombonera", -58.3648, -34.6356, "America/Argentina/Buenos_Aires"},
	{"Estadio Monumental", -58.4497, -34.5453, "America/Argentina/Buenos_Aires"},
	{"Estadio Mario Alberto Kempes", -64.2458, -31.3689, "America/Argentina/Buenos_Aires"},
	{"Estadio Nacional de Chile", -70.6103, -33.4644, "America/Santiago"},
	{"Estadio El Campin", -74.0775, 4.6460, "America/Bogota"},
	{"Estadio Nacional del Peru", -77.0337, -12.0671, "America/Lima"},
	{"Estadio Centenario", -56.1527, -34.8945, "America/Montevideo"},

	// Asia, Oceania, Africa
	{"Japan National Stadium", 139.7146, 35.6778, "Asia/Tokyo"},
	{"Ajinomoto Stadium", 139.5273, 35.6642, "Asia/Tokyo"},
	{"Saitama Stadium 2002", 139.7177, 35.9031, "Asia/Tokyo"},
	{"Nissan Stadium", 139.6064, 35.5100, "Asia/Tokyo"},
	{"Panasonic Stadium Suita", 135.5327, 34.8027, "Asia/Tokyo"},
	{"Seoul World Cup Stadium", 126.8972, 37.5683, "Asia/Seoul"},
	{"Workers' Stadium", 116.4466, 39.9297, "Asia/Shanghai"},
	{"Shanghai Stadium", 121.4373, 31.1830, "Asia/Shanghai"},
	{"King Fahd International Stadium", 46.8389, 24.7893, "Asia/Riyadh"},
	{"Al-Awwal Park", 46.6253, 24.7903, "Asia/Riyadh"},
	{"King Abdullah Sports City", 39.1877, 21.7628, "Asia/Riyadh"},
	{"Zayed Sports City Stadium", 54.4531, 24.4164, "Asia/Dubai"},
	{"Lusail Stadium", 51.4905, 25.4207, "Asia/Qatar"},
	{"Khalifa International Stadium", 51.4481, 25.2637, "Asia/Qatar"},
	{"Salt Lake Stadium", 88.4092, 22.5683, "Asia/Kolkata"},
	{"Singapore National Stadium", 103.8747, 1.3042, "Asia/Singapore"},
	{"Stadium Australia", 151.0633, -33.8474, "Australia/Sydney"},
	{"AAMI Park", 144.9836, -37.8251, "Australia/Melbourne"},
	{"Suncorp Stadium", 153.0096, -27.4648, "Australia/Brisbane"},
	{"Optus Stadium", 115.8890, -31.9512, "Australia/Perth"},
	{"Eden Park", 174.7447, -36.8750, "Pacific/Auckland"},
	{"Cairo International Stadium", 31.3128, 30.0690, "Africa/Cairo"},
	{"FNB Stadium", 27.9826, -26.2348, "Africa/Johannesburg"},
	{"Prince Moulay Abdellah Stadium", -6.8730, 33.9590, "Africa/Casablanca"},
	{"Stade Mohammed V", -7.6475, 33.5825, "Africa/Casablanca"},
	{"Teslim Balogun Stadium", 3.3636, 6.4983, "Africa/Lagos"},
}

// CatalogEntries returns the static venue catalog as index entries, tagged
// with their zone
func CatalogEntries() []*models.CatalogEntry {
	entries := make([]*models.CatalogEntry, len(venueCatalog))
	for i, v := range venueCatalog {
		entries[i] = &models.CatalogEntry{
			ID:       v.name,
			Value:    v.zone,
			Location: &models.GeoPoint{Lon: v.lon, Lat: v.lat},
		}
	}
	return entries
}

// cityZones is matched case-sensitively against venue.city
var cityZones = map[string]string{
	"London": "Europe/London", "Manchester": "Europe/London", "Liverpool": "Europe/London",
	"Birmingham": "Europe/London", "Newcastle upon Tyne": "Europe/London", "Newcastle": "Europe/London",
	"Leeds": "Europe/London", "Brighton": "Europe/London", "Nottingham": "Europe/London",
	"Leicester": "Europe/London", "Wolverhampton": "Europe/London", "Bournemouth": "Europe/London",
	"Glasgow": "Europe/London", "Edinburgh": "Europe/London", "Cardiff": "Europe/London",
	"Belfast": "Europe/London",
	"Dublin": "Europe/Dublin",
	"Lisbon": "Europe/Lisbon", "Lisboa": "Europe/Lisbon", "Porto": "Europe/Lisbon",
	"Madrid": "Europe/Madrid", "Barcelona": "Europe/Madrid", "Sevilla": "Europe/Madrid",
	"Seville": "Europe/Madrid", "Valencia": "Europe/Madrid", "Bilbao": "Europe/Madrid",
	"San Sebastian": "Europe/Madrid", "Villarreal": "Europe/Madrid",
	"Paris": "Europe/Paris", "Marseille": "Europe/Paris", "Lyon": "Europe/Paris",
	"Lille": "Europe/Paris", "Nice": "Europe/Paris", "Monaco": "Europe/Paris",
	"Brussels": "Europe/Brussels", "Bruxelles": "Europe/Brussels", "Brugge": "Europe/Brussels",
	"Amsterdam": "Europe/Amsterdam", "Rotterdam": "Europe/Amsterdam", "Eindhoven": "Europe/Amsterdam",
	"Munich": "Europe/Berlin", "München": "Europe/Berlin", "Berlin": "Europe/Berlin",
	"Dortmund": "Europe/Berlin", "Leverkusen": "Europe/Berlin", "Leipzig": "Europe/Berlin",
	"Frankfurt": "Europe/Berlin", "Hamburg": "Europe/Berlin", "Stuttgart": "Europe/Berlin",
	"Gelsenkirchen": "Europe/Berlin",
	"Milan": "Europe/Rome", "Milano": "Europe/Rome", "Rome": "Europe/Rome", "Roma": "Europe/Rome",
	"Turin": "Europe/Rome", "Torino": "Europe/Rome", "Naples": "Europe/Rome", "Napoli": "Europe/Rome",
	"Florence": "Europe/Rome", "Firenze": "Europe/Rome", "Bergamo": "Europe/Rome",
	"Zurich": "Europe/Zurich", "Basel": "Europe/Zurich", "Bern": "Europe/Zurich",
	"Vienna": "Europe/Vienna", "Wien": "Europe/Vienna", "Salzburg": "Europe/Vienna",
	"Prague": "Europe/Prague", "Praha": "Europe/Prague",
	"Warsaw": "Europe/Warsaw", "Warszawa": "Europe/Warsaw",
	"Copenhagen": "Europe/Copenhagen", "København": "Europe/Copenhagen",
	"Stockholm": "Europe/Stockholm", "Solna": "Europe/Stockholm",
	"Oslo": "Europe/Oslo", "Helsinki": "Europe/Helsinki",
	"Athens": "Europe/Athens", "Piraeus": "Europe/Athens",
	"Istanbul": "Europe/Istanbul", "Moscow": "Europe/Moscow", "Kyiv": "Europe/Kyiv",
	"Belgrade": "Europe/Belgrade", "Zagreb": "Europe/Zagreb", "Budapest": "Europe/Budapest",
	"Bucharest": "Europe/Bucharest", "Sofia": "Europe/Sofia",

	"New York": "America/New_York", "East Rutherford": "America/New_York",
	"Boston": "America/New_York", "Foxborough": "America/New_York",
	"Philadelphia": "America/New_York", "Washington": "America/New_York",
	"Atlanta": "America/New_York", "Miami": "America/New_York", "Miami Gardens": "America/New_York",
	"Orlando": "America/New_York",
	"Chicago": "America/Chicago", "Dallas": "America/Chicago", "Arlington": "America/Chicago",
	"Houston": "America/Chicago", "Kansas City": "America/Chicago",
	"Denver": "America/Denver", "Commerce City": "America/Denver",
	"Phoenix": "America/Phoenix", "Glendale": "America/Phoenix",
	"Los Angeles": "America/Los_Angeles", "Inglewood": "America/Los_Angeles",
	"Pasadena": "America/Los_Angeles", "San Francisco": "America/Los_Angeles",
	"Santa Clara": "America/Los_Angeles", "Seattle": "America/Los_Angeles",
	"Portland": "America/Los_Angeles",
	"Toronto": "America/Toronto", "Montreal": "America/Toronto",
	"Vancouver": "America/Vancouver",
	"Mexico City": "America/Mexico_City", "Guadalajara": "America/Mexico_City",
	"Monterrey": "America/Monterrey",
	"Rio de Janeiro": "America/Sao_Paulo", "São Paulo": "America/Sao_Paulo", "Sao Paulo": "America/Sao_Paulo",
	"Belo Horizonte": "America/Sao_Paulo", "Porto Alegre": "America/Sao_Paulo",
	"Buenos Aires": "America/Argentina/Buenos_Aires", "Córdoba": "America/Argentina/Buenos_Aires",
	"Santiago": "America/Santiago", "Bogotá": "America/Bogota", "Bogota": "America/Bogota",
	"Lima": "America/Lima", "Montevideo": "America/Montevideo",

	"Tokyo": "Asia/Tokyo", "Yokohama": "Asia/Tokyo", "Saitama": "Asia/Tokyo", "Osaka": "Asia/Tokyo",
	"Seoul": "Asia/Seoul", "Beijing": "Asia/Shanghai", "Shanghai": "Asia/Shanghai",
	"Riyadh": "Asia/Riyadh", "Jeddah": "Asia/Riyadh",
	"Abu Dhabi": "Asia/Dubai", "Dubai": "Asia/Dubai",
	"Doha": "Asia/Qatar", "Lusail": "Asia/Qatar",
	"Kolkata": "Asia/Kolkata", "Mumbai": "Asia/Kolkata", "Singapore": "Asia/Singapore",
	"Sydney": "Australia/Sydney", "Melbourne": "Australia/Melbourne",
	"Brisbane": "Australia/Brisbane", "Perth": "Australia/Perth", "Auckland": "Pacific/Auckland",
	"Cairo": "Africa/Cairo", "Johannesburg": "Africa/Johannesburg",
	"Casablanca": "Africa/Casablanca", "Rabat": "Africa/Casablanca", "Lagos": "Africa/Lagos",
}

// countryZones is the weaker fallback used only when the city is unknown.
// Multi-zone countries map to their most populous football zone.
var countryZones = map[string]string{
	"England": "Europe/London", "Scotland": "Europe/London", "Wales": "Europe/London",
	"Northern-Ireland": "Europe/London", "Northern Ireland": "Europe/London",
	"United Kingdom": "Europe/London", "UK": "Europe/London",
	"Ireland": "Europe/Dublin", "Portugal": "Europe/Lisbon", "Spain": "Europe/Madrid",
	"France": "Europe/Paris", "Monaco": "Europe/Paris", "Belgium": "Europe/Brussels",
	"Netherlands": "Europe/Amsterdam", "Germany": "Europe/Berlin", "Italy": "Europe/Rome",
	"Switzerland": "Europe/Zurich", "Austria": "Europe/Vienna",
	"Czech-Republic": "Europe/Prague", "Czech Republic": "Europe/Prague", "Czechia": "Europe/Prague",
	"Poland": "Europe/Warsaw", "Denmark": "Europe/Copenhagen", "Sweden": "Europe/Stockholm",
	"Norway": "Europe/Oslo", "Finland": "Europe/Helsinki", "Greece": "Europe/Athens",
	"Turkey": "Europe/Istanbul", "Türkiye": "Europe/Istanbul", "Russia": "Europe/Moscow",
	"Ukraine": "Europe/Kyiv", "Serbia": "Europe/Belgrade", "Croatia": "Europe/Zagreb",
	"Hungary": "Europe/Budapest", "Romania": "Europe/Bucharest", "Bulgaria": "Europe/Sofia",

	"USA": "America/New_York", "United States": "America/New_York",
	"Canada": "America/Toronto", "Mexico": "America/Mexico_City",
	"Brazil": "America/Sao_Paulo", "Argentina": "America/Argentina/Buenos_Aires",
	"Chile": "America/Santiago", "Colombia": "America/Bogota", "Peru": "America/Lima",
	"Uruguay": "America/Montevideo",

	"Japan": "Asia/Tokyo", "South-Korea": "Asia/Seoul", "South Korea": "Asia/Seoul",
	"Korea Republic": "Asia/Seoul", "China": "Asia/Shanghai",
	"Saudi-Arabia": "Asia/Riyadh", "Saudi Arabia": "Asia/Riyadh",
	"United-Arab-Emirates": "Asia/Dubai", "United Arab Emirates": "Asia/Dubai", "UAE": "Asia/Dubai",
	"Qatar": "Asia/Qatar", "India": "Asia/Kolkata", "Singapore": "Asia/Singapore",
	"Australia": "Australia/Sydney", "New-Zealand": "Pacific/Auckland", "New Zealand": "Pacific/Auckland",
	"Egypt": "Africa/Cairo", "South-Africa": "Africa/Johannesburg", "South Africa": "Africa/Johannesburg",
	"Morocco": "Africa/Casablanca", "Nigeria": "Africa/Lagos",
}

// fallbackAbbreviations is consulted when the tz database cannot name a
// zone, either because the zone failed to load or because it only has a
// numeric offset. Entries name standard time and are not DST-aware.
var fallbackAbbreviations = map[string]string{
	"Europe/London": "GMT", "Europe/Dublin": "GMT", "Europe/Lisbon": "WET",
	"Europe/Madrid": "CET", "Europe/Paris": "CET", "Europe/Brussels": "CET",
	"Europe/Amsterdam": "CET", "Europe/Berlin": "CET", "Europe/Rome": "CET",
	"Europe/Zurich": "CET", "Europe/Vienna": "CET", "Europe/Prague": "CET",
	"Europe/Warsaw": "CET", "Europe/Copenhagen": "CET", "Europe/Stockholm": "CET",
	"Europe/Oslo": "CET", "Europe/Belgrade": "CET", "Europe/Zagreb": "CET",
	"Europe/Budapest": "CET",
	"Europe/Helsinki": "EET", "Europe/Athens": "EET", "Europe/Kyiv": "EET",
	"Europe/Bucharest": "EET", "Europe/Sofia": "EET",
	"Europe/Istanbul": "TRT", "Europe/Moscow": "MSK",

	"America/New_York": "EST", "America/Toronto": "EST", "America/Chicago": "CST",
	"America/Denver": "MST", "America/Phoenix": "MST", "America/Los_Angeles": "PST",
	"America/Vancouver": "PST", "America/Mexico_City": "CST", "America/Monterrey": "CST",
	"America/Sao_Paulo": "BRT", "America/Argentina/Buenos_Aires": "ART",
	"America/Santiago": "CLT", "America/Bogota": "COT", "America/Lima": "PET",
	"America/Montevideo": "UYT",

	"Asia/Tokyo": "JST", "Asia/Seoul": "KST", "Asia/Shanghai": "CST",
	"Asia/Riyadh": "AST", "Asia/Qatar": "AST", "Asia/Dubai": "GST",
	"Asia/Kolkata": "IST", "Asia/Singapore": "SGT",
	"Australia/Sydney": "AEST", "Australia/Melbourne": "AEST",
	"Australia/Brisbane": "AEST", "Australia/Perth": "AWST", "Pacific/Auckland": "NZST",
	"Africa/Cairo": "EET", "Africa/Johannesburg": "SAST", "Africa/Lagos": "WAT",
	// Morocco has kept UTC+1 as its standard time since 2018, so the
	// western European +01 name applies all year
	"Africa/Casablanca": "WEST",
}

// zoneCities names the city shown next to a zone abbreviation when the
// venue city is unknown
var zoneCities = map[string]string{
	"Europe/London": "London", "Europe/Dublin": "Dublin", "Europe/Lisbon": "Lisbon",
	"Europe/Madrid": "Madrid", "Europe/Paris": "Paris", "Europe/Brussels": "Brussels",
	"Europe/Amsterdam": "Amsterdam", "Europe/Berlin": "Berlin", "Europe/Rome": "Rome",
	"Europe/Zurich": "Zurich", "Europe/Istanbul": "Istanbul", "Europe/Kyiv": "Kyiv",
	"America/New_York": "New York", "America/Chicago": "Chicago",
	"America/Los_Angeles": "Los Angeles", "America/Mexico_City": "Mexico City",
	"America/Sao_Paulo": "São Paulo", "America/Argentina/Buenos_Aires": "Buenos Aires",
	"America/Bogota": "Bogotá",
	"Asia/Tokyo": "Tokyo", "Asia/Shanghai": "Beijing", "Asia/Qatar": "Doha",
	"Asia/Dubai": "Dubai", "Asia/Kolkata": "Kolkata",
	"Australia/Sydney": "Sydney", "Pacific/Auckland": "Auckland",
}

// locations caches loaded zones for the allow-list
var locations = loadRecognizedLocations()

func loadRecognizedLocations() map[string]*time.Location {
	locs := make(map[string]*time.Location, len(recognizedZones))
	for zone := range recognizedZones {
		if loc, err := time.LoadLocation(zone); err == nil {
			locs[zone] = loc
		}
	}
	return locs
}
