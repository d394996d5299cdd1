package routeprofit

import(
	"fmt"
	"sort"

	"github.com/skypies/geo"
)

const KMToStatuteMiles = 0.621371

// Tier is the size class of an airport. Major airports are hubs with higher
// per-turn fees; Medium airports are focus cities and spokes.
type Tier int
const(
	Medium Tier = iota
	Major
)

func (t Tier)String() string {
	switch t {
	case Major:  return "Major"
	case Medium: return "Medium"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// An Airport on the fixed roster that routes are drawn from.
type Airport struct {
	Code string
	Name string
	Tier
	geo.Latlong // embedded
}

func (a Airport)String() string {
	return fmt.Sprintf("%s [%s] %s", a.Code, a.Tier, a.Name)
}

// DistMiles is the great-circle distance between two airports, in statute miles.
func (a Airport)DistMiles(b Airport) float64 {
	from := a.Latlong
	return from.DistKM(b.Latlong) * KMToStatuteMiles
}

// {{{ Roster

var Roster = map[string]Airport{
	"ATL": {"ATL", "Atlanta Hartsfield-Jackson",  Major, geo.Latlong{Lat: 33.6367, Long: -84.4281}},
	"LAX": {"LAX", "Los Angeles International",   Major, geo.Latlong{Lat: 33.9425, Long: -118.4081}},
	"ORD": {"ORD", "Chicago O'Hare",              Major, geo.Latlong{Lat: 41.9786, Long: -87.9048}},
	"DFW": {"DFW", "Dallas/Fort Worth",           Major, geo.Latlong{Lat: 32.8968, Long: -97.0380}},
	"DEN": {"DEN", "Denver International",        Major, geo.Latlong{Lat: 39.8617, Long: -104.6731}},
	"JFK": {"JFK", "New York John F. Kennedy",    Major, geo.Latlong{Lat: 40.6398, Long: -73.7789}},
	"SFO": {"SFO", "San Francisco International", Major, geo.Latlong{Lat: 37.6190, Long: -122.3749}},
	"SEA": {"SEA", "Seattle-Tacoma",              Major, geo.Latlong{Lat: 47.4490, Long: -122.3093}},
	"MIA": {"MIA", "Miami International",         Major, geo.Latlong{Lat: 25.7932, Long: -80.2906}},
	"BOS": {"BOS", "Boston Logan",                Major, geo.Latlong{Lat: 42.3643, Long: -71.0052}},

	"AUS": {"AUS", "Austin-Bergstrom",            Medium, geo.Latlong{Lat: 30.1945, Long: -97.6699}},
	"BNA": {"BNA", "Nashville International",     Medium, geo.Latlong{Lat: 36.1245, Long: -86.6782}},
	"RDU": {"RDU", "Raleigh-Durham",              Medium, geo.Latlong{Lat: 35.8776, Long: -78.7875}},
	"SMF": {"SMF", "Sacramento International",    Medium, geo.Latlong{Lat: 38.6954, Long: -121.5908}},
	"PDX": {"PDX", "Portland International",      Medium, geo.Latlong{Lat: 45.5887, Long: -122.5975}},
	"SAT": {"SAT", "San Antonio International",   Medium, geo.Latlong{Lat: 29.5337, Long: -98.4698}},
	"MCI": {"MCI", "Kansas City International",   Medium, geo.Latlong{Lat: 39.2976, Long: -94.7139}},
	"IND": {"IND", "Indianapolis International",  Medium, geo.Latlong{Lat: 39.7173, Long: -86.2944}},
	"CMH": {"CMH", "Columbus John Glenn",         Medium, geo.Latlong{Lat: 39.9980, Long: -82.8919}},
	"PIT": {"PIT", "Pittsburgh International",    Medium, geo.Latlong{Lat: 40.4915, Long: -80.2329}},
	"CLE": {"CLE", "Cleveland Hopkins",           Medium, geo.Latlong{Lat: 41.4117, Long: -81.8498}},
	"OMA": {"OMA", "Omaha Eppley Airfield",       Medium, geo.Latlong{Lat: 41.3032, Long: -95.8941}},
	"ABQ": {"ABQ", "Albuquerque Sunport",         Medium, geo.Latlong{Lat: 35.0402, Long: -106.6092}},
	"BOI": {"BOI", "Boise Airport",               Medium, geo.Latlong{Lat: 43.5644, Long: -116.2228}},
}

// }}}

func LookupAirport(code string) (Airport, error) {
	a,exists := Roster[code]
	if !exists {
		return Airport{}, fmt.Errorf("airport '%s': %w", code, ErrUnknownAirport)
	}
	return a, nil
}

// RosterCodes returns the roster's airport codes in sorted order, so that anything
// iterating the roster does so deterministically.
func RosterCodes() []string {
	codes := []string{}
	for k,_ := range Roster { codes = append(codes, k) }
	sort.Strings(codes)
	return codes
}

// MaxRoutes is the number of distinct unordered airport pairs on the roster.
func MaxRoutes() int {
	n := len(Roster)
	return n * (n-1) / 2
}
