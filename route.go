package routeprofit

import(
	"fmt"
)

type RouteType string
const(
	MajorMajor   RouteType = "Major-Major"
	MajorMedium  RouteType = "Major-Medium"
	MediumMedium RouteType = "Medium-Medium"
)

// ClassifyRouteType labels a route by the tiers of its endpoints. It is symmetric:
// ClassifyRouteType(a,b) == ClassifyRouteType(b,a).
func ClassifyRouteType(a, b Tier) RouteType {
	switch {
	case a == Major && b == Major: return MajorMajor
	case a == Major || b == Major: return MajorMedium
	}
	return MediumMedium
}

// A Route is a scheduled service between two roster airports. Origin and Destination
// are ordered, but no two routes in a catalog share the same unordered pair.
type Route struct {
	ID               string
	Origin           string
	Destination      string
	OriginTier       Tier
	DestinationTier  Tier
	DistanceMiles    float64
	FlightTimeHours  float64
	DailyFlights     int
	Aircraft         AircraftType
	RouteType        RouteType
	FareIndex        float64 // competitive pricing index; 1.0 is market average
}

func RouteID(origin, destination string) string { return origin + "-" + destination }

func (r Route)String() string {
	return fmt.Sprintf("%-7.7s %6.0fmi %4.1fh %dx/day %-10.10s %-13.13s fare@%.2f",
		r.ID, r.DistanceMiles, r.FlightTimeHours, r.DailyFlights, r.Aircraft, r.RouteType,
		r.FareIndex)
}

// Validate checks the structural invariants of a route.
func (r Route)Validate() error {
	if r.Origin == r.Destination {
		return fmt.Errorf("route %s: origin equals destination: %w", r.ID, ErrInvalidRoute)
	}
	if r.DistanceMiles <= 0 {
		return fmt.Errorf("route %s: distance %f not positive: %w", r.ID, r.DistanceMiles, ErrInvalidRoute)
	}
	if r.DailyFlights <= 0 {
		return fmt.Errorf("route %s: %d daily flights: %w", r.ID, r.DailyFlights, ErrInvalidRoute)
	}
	if _,err := LookupAircraft(r.Aircraft); err != nil {
		return fmt.Errorf("route %s: %w", r.ID, err)
	}
	if r.RouteType != ClassifyRouteType(r.OriginTier, r.DestinationTier) {
		return fmt.Errorf("route %s: type %s does not match tiers %s,%s: %w", r.ID, r.RouteType,
			r.OriginTier, r.DestinationTier, ErrInvalidRoute)
	}
	return nil
}

// NewRoute builds a route between two roster airports, deriving everything that is
// a pure function of the endpoints and distance. DailyFlights and FareIndex are left
// for the caller.
func NewRoute(origin, destination string, distanceMiles float64) (Route, error) {
	o,err := LookupAirport(origin)
	if err != nil { return Route{}, err }
	d,err := LookupAirport(destination)
	if err != nil { return Route{}, err }

	ac := AircraftForDistance(distanceMiles)
	spec,_ := LookupAircraft(ac)

	r := Route{
		ID: RouteID(origin, destination),
		Origin: origin,
		Destination: destination,
		OriginTier: o.Tier,
		DestinationTier: d.Tier,
		DistanceMiles: distanceMiles,
		FlightTimeHours: distanceMiles/spec.CruiseMPH + TaxiAllowanceHours,
		Aircraft: ac,
		RouteType: ClassifyRouteType(o.Tier, d.Tier),
		FareIndex: 1.0,
	}
	return r, nil
}

// Block time added to airborne time for taxi, climb and descent.
const TaxiAllowanceHours = 0.5
