package routeprofit

import "fmt"

type AircraftType string
const(
	Regional   AircraftType = "Regional"
	NarrowBody AircraftType = "NarrowBody"
	WideBody   AircraftType = "WideBody"
)

// Distance buckets (statute miles) used to assign equipment to a route.
const(
	RegionalMaxMiles   = 500.0
	NarrowBodyMaxMiles = 1800.0
)

// AircraftSpec holds the operating characteristics the cost model needs. Specs are
// ordered by Size; every cost-bearing field is non-decreasing in Size.
type AircraftSpec struct {
	Type               AircraftType
	Size               int     // 1 = smallest
	Seats              int
	FuelBurnGalPerMile float64
	CrewCostPerFlight  float64 // USD, flat per departure
	CruiseMPH          float64
}

var Fleet = map[AircraftType]AircraftSpec{
	Regional:   {Regional,   1,  76, 1.0, 1900.0, 430.0},
	NarrowBody: {NarrowBody, 2, 160, 1.9, 3400.0, 480.0},
	WideBody:   {WideBody,   3, 300, 4.1, 7800.0, 510.0},
}

func (s AircraftSpec)String() string {
	return fmt.Sprintf("%-10.10s %3d seats, %.1f gal/mi, $%.0f crew/flight",
		s.Type, s.Seats, s.FuelBurnGalPerMile, s.CrewCostPerFlight)
}

func LookupAircraft(t AircraftType) (AircraftSpec, error) {
	spec,exists := Fleet[t]
	if !exists {
		return AircraftSpec{}, fmt.Errorf("aircraft '%s': %w", t, ErrUnknownAircraft)
	}
	return spec, nil
}

// AircraftForDistance picks equipment by distance bucket: short routes get regional
// jets, transcontinental routes get widebodies.
func AircraftForDistance(miles float64) AircraftType {
	if miles < RegionalMaxMiles { return Regional }
	if miles < NarrowBodyMaxMiles { return NarrowBody }
	return WideBody
}
