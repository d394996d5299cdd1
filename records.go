package routeprofit

import "fmt"

// Records produced by each stage of the pipeline. Every record is keyed by
// (RouteID, Month); downstream stages join on that key and never modify
// upstream records.

// MonthKey is the natural join key between the per-month tables.
type MonthKey struct {
	RouteID string
	Month   int
}

func (k MonthKey)String() string { return fmt.Sprintf("%s/%02d", k.RouteID, k.Month) }

// DemandRecord is one route-month of passenger demand.
type DemandRecord struct {
	RouteID            string
	Month              int
	Flights            int     // departures scheduled in the month
	SeatCapacity       float64 // Flights * seats
	BaselineLoadFactor float64 // route's load factor before seasonality
	BaseDemand         float64 // SeatCapacity * BaselineLoadFactor
	SeasonalMultiplier float64
	Passengers         float64 // min(BaseDemand*SeasonalMultiplier, SeatCapacity)
	LoadFactor         float64 // Passengers / SeatCapacity
}

func (d DemandRecord)Key() MonthKey { return MonthKey{d.RouteID, d.Month} }

// SpilledPassengers is demand that exceeded capacity and was lost.
func (d DemandRecord)SpilledPassengers() float64 {
	return d.BaseDemand*d.SeasonalMultiplier - d.Passengers
}

// CostRecord is one route-month of operating cost.
type CostRecord struct {
	RouteID              string
	Month                int
	Flights              int // operated; at most the scheduled DemandRecord.Flights
	FuelPerFlight        float64
	CrewPerFlight        float64
	MaintenancePerFlight float64
	FeesPerFlight        float64
	Fuel                 float64
	Crew                 float64
	Maintenance          float64
	AirportFees          float64
	Total                float64
}

func (c CostRecord)Key() MonthKey { return MonthKey{c.RouteID, c.Month} }

func (c CostRecord)TotalPerFlight() float64 {
	return c.FuelPerFlight + c.CrewPerFlight + c.MaintenancePerFlight + c.FeesPerFlight
}

// ProfitabilityRecord is one route-month of revenue and profit.
type ProfitabilityRecord struct {
	RouteID     string
	Month       int
	Passengers  float64
	LoadFactor  float64
	AverageFare float64
	Revenue     float64
	Cost        float64
	Profit      float64
	MarginPct   NullFloat // Profit / Revenue * 100
	ROIPct      NullFloat // Profit / annual cost of the route * 100
}

func (p ProfitabilityRecord)Key() MonthKey { return MonthKey{p.RouteID, p.Month} }

// RouteSummary aggregates a route's twelve ProfitabilityRecords.
//
// ROIPct is annual profit over annual operating cost. It is an efficiency ratio in
// the style airline network planners use, not a return on invested capital; no
// aircraft or facility investment enters into it.
type RouteSummary struct {
	Route // embedded

	AnnualPassengers float64
	AnnualRevenue    float64
	AnnualCost       float64
	AnnualProfit     float64
	MarginPct        NullFloat
	ROIPct           NullFloat
	AvgLoadFactor    float64

	Recommendation Recommendation
}

func (s RouteSummary)Profitable() bool { return s.AnnualProfit > 0 }

func (s RouteSummary)String() string {
	return fmt.Sprintf("%-7.7s rev $%6.2fM cost $%6.2fM profit $%6.2fM margin %6s%% roi %6s%% lf %.3f %s",
		s.ID, s.AnnualRevenue/1e6, s.AnnualCost/1e6, s.AnnualProfit/1e6,
		s.MarginPct, s.ROIPct, s.AvgLoadFactor, s.Recommendation)
}
