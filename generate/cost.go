package generate

import(
	"fmt"
	"math"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

// CostModel turns a route-month of demand into a route-month of cost. It has no
// randomness of its own.
type CostModel struct {
	MaintenanceRatio float64 // maintenance as a fraction of fuel+crew
	TargetLoadFactor float64 // load factor the operated flights are sized for
	TurnFee          map[rp.Tier]float64
}

func NewCostModel(cfg config.Config) *CostModel {
	return &CostModel{
		MaintenanceRatio: cfg.MaintenanceRatio,
		TargetLoadFactor: cfg.BaselineLoadFactor,
		TurnFee: map[rp.Tier]float64{
			rp.Major:  cfg.MajorTurnFee,
			rp.Medium: cfg.MediumTurnFee,
		},
	}
}

// FlightsFor is the number of departures operated to carry the month's passengers at
// the target load factor, rounded up to whole flights and never more than the
// schedule. No passengers means no flights. A target outside (0,1] flies the
// whole schedule.
func FlightsFor(d rp.DemandRecord, seats int, targetLF float64) int {
	if seats <= 0 || d.Passengers <= 0 { return 0 }
	if targetLF <= 0 || targetLF > 1 { return d.Flights }

	n := int(math.Ceil(d.Passengers / (float64(seats) * targetLF)))
	if n > d.Flights { n = d.Flights }
	return n
}

func (m *CostModel)ForMonth(r rp.Route, d rp.DemandRecord) (rp.CostRecord, error) {
	if d.RouteID != r.ID {
		return rp.CostRecord{}, fmt.Errorf("cost: demand record %s does not belong to %s", d.Key(), r.ID)
	}
	if err := rp.ValidMonth(d.Month); err != nil { return rp.CostRecord{}, err }
	spec,err := rp.LookupAircraft(r.Aircraft)
	if err != nil { return rp.CostRecord{}, fmt.Errorf("cost for %s: %w", r.ID, err) }

	c := rp.CostRecord{
		RouteID: r.ID,
		Month: d.Month,
		Flights: FlightsFor(d, spec.Seats, m.TargetLoadFactor),
		FuelPerFlight: r.DistanceMiles * spec.FuelBurnGalPerMile * rp.FuelPrice(d.Month),
		CrewPerFlight: spec.CrewCostPerFlight,
		FeesPerFlight: m.TurnFee[r.OriginTier] + m.TurnFee[r.DestinationTier],
	}
	c.MaintenancePerFlight = m.MaintenanceRatio * (c.FuelPerFlight + c.CrewPerFlight)

	n := float64(c.Flights)
	c.Fuel = n * c.FuelPerFlight
	c.Crew = n * c.CrewPerFlight
	c.Maintenance = n * c.MaintenancePerFlight
	c.AirportFees = n * c.FeesPerFlight
	c.Total = c.Fuel + c.Crew + c.Maintenance + c.AirportFees

	return c, nil
}

// Generate joins demand to routes by route ID and produces one CostRecord per
// DemandRecord, in the same order.
func (m *CostModel)Generate(routes []rp.Route, demand []rp.DemandRecord) ([]rp.CostRecord, error) {
	byID := map[string]rp.Route{}
	for _,r := range routes { byID[r.ID] = r }

	out := make([]rp.CostRecord, 0, len(demand))
	for _,d := range demand {
		r,exists := byID[d.RouteID]
		if !exists {
			return nil, fmt.Errorf("cost: %s: %w", d.Key(), rp.ErrMissingJoin)
		}
		c,err := m.ForMonth(r, d)
		if err != nil { return nil, err }
		out = append(out, c)
	}
	return out, nil
}
