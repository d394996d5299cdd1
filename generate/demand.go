package generate

import(
	"fmt"
	"math"
	"math/rand"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

// DemandModel produces twelve months of passenger demand per route.
type DemandModel struct {
	Rand               *rand.Rand
	BaselineLoadFactor float64 // target average before seasonality
	LoadFactorSpread   float64 // stddev of per-route baseline around the target
}

func NewDemandModel(cfg config.Config, rng *rand.Rand) *DemandModel {
	return &DemandModel{
		Rand: rng,
		BaselineLoadFactor: cfg.BaselineLoadFactor,
		LoadFactorSpread: cfg.LoadFactorSpread,
	}
}

// Generate returns 12 records per route, in route order then month order.
func (m *DemandModel)Generate(routes []rp.Route) ([]rp.DemandRecord, error) {
	out := make([]rp.DemandRecord, 0, 12*len(routes))
	for _,r := range routes {
		recs,err := ForRoute(r, m.baselineFor())
		if err != nil { return nil, err }
		out = append(out, recs...)
	}
	return out, nil
}

// baselineFor draws a route's pre-seasonality load factor. It stays within
// [target/2, 1].
func (m *DemandModel)baselineFor() float64 {
	lf := m.BaselineLoadFactor + m.Rand.NormFloat64()*m.LoadFactorSpread
	return math.Min(1.0, math.Max(m.BaselineLoadFactor/2.0, lf))
}

// ForRoute is the deterministic part of the model: given a route and its baseline
// load factor, it lays out the year. Demand above capacity is spilled, never carried
// into another month.
func ForRoute(r rp.Route, baselineLF float64) ([]rp.DemandRecord, error) {
	spec,err := rp.LookupAircraft(r.Aircraft)
	if err != nil { return nil, fmt.Errorf("demand for %s: %w", r.ID, err) }
	if baselineLF < 0 || baselineLF > 1 {
		return nil, fmt.Errorf("demand for %s: baseline load factor %f: %w", r.ID, baselineLF,
			rp.ErrInvalidConfig)
	}

	recs := make([]rp.DemandRecord, 0, 12)
	for month:=1; month<=12; month++ {
		flights := r.DailyFlights * rp.DaysIn(month)
		capacity := float64(flights * spec.Seats)
		base := capacity * baselineLF
		mult := rp.SeasonalMultiplier(month)
		pax := math.Min(base*mult, capacity)

		lf := 0.0
		if capacity > 0 { lf = pax / capacity }

		recs = append(recs, rp.DemandRecord{
			RouteID: r.ID,
			Month: month,
			Flights: flights,
			SeatCapacity: capacity,
			BaselineLoadFactor: baselineLF,
			BaseDemand: base,
			SeasonalMultiplier: mult,
			Passengers: pax,
			LoadFactor: lf,
		})
	}
	return recs, nil
}
