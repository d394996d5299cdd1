package generate

import(
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

func TestCostForMonth(t *testing.T) {
	m := NewCostModel(config.Default())
	r := testRoute(t, "SFO", "SMF", 100, 3) // Major-Medium, Regional
	recs,err := ForRoute(r, 0.8)
	require.NoError(t, err)

	c,err := m.ForMonth(r, recs[0])
	require.NoError(t, err)

	// 5179.6 passengers at 84% of 76 seats is 81.13 flights, of 93 scheduled.
	assert.Equal(t, 82, c.Flights)
	assert.InDelta(t, 100*1.0*2.55, c.FuelPerFlight, 1e-9)
	assert.InDelta(t, 1900.0, c.CrewPerFlight, 1e-9)
	assert.InDelta(t, 0.15*(255.0+1900.0), c.MaintenancePerFlight, 1e-9)
	assert.InDelta(t, 1400.0+650.0, c.FeesPerFlight, 1e-9)
	assert.InDelta(t, 82*c.TotalPerFlight(), c.Total, 1e-6)
	assert.InDelta(t, c.Fuel+c.Crew+c.Maintenance+c.AirportFees, c.Total, 1e-9)
}

func TestCostMonotonicInDistance(t *testing.T) {
	m := NewCostModel(config.Default())
	prev := 0.0
	for _,miles := range []float64{100, 300, 499, 500, 900, 1799, 1800, 2500} {
		r := testRoute(t, "ATL", "JFK", miles, 1)
		recs,err := ForRoute(r, 0.8)
		require.NoError(t, err)
		c,err := m.ForMonth(r, recs[0])
		require.NoError(t, err)
		assert.Greater(t, c.TotalPerFlight(), prev, "%.0f miles", miles)
		prev = c.TotalPerFlight()
	}
}

func TestCostMonotonicInAircraftSize(t *testing.T) {
	m := NewCostModel(config.Default())
	prev := rp.CostRecord{}
	for _,ac := range []rp.AircraftType{rp.Regional, rp.NarrowBody, rp.WideBody} {
		r := testRoute(t, "ATL", "JFK", 700, 1)
		r.Aircraft = ac
		recs,err := ForRoute(r, 0.8)
		require.NoError(t, err)
		c,err := m.ForMonth(r, recs[0])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.FuelPerFlight, prev.FuelPerFlight, ac)
		assert.GreaterOrEqual(t, c.CrewPerFlight, prev.CrewPerFlight, ac)
		assert.GreaterOrEqual(t, c.MaintenancePerFlight, prev.MaintenancePerFlight, ac)
		prev = c
	}
}

func TestCostGenerateJoin(t *testing.T) {
	m := NewCostModel(config.Default())
	a := testRoute(t, "SFO", "SMF", 100, 3)
	b := testRoute(t, "BOS", "MIA", 1250, 2)

	da,_ := ForRoute(a, 0.8)
	db,_ := ForRoute(b, 0.8)
	demand := append(da, db...)

	costs,err := m.Generate([]rp.Route{a,b}, demand)
	require.NoError(t, err)
	require.Len(t, costs, 24)
	for i,c := range costs {
		assert.Equal(t, demand[i].Key(), c.Key())
		assert.Greater(t, c.Total, 0.0)
	}

	_,err = m.Generate([]rp.Route{a}, demand)
	assert.ErrorIs(t, err, rp.ErrMissingJoin)
}

func TestFlightsFor(t *testing.T) {
	tests := []struct{
		pax      float64
		flights  int
		seats    int
		targetLF float64
		expected int
	}{
		{760, 20, 76, 1.0, 10},
		{761, 20, 76, 1.0, 11},   // a partly filled aircraft still flies
		{760, 20, 76, 0.5, 20},
		{760, 15, 76, 0.5, 15},   // never more than the schedule
		{0, 20, 76, 0.8, 0},
		{760, 20, 0, 0.8, 0},
		{760, 20, 76, 0, 20},     // no target flies the schedule
	}

	for i,test := range tests {
		d := rp.DemandRecord{Passengers: test.pax, Flights: test.flights}
		if actual := FlightsFor(d, test.seats, test.targetLF); actual != test.expected {
			t.Errorf("[%d] FlightsFor(%.0f pax, %d sched, %d seats, %.2f): expected %d, got %d",
				i, test.pax, test.flights, test.seats, test.targetLF, test.expected, actual)
		}
	}
}

func TestCostFollowsDemand(t *testing.T) {
	m := NewCostModel(config.Default())
	r := testRoute(t, "SFO", "LAX", 350, 4) // 124 scheduled in January

	costs := []rp.CostRecord{}
	for _,lf := range []float64{0.0, 0.3, 0.9, 1.0} {
		recs,err := ForRoute(r, lf)
		require.NoError(t, err)
		c,err := m.ForMonth(r, recs[0])
		require.NoError(t, err)
		costs = append(costs, c)
	}

	assert.Equal(t, 0, costs[0].Flights)
	assert.Equal(t, 0.0, costs[0].Total)
	assert.Equal(t, 41, costs[1].Flights)
	assert.Equal(t, 122, costs[2].Flights)
	assert.Equal(t, 124, costs[3].Flights)

	for i:=1; i<len(costs); i++ {
		assert.GreaterOrEqual(t, costs[i].Flights, costs[i-1].Flights)
		assert.Greater(t, costs[i].Total, costs[i-1].Total)
	}

	// Per-flight figures depend on the route and month only.
	assert.Equal(t, costs[1].TotalPerFlight(), costs[3].TotalPerFlight())
}
