package analysis

import(
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
	"github.com/skypies/routeprofit/generate"
	"github.com/skypies/routeprofit/recommend"
)

func testRoute(t *testing.T, orig, dest string, miles float64, daily int) rp.Route {
	t.Helper()
	r,err := rp.NewRoute(orig, dest, miles)
	require.NoError(t, err)
	r.DailyFlights = daily
	return r
}

func TestFare(t *testing.T) {
	m := NewFareModel(config.Default())
	r := testRoute(t, "BOS", "MIA", 1000, 2)

	jan := 10.0 + 0.555*math.Pow(1000, 0.72)
	assert.InDelta(t, jan, m.Fare(r, 1), 1e-9)
	assert.InDelta(t, jan*1.10, m.Fare(r, 11), 1e-9)
	assert.InDelta(t, jan*1.10, m.Fare(r, 12), 1e-9)

	r.FareIndex = 1.05
	assert.InDelta(t, jan*1.05, m.Fare(r, 3), 1e-9)

	r.FareIndex = 0
	assert.InDelta(t, jan, m.Fare(r, 3), 1e-9)
}

func TestFareDiminishingPerMile(t *testing.T) {
	m := NewFareModel(config.Default())
	prevFare,prevPerMile := 0.0, math.Inf(1)
	for _,miles := range []float64{200, 500, 1000, 2000, 3000} {
		f := m.Fare(testRoute(t, "BOS", "MIA", miles, 1), 1)
		assert.Greater(t, f, prevFare)
		assert.Less(t, f/miles, prevPerMile)
		prevFare,prevPerMile = f, f/miles
	}
}

func pipeline(t *testing.T, cfg config.Config, routes []rp.Route) ([]rp.DemandRecord, []rp.CostRecord) {
	t.Helper()
	demand,err := generate.NewDemandModel(cfg, generate.NewRand(1, generate.DemandStream)).Generate(routes)
	require.NoError(t, err)
	costs,err := generate.NewCostModel(cfg).Generate(routes, demand)
	require.NoError(t, err)
	return demand, costs
}

func TestMonthlyAndSummarize(t *testing.T) {
	cfg := config.Default()
	routes := []rp.Route{
		testRoute(t, "SFO", "SMF", 90, 4),
		testRoute(t, "BOS", "MIA", 1250, 3),
		testRoute(t, "JFK", "LAX", 2550, 2),
	}
	demand,costs := pipeline(t, cfg, routes)

	monthly,err := NewEngine(cfg).Monthly(routes, demand, costs)
	require.NoError(t, err)
	require.Len(t, monthly, 36)

	for i,p := range monthly {
		assert.Equal(t, demand[i].Key(), p.Key())
		assert.InDelta(t, p.Passengers*p.AverageFare, p.Revenue, 1e-6)
		assert.InDelta(t, costs[i].Total, p.Cost, 1e-9)
		assert.InDelta(t, p.Revenue-p.Cost, p.Profit, 1e-9)
		require.True(t, p.MarginPct.Valid)
		assert.InDelta(t, p.Profit/p.Revenue*100, p.MarginPct.Float64, 1e-9)
	}

	summaries,err := Summarize(routes, monthly)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	for i,s := range summaries {
		assert.Equal(t, routes[i].ID, s.ID)
		assert.Equal(t, rp.Unclassified, s.Recommendation)
		assert.Equal(t, s.AnnualRevenue-s.AnnualCost, s.AnnualProfit)
		require.True(t, s.MarginPct.Valid)
		assert.InDelta(t, s.AnnualProfit/s.AnnualRevenue*100, s.MarginPct.Float64, 1e-9)
		assert.Greater(t, s.AvgLoadFactor, 0.0)
		assert.LessOrEqual(t, s.AvgLoadFactor, 1.0)

		// Monthly ROIs share the annual denominator, so they add up.
		roiSum := 0.0
		for _,p := range monthly[12*i:12*i+12] { roiSum += p.ROIPct.Float64 }
		assert.InDelta(t, s.ROIPct.Float64, roiSum, 1e-6)
	}
}

func TestMonthlyMissingJoin(t *testing.T) {
	cfg := config.Default()
	routes := []rp.Route{testRoute(t, "SFO", "SMF", 90, 4)}
	demand,costs := pipeline(t, cfg, routes)

	_,err := NewEngine(cfg).Monthly(routes, demand, costs[:11])
	assert.ErrorIs(t, err, rp.ErrMissingJoin)

	_,err = NewEngine(cfg).Monthly(nil, demand, costs)
	assert.ErrorIs(t, err, rp.ErrMissingJoin)

	monthly,err := NewEngine(cfg).Monthly(routes, demand, costs)
	require.NoError(t, err)
	_,err = Summarize(routes, monthly[1:])
	assert.ErrorIs(t, err, rp.ErrMissingJoin)
}

func TestZeroDemandRoute(t *testing.T) {
	cfg := config.Default()
	empty := testRoute(t, "SFO", "SMF", 90, 4)
	busy := testRoute(t, "IND", "AUS", 935, 3)
	routes := []rp.Route{empty, busy}

	emptyDemand,err := generate.ForRoute(empty, 0.0)
	require.NoError(t, err)
	busyDemand,err := generate.ForRoute(busy, 0.85)
	require.NoError(t, err)
	demand := append(emptyDemand, busyDemand...)

	costs,err := generate.NewCostModel(cfg).Generate(routes, demand)
	require.NoError(t, err)
	for _,c := range costs[:12] {
		assert.Equal(t, 0, c.Flights)
		assert.Equal(t, 0.0, c.Total)
	}

	monthly,err := NewEngine(cfg).Monthly(routes, demand, costs)
	require.NoError(t, err)
	for _,p := range monthly[:12] {
		assert.Equal(t, 0.0, p.Revenue)
		assert.False(t, p.MarginPct.Valid)
		assert.False(t, p.ROIPct.Valid)
	}

	summaries,err := Summarize(routes, monthly)
	require.NoError(t, err)
	classified,cutoff := recommend.NewClassifier(cfg).Classify(summaries)

	s := classified[0]
	assert.Equal(t, 0.0, s.AnnualRevenue)
	assert.Equal(t, 0.0, s.AnnualProfit)
	assert.False(t, s.MarginPct.Valid)
	assert.False(t, s.ROIPct.Valid)
	assert.Equal(t, rp.Review, s.Recommendation)

	// A route with zero demand is left out of the cutoff sample.
	assert.True(t, classified[1].Profitable())
	require.True(t, cutoff.Valid)
	assert.Equal(t, classified[1].ROIPct.Float64, cutoff.Float64)
	assert.Equal(t, rp.Expand, classified[1].Recommendation)
}

func TestZeroDemandWithStandingCost(t *testing.T) {
	cfg := config.Default()
	r := testRoute(t, "SFO", "SMF", 90, 4)
	demand,err := generate.ForRoute(r, 0.0)
	require.NoError(t, err)

	// Costs carried over from a schedule that was flown empty.
	flown,err := generate.ForRoute(r, 0.8)
	require.NoError(t, err)
	costs,err := generate.NewCostModel(cfg).Generate([]rp.Route{r}, flown)
	require.NoError(t, err)

	monthly,err := NewEngine(cfg).Monthly([]rp.Route{r}, demand, costs)
	require.NoError(t, err)
	summaries,err := Summarize([]rp.Route{r}, monthly)
	require.NoError(t, err)
	classified,cutoff := recommend.NewClassifier(cfg).Classify(summaries)

	s := classified[0]
	assert.Greater(t, s.AnnualCost, 0.0)
	assert.Less(t, s.AnnualProfit, 0.0)
	assert.False(t, s.MarginPct.Valid)
	require.True(t, s.ROIPct.Valid)
	assert.Equal(t, -100.0, s.ROIPct.Float64)
	assert.Equal(t, rp.Review, s.Recommendation)
	assert.False(t, cutoff.Valid)
}
