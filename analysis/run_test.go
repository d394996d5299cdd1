package analysis

import(
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

func TestRunDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42
	cfg.RouteCount = 10

	a,err := Run(cfg)
	require.NoError(t, err)
	b,err := Run(cfg)
	require.NoError(t, err)

	require.Len(t, a.Summaries, 10)
	assert.Equal(t, a.Routes, b.Routes)
	assert.Equal(t, a.Demand, b.Demand)
	assert.Equal(t, a.Costs, b.Costs)
	assert.Equal(t, a.Monthly, b.Monthly)
	assert.Equal(t, a.Summaries, b.Summaries)
	assert.Equal(t, a.ExpandCutoff, b.ExpandCutoff)
}

func TestRunDefaultHeadline(t *testing.T) {
	a,err := Run(config.Default())
	require.NoError(t, err)

	st := a.Stats
	assert.Equal(t, 105, st.TotalRoutes)
	assert.InDelta(t, 78.0, st.ProfitablePct(), 3.0)
	assert.InDelta(t, 45.2e6, st.TotalProfit, 5e6)
	assert.InDelta(t, 0.82, st.AvgLoadFactor, 0.01)
	for _,rec := range rp.Recommendations {
		assert.Greater(t, st.Counts[rec], 0, "no routes labeled %s", rec)
	}
}

func TestRunHundredRoutes(t *testing.T) {
	cfg := config.Default()
	cfg.RouteCount = 100

	a,err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, a.Routes, 100)
	require.Len(t, a.Demand, 1200)
	require.Len(t, a.Costs, 1200)
	require.Len(t, a.Monthly, 1200)
	require.Len(t, a.Summaries, 100)

	counts := map[rp.Recommendation]int{}
	for _,s := range a.Summaries {
		counts[s.Recommendation]++

		assert.NotEqual(t, rp.Unclassified, s.Recommendation, s.ID)
		if !s.Profitable() {
			assert.Equal(t, rp.Review, s.Recommendation, s.ID)
		}
		if s.Recommendation == rp.Expand {
			assert.True(t, s.Profitable(), s.ID)
			assert.GreaterOrEqual(t, s.ROIPct.Float64, a.ExpandCutoff.Float64, s.ID)
		}
		assert.Equal(t, s.AnnualRevenue-s.AnnualCost, s.AnnualProfit, s.ID)
	}
	for _,rec := range []rp.Recommendation{rp.Expand, rp.Optimize, rp.Review} {
		assert.Greater(t, counts[rec], 0, "no routes labeled %s", rec)
	}

	// Roughly the top fifth of profitable routes should be Expand.
	frac := float64(counts[rp.Expand]) / float64(a.Stats.ProfitableRoutes)
	assert.InDelta(t, 0.2, frac, 0.05)

	for _,d := range a.Demand {
		assert.Greater(t, d.LoadFactor, 0.0)
		assert.LessOrEqual(t, d.LoadFactor, 1.0)
	}
	for _,c := range a.Costs {
		assert.Greater(t, c.Total, 0.0)
	}

	assert.Equal(t, 100, a.Stats.TotalRoutes)
	assert.InDelta(t, a.Stats.TotalRevenue-a.Stats.TotalCost, a.Stats.TotalProfit, 1e-3)
}

func TestRunNothingProfitable(t *testing.T) {
	cfg := config.Default()
	cfg.RouteCount = 20
	cfg.Fare.BaseFare = 0
	cfg.Fare.PerMileRate = 0.01

	a,err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Stats.ProfitableRoutes)
	assert.False(t, a.ExpandCutoff.Valid)
	assert.False(t, a.Stats.ExpandCutoffPct.Valid)
	assert.Equal(t, 20, a.Stats.Counts[rp.Review])

	for _,row := range a.Stats.Rows() {
		if row[0] == "expand_roi_cutoff" {
			assert.Equal(t, "", row[1])
		}
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.RouteCount = 0
	_,err := Run(cfg)
	assert.ErrorIs(t, err, rp.ErrInvalidConfig)

	cfg = config.Default()
	cfg.RouteCount = rp.MaxRoutes() + 1
	_,err = Run(cfg)
	assert.ErrorIs(t, err, rp.ErrTooManyRoutes)

	cfg = config.Default()
	cfg.BaselineLoadFactor = 1.2
	_,err = Run(cfg)
	assert.ErrorIs(t, err, rp.ErrInvalidConfig)
}
