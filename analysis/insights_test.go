package analysis

import(
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rp "github.com/skypies/routeprofit"
)

func fakeSummary(id string, rt rp.RouteType, rev, cost float64) rp.RouteSummary {
	s := rp.RouteSummary{AnnualRevenue: rev, AnnualCost: cost, AnnualProfit: rev-cost}
	s.ID = id
	s.RouteType = rt
	s.MarginPct = rp.Percent(s.AnnualProfit, rev)
	s.ROIPct = rp.Percent(s.AnnualProfit, cost)
	return s
}

func ids(ss []rp.RouteSummary) []string {
	out := []string{}
	for _,s := range ss { out = append(out, s.ID) }
	return out
}

var insightFixture = []rp.RouteSummary{
	fakeSummary("A", rp.MajorMajor,   100, 50),  // profit 50, roi 100
	fakeSummary("B", rp.MajorMedium,  300, 200), // profit 100, roi 50
	fakeSummary("C", rp.MediumMedium, 10, 30),   // profit -20
	fakeSummary("D", rp.MajorMajor,   200, 150), // profit 50, roi 33
	fakeSummary("E", rp.MediumMedium, 0, 0),     // undefined roi
}

func TestRankings(t *testing.T) {
	top,err := MostProfitable(insightFixture, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D"}, ids(top))

	bottom,err := LeastProfitable(insightFixture, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "E"}, ids(bottom))

	roi,err := HighestROI(insightFixture, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, ids(roi))

	none,err := MostProfitable(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestByRouteType(t *testing.T) {
	stats,err := ByRouteType(insightFixture)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, rp.MajorMajor, stats[0].RouteType)
	assert.Equal(t, 2, stats[0].Routes)
	assert.InDelta(t, 100.0, stats[0].TotalProfit, 1e-9)
	assert.InDelta(t, 100.0/300.0*100.0, stats[0].MarginPct.Float64, 1e-9)

	assert.Equal(t, rp.MajorMedium, stats[1].RouteType)
	assert.Equal(t, 1, stats[1].Routes)

	assert.Equal(t, rp.MediumMedium, stats[2].RouteType)
	assert.Equal(t, 2, stats[2].Routes)
	assert.InDelta(t, -20.0, stats[2].TotalProfit, 1e-9)
}

func TestInsights(t *testing.T) {
	in,err := NewInsights(insightFixture, 2)
	require.NoError(t, err)
	assert.Len(t, in.MostProfitable, 2)
	assert.Len(t, in.LeastProfitable, 2)
	assert.Len(t, in.HighestROI, 2)
	assert.Len(t, in.ByRouteType, 3)
}
