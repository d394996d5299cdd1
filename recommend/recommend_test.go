package recommend

import(
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

func summary(id string, profit, margin, roi float64) rp.RouteSummary {
	s := rp.RouteSummary{AnnualProfit: profit, MarginPct: rp.Defined(margin), ROIPct: rp.Defined(roi)}
	s.ID = id
	return s
}

func TestPercentile(t *testing.T) {
	tests := []struct{
		Vals []float64
		P    float64
		Want float64
	}{
		{[]float64{5},                   80, 5},
		{[]float64{1, 2, 3, 4, 5},       80, 4.2},
		{[]float64{5, 4, 3, 2, 1},       80, 4.2},
		{[]float64{1, 2, 3, 4, 5},       50, 3},
		{[]float64{1, 2, 3, 4, 5},        0, 1},
		{[]float64{1, 2, 3, 4, 5},      100, 5},
		{[]float64{10, 20},              80, 18},
	}
	for _,test := range tests {
		got,ok := Percentile(test.Vals, test.P)
		require.True(t, ok)
		assert.InDelta(t, test.Want, got, 1e-9, "%v p%.0f", test.Vals, test.P)
	}

	_,ok := Percentile(nil, 80)
	assert.False(t, ok)
}

func TestPercentileDoesNotReorderInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	Percentile(vals, 50)
	assert.Equal(t, []float64{3, 1, 2}, vals)
}

func TestLabel(t *testing.T) {
	c := NewClassifier(config.Default())
	cutoff := 20.0

	tests := []struct{
		S    rp.RouteSummary
		Want rp.Recommendation
	}{
		{summary("loss", -1, -5, -3),     rp.Review},
		{summary("zero", 0, 0, 0),        rp.Review},
		{summary("lossHiROI", -1, 50, 99), rp.Review},
		{summary("top", 10, 30, 25),      rp.Expand},
		{summary("atCutoff", 10, 5, 20),  rp.Expand},   // ties go up
		{summary("thin", 10, 9.99, 19),   rp.Optimize},
		{summary("atMargin", 10, 10, 19), rp.Stable},   // ties go up
		{summary("healthy", 10, 25, 15),  rp.Stable},
		{rp.RouteSummary{AnnualProfit: 5}, rp.Stable},  // undefined ratios
		{rp.RouteSummary{AnnualProfit: -5}, rp.Review},
	}
	for _,test := range tests {
		got := c.Label(test.S, cutoff, true)
		if got != test.Want {
			t.Errorf("%s: expected %s, got %s", test.S.ID, test.Want, got)
		}
	}
}

func TestThresholdIgnoresLosses(t *testing.T) {
	c := Classifier{Percentile: 80, OptimizeMarginPct: 10}
	ss := []rp.RouteSummary{
		summary("a", 1, 10, 10),
		summary("b", 1, 10, 20),
		summary("c", -1, -90, -80),
		summary("d", -1, -90, -70),
		{AnnualProfit: 1}, // undefined ROI
	}
	cutoff,ok := c.Threshold(ss)
	require.True(t, ok)
	assert.InDelta(t, 18.0, cutoff, 1e-9)
}

func TestClassify(t *testing.T) {
	c := Classifier{Percentile: 80, OptimizeMarginPct: 10}

	ss := []rp.RouteSummary{}
	for i:=1; i<=100; i++ {
		ss = append(ss, summary(fmt.Sprintf("R%03d", i), float64(i), float64(i%20), float64(i)))
	}
	for i:=1; i<=10; i++ {
		ss = append(ss, summary(fmt.Sprintf("L%03d", i), -float64(i), -1, -1))
	}

	out,cutoff := c.Classify(ss)
	require.Len(t, out, len(ss))
	require.True(t, cutoff.Valid)
	assert.InDelta(t, 80.2, cutoff.Float64, 1e-9)

	counts := Counts(out)
	assert.Equal(t, 20, counts[rp.Expand])
	assert.Equal(t, 10, counts[rp.Review])
	assert.Equal(t, 110, counts[rp.Expand]+counts[rp.Optimize]+counts[rp.Stable]+counts[rp.Review])

	for i,s := range out {
		assert.Equal(t, ss[i].ID, s.ID)
		assert.Equal(t, rp.Unclassified, ss[i].Recommendation, "input was modified")
		if s.AnnualProfit <= 0 {
			assert.Equal(t, rp.Review, s.Recommendation, s.ID)
		}
		if s.Recommendation == rp.Expand {
			assert.Greater(t, s.AnnualProfit, 0.0, s.ID)
		}
	}
}

func TestClassifyAllLosses(t *testing.T) {
	c := Classifier{Percentile: 80, OptimizeMarginPct: 10}
	out,cutoff := c.Classify([]rp.RouteSummary{summary("a", -1, -1, -1), summary("b", -2, -2, -2)})
	assert.False(t, cutoff.Valid)
	for _,s := range out {
		assert.Equal(t, rp.Review, s.Recommendation)
	}
}

func TestGroups(t *testing.T) {
	ss := []rp.RouteSummary{
		{Recommendation: rp.Review},
		{Recommendation: rp.Expand},
		{Recommendation: rp.Review},
	}
	ss[0].ID, ss[1].ID, ss[2].ID = "X", "Y", "Z"

	groups := Groups(ss)
	require.Len(t, groups, len(rp.Recommendations))
	assert.Equal(t, rp.Expand, groups[0].Recommendation)
	assert.Equal(t, []string{"Y"}, groups[0].RouteIDs)
	assert.Equal(t, []string{}, groups[1].RouteIDs)
	assert.Equal(t, []string{"X","Z"}, groups[3].RouteIDs)
	assert.NotEmpty(t, groups[3].Rationale)
}
