package analysis

import(
	"fmt"
	"strings"

	"github.com/skypies/util/histogram"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/recommend"
)

// SummaryStats are the network-wide totals of a classified run.
type SummaryStats struct {
	TotalRoutes      int
	ProfitableRoutes int
	TotalPassengers  float64
	TotalRevenue     float64
	TotalCost        float64
	TotalProfit      float64
	AvgMarginPct     float64 // mean over routes with a defined margin
	AvgROIPct        float64 // mean over routes with a defined ROI
	AvgLoadFactor    float64
	ExpandCutoffPct  rp.NullFloat
	Counts           map[rp.Recommendation]int

	// Route average load factors, in tenths of a percent.
	LoadFactors      histogram.Histogram
}

func NewSummaryStats(summaries []rp.RouteSummary, cutoff rp.NullFloat) SummaryStats {
	st := SummaryStats{
		TotalRoutes: len(summaries),
		ExpandCutoffPct: cutoff,
		Counts: recommend.Counts(summaries),
		LoadFactors: histogram.Histogram{ValMin:0, ValMax:1000, NumBuckets:20},
	}

	nMargin,nROI := 0,0
	for _,s := range summaries {
		if s.Profitable() { st.ProfitableRoutes++ }
		st.TotalPassengers += s.AnnualPassengers
		st.TotalRevenue += s.AnnualRevenue
		st.TotalCost += s.AnnualCost
		st.AvgLoadFactor += s.AvgLoadFactor
		if s.MarginPct.Valid {
			st.AvgMarginPct += s.MarginPct.Float64
			nMargin++
		}
		if s.ROIPct.Valid {
			st.AvgROIPct += s.ROIPct.Float64
			nROI++
		}
		st.LoadFactors.Add(histogram.ScalarVal(int(s.AvgLoadFactor * 1000.0)))
	}
	st.TotalProfit = st.TotalRevenue - st.TotalCost

	if nMargin > 0 { st.AvgMarginPct /= float64(nMargin) }
	if nROI > 0 { st.AvgROIPct /= float64(nROI) }
	if st.TotalRoutes > 0 { st.AvgLoadFactor /= float64(st.TotalRoutes) }

	return st
}

func (st SummaryStats)ProfitablePct() float64 {
	if st.TotalRoutes == 0 { return 0 }
	return float64(st.ProfitableRoutes) / float64(st.TotalRoutes) * 100.0
}

// Rows is the summary as (metric,value) pairs, in a fixed order.
func (st SummaryStats)Rows() [][]string {
	rows := [][]string{
		{"total_routes",        fmt.Sprintf("%d", st.TotalRoutes)},
		{"profitable_routes",   fmt.Sprintf("%d", st.ProfitableRoutes)},
		{"profitable_pct",      fmt.Sprintf("%.1f", st.ProfitablePct())},
		{"total_passengers",    fmt.Sprintf("%.0f", st.TotalPassengers)},
		{"total_revenue",       fmt.Sprintf("%.2f", st.TotalRevenue)},
		{"total_cost",          fmt.Sprintf("%.2f", st.TotalCost)},
		{"total_profit",        fmt.Sprintf("%.2f", st.TotalProfit)},
		{"avg_margin_pct",      fmt.Sprintf("%.2f", st.AvgMarginPct)},
		{"avg_roi_pct",         fmt.Sprintf("%.2f", st.AvgROIPct)},
		{"avg_load_factor",     fmt.Sprintf("%.4f", st.AvgLoadFactor)},
		{"expand_roi_cutoff",   st.ExpandCutoffPct.String()},
	}
	for _,rec := range rp.Recommendations {
		rows = append(rows, []string{"routes_" + strings.ToLower(rec.String()), fmt.Sprintf("%d", st.Counts[rec])})
	}
	return rows
}

func (st SummaryStats)String() string {
	str := fmt.Sprintf("Routes analyzed:       %d\n", st.TotalRoutes)
	str += fmt.Sprintf("Profitable routes:     %d (%.1f%%)\n", st.ProfitableRoutes, st.ProfitablePct())
	str += fmt.Sprintf("Average profit margin: %.1f%%\n", st.AvgMarginPct)
	str += fmt.Sprintf("Total annual profit:   $%.1fM\n", st.TotalProfit/1e6)
	str += fmt.Sprintf("Average load factor:   %.1f%%\n", st.AvgLoadFactor*100.0)
	if hs,valid := st.LoadFactors.Stats(); valid {
		str += fmt.Sprintf("Load factor spread:    median %.1f%%, 90%%ile %.1f%%, stddev %.1f%%\n",
			float64(hs.Percentile50)/10.0, float64(hs.Percentile90)/10.0, float64(hs.Stddev)/10.0)
	}
	return str
}
