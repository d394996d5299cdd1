package analysis

import(
	"fmt"

	"github.com/go-gota/gota/dataframe"

	rp "github.com/skypies/routeprofit"
)

// insightRow is the flat shape a RouteSummary takes inside a dataframe.
type insightRow struct {
	RouteID   string
	RouteType string
	Revenue   float64
	Cost      float64
	Profit    float64
	ROI       float64
}

func toRows(summaries []rp.RouteSummary, needROI bool) []insightRow {
	rows := []insightRow{}
	for _,s := range summaries {
		if needROI && !s.ROIPct.Valid { continue }
		rows = append(rows, insightRow{
			RouteID: s.ID,
			RouteType: string(s.RouteType),
			Revenue: s.AnnualRevenue,
			Cost: s.AnnualCost,
			Profit: s.AnnualProfit,
			ROI: s.ROIPct.Float64,
		})
	}
	return rows
}

// rank orders summaries by col (descending, or ascending if asc) with route ID as
// the tiebreak, and returns the first n.
func rank(summaries []rp.RouteSummary, col string, asc bool, n int) ([]rp.RouteSummary, error) {
	rows := toRows(summaries, col == "ROI")
	if len(rows) == 0 || n <= 0 { return []rp.RouteSummary{}, nil }

	order := dataframe.RevSort(col)
	if asc { order = dataframe.Sort(col) }

	df := dataframe.LoadStructs(rows).Arrange(order, dataframe.Sort("RouteID"))
	if df.Err != nil { return nil, fmt.Errorf("rank by %s: %v", col, df.Err) }

	byID := map[string]rp.RouteSummary{}
	for _,s := range summaries { byID[s.ID] = s }

	out := []rp.RouteSummary{}
	for _,id := range df.Col("RouteID").Records() {
		if len(out) >= n { break }
		out = append(out, byID[id])
	}
	return out, nil
}

// MostProfitable returns the n routes with the highest annual profit.
func MostProfitable(summaries []rp.RouteSummary, n int) ([]rp.RouteSummary, error) {
	return rank(summaries, "Profit", false, n)
}

// LeastProfitable returns the n routes with the lowest annual profit.
func LeastProfitable(summaries []rp.RouteSummary, n int) ([]rp.RouteSummary, error) {
	return rank(summaries, "Profit", true, n)
}

// HighestROI returns the n routes with the highest defined ROI.
func HighestROI(summaries []rp.RouteSummary, n int) ([]rp.RouteSummary, error) {
	return rank(summaries, "ROI", false, n)
}

// RouteTypeStats is the aggregate performance of one route type.
type RouteTypeStats struct {
	RouteType   rp.RouteType
	Routes      int
	TotalProfit float64
	MarginPct   rp.NullFloat // total profit / total revenue
}

func (s RouteTypeStats)String() string {
	return fmt.Sprintf("%-13s %3d routes, profit $%7.2fM, margin %s%%", s.RouteType, s.Routes,
		s.TotalProfit/1e6, s.MarginPct)
}

// ByRouteType groups summaries by route type, ordered by type name.
func ByRouteType(summaries []rp.RouteSummary) ([]RouteTypeStats, error) {
	rows := toRows(summaries, false)
	if len(rows) == 0 { return []RouteTypeStats{}, nil }

	groups := dataframe.LoadStructs(rows).GroupBy("RouteType")
	if groups.Err != nil { return nil, fmt.Errorf("group by route type: %v", groups.Err) }

	df := groups.Aggregation(
		[]dataframe.AggregationType{
			dataframe.Aggregation_COUNT, dataframe.Aggregation_SUM, dataframe.Aggregation_SUM},
		[]string{"Profit", "Profit", "Revenue"},
	).Arrange(dataframe.Sort("RouteType"))
	if df.Err != nil { return nil, fmt.Errorf("aggregate by route type: %v", df.Err) }

	types := df.Col("RouteType").Records()
	counts := df.Col("Profit_COUNT").Float()
	profits := df.Col("Profit_SUM").Float()
	revenues := df.Col("Revenue_SUM").Float()

	out := []RouteTypeStats{}
	for i,t := range types {
		out = append(out, RouteTypeStats{
			RouteType: rp.RouteType(t),
			Routes: int(counts[i]),
			TotalProfit: profits[i],
			MarginPct: rp.Percent(profits[i], revenues[i]),
		})
	}
	return out, nil
}

// Insights are the rankings printed alongside the summary.
type Insights struct {
	MostProfitable  []rp.RouteSummary
	LeastProfitable []rp.RouteSummary
	HighestROI      []rp.RouteSummary
	ByRouteType     []RouteTypeStats
}

func NewInsights(summaries []rp.RouteSummary, n int) (Insights, error) {
	var in Insights
	var err error
	if in.MostProfitable,err = MostProfitable(summaries, n); err != nil { return in, err }
	if in.LeastProfitable,err = LeastProfitable(summaries, n); err != nil { return in, err }
	if in.HighestROI,err = HighestROI(summaries, n); err != nil { return in, err }
	if in.ByRouteType,err = ByRouteType(summaries); err != nil { return in, err }
	return in, nil
}
