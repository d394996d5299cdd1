package routeprofit

// RouteSummaryForBigQuery is a flattened RouteSummary designed for import into
// BigQuery, one row per route per analysis run. Undefined ratios encode as JSON null.
type RouteSummaryForBigQuery struct {
	RunID           string
	RouteID         string
	Orig,Dest       string
	RouteType       string
	Aircraft        string
	DistanceMiles   float64
	DailyFlights    int

	AnnualPassengers float64
	AnnualRevenue    float64
	AnnualCost       float64
	AnnualProfit     float64
	MarginPct        NullFloat
	ROIPct           NullFloat
	AvgLoadFactor    float64

	Recommendation  string
}

func (s RouteSummary)ForBigQuery(runID string) *RouteSummaryForBigQuery {
	return &RouteSummaryForBigQuery{
		RunID: runID,
		RouteID: s.ID,
		Orig: s.Origin,
		Dest: s.Destination,
		RouteType: string(s.RouteType),
		Aircraft: string(s.Aircraft),
		DistanceMiles: s.DistanceMiles,
		DailyFlights: s.DailyFlights,

		AnnualPassengers: s.AnnualPassengers,
		AnnualRevenue: s.AnnualRevenue,
		AnnualCost: s.AnnualCost,
		AnnualProfit: s.AnnualProfit,
		MarginPct: s.MarginPct,
		ROIPct: s.ROIPct,
		AvgLoadFactor: s.AvgLoadFactor,

		Recommendation: s.Recommendation.String(),
	}
}
