package report

import(
	"fmt"
	"strings"

	"github.com/skypies/util/histogram"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/analysis"
	"github.com/skypies/routeprofit/recommend"
)

// The tables an analysis run exports.
const(
	RoutesTable          = "routes"
	MonthlyTable         = "monthly"
	SummaryTable         = "summary"
	FuelTable            = "fuel"
	RecommendationsTable = "recommendations"
	RouteTypesTable      = "routetypes"
)

func init() {
	HandleReport(RoutesTable, RoutesReporter, "One row per route, with annual figures and recommendation")
	SummarizeReport(RoutesTable, summarizeRoutes)
	HandleReport(MonthlyTable, MonthlyReporter, "One row per route-month: demand, revenue, cost, profit")
	HandleReport(SummaryTable, SummaryReporter, "Network totals and recommendation counts")
	HandleReport(FuelTable, FuelReporter, "Monthly jet fuel price and seasonal demand multiplier")
	HandleReport(RecommendationsTable, RecommendationsReporter, "Routes grouped by recommendation")
	HandleReport(RouteTypesTable, RouteTypesReporter, "Performance aggregated by route type")
}

// ExportTables are written on every run, in this order.
var ExportTables = []string{RoutesTable, MonthlyTable, SummaryTable, FuelTable,
	RecommendationsTable, RouteTypesTable}

func f0(v float64) string { return fmt.Sprintf("%.0f", v) }
func f2(v float64) string { return fmt.Sprintf("%.2f", v) }
func f4(v float64) string { return fmt.Sprintf("%.4f", v) }

// {{{ RoutesReporter

func RoutesReporter(r *Report, a *analysis.Analysis) error {
	r.SetHeaders([]string{
		"route_id", "origin", "destination", "origin_tier", "destination_tier", "route_type",
		"distance_miles", "flight_time_hours", "daily_flights", "aircraft", "fare_index",
		"annual_passengers", "annual_revenue", "annual_cost", "annual_profit",
		"profit_margin_pct", "roi_pct", "avg_load_factor", "recommendation",
	})

	// Average load factor, in tenths of a percent
	r.H = histogram.Histogram{ValMin:0, ValMax:1000, NumBuckets:20}

	for _,s := range a.Summaries {
		r.I["[A] Routes considered"]++
		if !r.WantRouteType(s.RouteType) || !r.WantRecommendation(s.Recommendation) {
			r.I["[B] Skipped by filter"]++
			continue
		}
		r.I[fmt.Sprintf("[C] %s", s.Recommendation)]++
		r.F["[D] Annual profit ($M)"] += s.AnnualProfit / 1e6
		r.H.Add(histogram.ScalarVal(int(s.AvgLoadFactor * 1000.0)))

		r.AddRow([]string{
			s.ID, s.Origin, s.Destination, s.OriginTier.String(), s.DestinationTier.String(),
			string(s.RouteType),
			f2(s.DistanceMiles), f2(s.FlightTimeHours), fmt.Sprintf("%d", s.DailyFlights),
			string(s.Aircraft), f4(s.FareIndex),
			f0(s.AnnualPassengers), f2(s.AnnualRevenue), f2(s.AnnualCost), f2(s.AnnualProfit),
			s.MarginPct.String(), s.ROIPct.String(), f4(s.AvgLoadFactor), s.Recommendation.String(),
		})
	}
	return nil
}

func summarizeRoutes(r *Report) {
	r.Infof("%d routes, $%.2fM annual profit\n", len(r.RowsText), r.F["[D] Annual profit ($M)"])
	for _,rec := range rp.Recommendations {
		r.Infof("  %-8s %d\n", rec, r.I[fmt.Sprintf("[C] %s", rec)])
	}
}

// }}}
// {{{ MonthlyReporter

func MonthlyReporter(r *Report, a *analysis.Analysis) error {
	r.SetHeaders([]string{
		"route_id", "month", "month_name", "scheduled_flights", "flights_operated",
		"seat_capacity", "base_demand",
		"seasonal_multiplier", "passengers", "spilled_passengers", "load_factor",
		"average_fare", "revenue",
		"fuel_cost", "crew_cost", "maintenance_cost", "airport_fees", "total_cost",
		"profit", "margin_pct", "roi_pct",
	})

	routes := map[string]rp.Route{}
	for _,rt := range a.Routes { routes[rt.ID] = rt }
	demand := a.DemandFor()
	costs := a.CostFor()

	for _,p := range a.Monthly {
		r.I["[A] Route-months considered"]++
		if !r.WantMonth(p.Month) || !r.WantRouteType(routes[p.RouteID].RouteType) {
			r.I["[B] Skipped by filter"]++
			continue
		}

		d,existsD := demand[p.Key()]
		c,existsC := costs[p.Key()]
		if !existsD || !existsC {
			return fmt.Errorf("%s: %w", p.Key(), rp.ErrMissingJoin)
		}
		if d.LoadFactor >= 1.0 { r.I["[C] Route-months at capacity"]++ }

		r.AddRow([]string{
			p.RouteID, fmt.Sprintf("%d", p.Month), rp.MonthName(p.Month),
			fmt.Sprintf("%d", d.Flights), fmt.Sprintf("%d", c.Flights), f0(d.SeatCapacity), f2(d.BaseDemand),
			f4(d.SeasonalMultiplier), f2(d.Passengers), f2(d.SpilledPassengers()), f4(d.LoadFactor),
			f2(p.AverageFare), f2(p.Revenue),
			f2(c.Fuel), f2(c.Crew), f2(c.Maintenance), f2(c.AirportFees), f2(c.Total),
			f2(p.Profit), p.MarginPct.String(), p.ROIPct.String(),
		})
	}
	return nil
}

// }}}
// {{{ SummaryReporter

func SummaryReporter(r *Report, a *analysis.Analysis) error {
	r.SetHeaders([]string{"metric", "value"})
	for _,row := range a.Stats.Rows() {
		r.AddRow(row)
	}
	return nil
}

// }}}
// {{{ FuelReporter

func FuelReporter(r *Report, a *analysis.Analysis) error {
	r.SetHeaders([]string{"month", "month_name", "fuel_price_per_gallon", "seasonal_multiplier",
		"holiday_fare_premium"})

	for m:=1; m<=12; m++ {
		premium := 1.0
		if rp.IsHolidayMonth(m) { premium = a.Config.Fare.HolidayPremium }
		r.AddRow([]string{
			fmt.Sprintf("%d", m), rp.MonthName(m), f2(rp.FuelPrice(m)),
			f4(rp.SeasonalMultiplier(m)), f2(premium),
		})
	}
	return nil
}

// }}}
// {{{ RecommendationsReporter

func RecommendationsReporter(r *Report, a *analysis.Analysis) error {
	r.SetHeaders([]string{"recommendation", "routes", "route_ids", "rationale"})
	for _,g := range recommend.Groups(a.Summaries) {
		r.AddRow([]string{
			g.Recommendation.String(), fmt.Sprintf("%d", len(g.RouteIDs)),
			strings.Join(g.RouteIDs, " "), g.Rationale,
		})
	}
	r.S["[A] Expand ROI cutoff (%)"] = a.ExpandCutoff.String()
	return nil
}

// }}}
// {{{ RouteTypesReporter

func RouteTypesReporter(r *Report, a *analysis.Analysis) error {
	r.SetHeaders([]string{"route_type", "routes", "total_profit", "margin_pct"})

	stats,err := analysis.ByRouteType(a.Summaries)
	if err != nil { return err }
	for _,s := range stats {
		r.AddRow([]string{
			string(s.RouteType), fmt.Sprintf("%d", s.Routes), f2(s.TotalProfit), s.MarginPct.String(),
		})
	}
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
