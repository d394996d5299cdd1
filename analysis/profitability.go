package analysis

import(
	"fmt"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

// Engine joins demand and cost by (route,month) and derives revenue and profit.
type Engine struct {
	Fares FareModel
}

func NewEngine(cfg config.Config) Engine { return Engine{NewFareModel(cfg)} }

// AnnualCosts sums each route's monthly costs.
func AnnualCosts(costs []rp.CostRecord) map[string]float64 {
	m := map[string]float64{}
	for _,c := range costs { m[c.RouteID] += c.Total }
	return m
}

// Record prices one route-month. ROI is against the route's whole-year cost, so the
// twelve monthly ROIs of a route sum to its annual ROI.
func (e Engine)Record(r rp.Route, d rp.DemandRecord, c rp.CostRecord, annualCost float64) rp.ProfitabilityRecord {
	fare := e.Fares.Fare(r, d.Month)
	p := rp.ProfitabilityRecord{
		RouteID: r.ID,
		Month: d.Month,
		Passengers: d.Passengers,
		LoadFactor: d.LoadFactor,
		AverageFare: fare,
		Revenue: d.Passengers * fare,
		Cost: c.Total,
	}
	p.Profit = p.Revenue - p.Cost
	p.MarginPct = rp.Percent(p.Profit, p.Revenue)
	p.ROIPct = rp.Percent(p.Profit, annualCost)
	return p
}

// Monthly produces one ProfitabilityRecord per DemandRecord, in demand order. Every
// demand record needs a cost record and a route; any gap is ErrMissingJoin.
func (e Engine)Monthly(routes []rp.Route, demand []rp.DemandRecord, costs []rp.CostRecord) ([]rp.ProfitabilityRecord, error) {
	byID := map[string]rp.Route{}
	for _,r := range routes { byID[r.ID] = r }

	costByKey := map[rp.MonthKey]rp.CostRecord{}
	for _,c := range costs { costByKey[c.Key()] = c }
	if len(costByKey) != len(demand) {
		return nil, fmt.Errorf("%d demand records vs %d cost records: %w", len(demand), len(costByKey),
			rp.ErrMissingJoin)
	}

	annual := AnnualCosts(costs)

	out := make([]rp.ProfitabilityRecord, 0, len(demand))
	for _,d := range demand {
		r,exists := byID[d.RouteID]
		if !exists { return nil, fmt.Errorf("route for %s: %w", d.Key(), rp.ErrMissingJoin) }
		c,exists := costByKey[d.Key()]
		if !exists { return nil, fmt.Errorf("cost for %s: %w", d.Key(), rp.ErrMissingJoin) }

		out = append(out, e.Record(r, d, c, annual[r.ID]))
	}
	return out, nil
}

// Summarize rolls each route's twelve monthly records up into a RouteSummary, in
// route order. Annual profit is revenue minus cost over the year's sums, not a sum
// of monthly profits, so the identity holds exactly. The result is unclassified.
func Summarize(routes []rp.Route, monthly []rp.ProfitabilityRecord) ([]rp.RouteSummary, error) {
	byRoute := map[string][]rp.ProfitabilityRecord{}
	for _,p := range monthly { byRoute[p.RouteID] = append(byRoute[p.RouteID], p) }

	out := make([]rp.RouteSummary, 0, len(routes))
	for _,r := range routes {
		recs := byRoute[r.ID]
		if len(recs) != 12 {
			return nil, fmt.Errorf("route %s has %d monthly records: %w", r.ID, len(recs), rp.ErrMissingJoin)
		}

		s := rp.RouteSummary{Route: r}
		lfSum := 0.0
		for _,p := range recs {
			s.AnnualPassengers += p.Passengers
			s.AnnualRevenue += p.Revenue
			s.AnnualCost += p.Cost
			lfSum += p.LoadFactor
		}
		s.AnnualProfit = s.AnnualRevenue - s.AnnualCost
		s.MarginPct = rp.Percent(s.AnnualProfit, s.AnnualRevenue)
		s.ROIPct = rp.Percent(s.AnnualProfit, s.AnnualCost)
		s.AvgLoadFactor = lfSum / 12.0

		out = append(out, s)
	}
	return out, nil
}
