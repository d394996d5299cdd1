// Package analysis turns generated routes, demand and costs into profitability
// records, route summaries and network-wide statistics, and runs the whole pipeline.
package analysis

import(
	"fmt"
	"log/slog"
	"time"

	"github.com/skypies/util/histogram"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
	"github.com/skypies/routeprofit/generate"
	"github.com/skypies/routeprofit/recommend"
)

// Analysis holds every table of a run. Each stage's output is a fresh slice; no
// stage writes into another's.
type Analysis struct {
	Config       config.Config
	Routes       []rp.Route
	Demand       []rp.DemandRecord
	Costs        []rp.CostRecord
	Monthly      []rp.ProfitabilityRecord
	Summaries    []rp.RouteSummary // classified
	ExpandCutoff rp.NullFloat // undefined when no route is profitable
	Stats        SummaryStats

	Timings      histogram.Set // per-stage wall time, in micros
}

// Run validates cfg and then executes generation, costing, pricing and
// classification. It either returns every table or an error; nothing partial.
func Run(cfg config.Config) (*Analysis, error) {
	if err := cfg.Validate(); err != nil { return nil, err }

	a := Analysis{
		Config: cfg,
		Timings: histogram.NewSet(100000),
	}
	var err error

	stage := func(name string, f func() error) error {
		tStart := time.Now()
		if err := f(); err != nil { return fmt.Errorf("%s: %w", name, err) }
		a.Timings.RecordValue(name, time.Since(tStart).Nanoseconds()/1000)
		slog.Debug("stage complete", "stage", name, "elapsed", time.Since(tStart))
		return nil
	}

	err = stage("catalog", func() (err error) {
		g := generate.NewCatalogGenerator(cfg, generate.NewRand(cfg.Seed, generate.CatalogStream))
		a.Routes,err = g.Generate(cfg.RouteCount)
		return
	})
	if err != nil { return nil, err }

	err = stage("demand", func() (err error) {
		m := generate.NewDemandModel(cfg, generate.NewRand(cfg.Seed, generate.DemandStream))
		a.Demand,err = m.Generate(a.Routes)
		return
	})
	if err != nil { return nil, err }

	err = stage("cost", func() (err error) {
		a.Costs,err = generate.NewCostModel(cfg).Generate(a.Routes, a.Demand)
		return
	})
	if err != nil { return nil, err }

	var unclassified []rp.RouteSummary
	err = stage("profitability", func() (err error) {
		if a.Monthly,err = NewEngine(cfg).Monthly(a.Routes, a.Demand, a.Costs); err != nil { return }
		unclassified,err = Summarize(a.Routes, a.Monthly)
		return
	})
	if err != nil { return nil, err }

	err = stage("classify", func() error {
		a.Summaries,a.ExpandCutoff = recommend.NewClassifier(cfg).Classify(unclassified)
		a.Stats = NewSummaryStats(a.Summaries, a.ExpandCutoff)
		return nil
	})
	if err != nil { return nil, err }

	slog.Info("analysis complete", "routes", a.Stats.TotalRoutes,
		"profitable", a.Stats.ProfitableRoutes, "profit", a.Stats.TotalProfit)

	return &a, nil
}

// RouteByID finds a route's summary.
func (a *Analysis)RouteByID(id string) (rp.RouteSummary, bool) {
	for _,s := range a.Summaries {
		if s.ID == id { return s, true }
	}
	return rp.RouteSummary{}, false
}

// DemandFor and CostFor index the upstream tables by (route,month).
func (a *Analysis)DemandFor() map[rp.MonthKey]rp.DemandRecord {
	m := map[rp.MonthKey]rp.DemandRecord{}
	for _,d := range a.Demand { m[d.Key()] = d }
	return m
}

func (a *Analysis)CostFor() map[rp.MonthKey]rp.CostRecord {
	m := map[rp.MonthKey]rp.CostRecord{}
	for _,c := range a.Costs { m[c.Key()] = c }
	return m
}
