package main

// go run ./cmd/routeprofit -out=./export -routes=105 -seed=42

import(
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/skypies/util/date"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/analysis"
	"github.com/skypies/routeprofit/config"
	"github.com/skypies/routeprofit/fpdf"
	"github.com/skypies/routeprofit/publish"
	"github.com/skypies/routeprofit/recommend"
	"github.com/skypies/routeprofit/report"
)

var(
	ctx = context.Background()
	fVerbosity int
	fConfigFile string
	fRoutes int
	fSeed int64
	fOutDir string
	fNoPdf bool
	fTopN int
	fMonths string
	fRouteTypes string
	fRecs string
	fBucket string
	fFolder string
	fCredentials string
	fBQProject string
	fBQDataset string
	fBQTable string
	fList bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fConfigFile, "config", "", "config file (yaml/json/toml); default ./routeprofit.*")
	flag.IntVar(&fRoutes, "routes", 0, "number of routes to generate (overrides config)")
	flag.Int64Var(&fSeed, "seed", 0, "random seed (overrides config)")
	flag.StringVar(&fOutDir, "out", "output", "directory to write tables and charts into")
	flag.BoolVar(&fNoPdf, "no-pdf", false, "skip chart rendering")
	flag.IntVar(&fTopN, "top", 3, "how many routes to list in each ranking")
	flag.StringVar(&fMonths, "months", "", "restrict the monthly table to these months, e.g. 6,7,8")
	flag.StringVar(&fRouteTypes, "types", "", "restrict tables to these route types, e.g. Major-Major")
	flag.StringVar(&fRecs, "recs", "", "restrict the routes table to these recommendations")
	flag.StringVar(&fBucket, "gcs-bucket", "", "if set, publish the export to this GCS bucket")
	flag.StringVar(&fFolder, "gcs-folder", "", "object prefix in the bucket; default routeprofit/<timestamp>")
	flag.StringVar(&fCredentials, "credentials", "", "service account JSON for GCS/BigQuery")
	flag.StringVar(&fBQProject, "bq-project", "", "if set, load route summaries into BigQuery")
	flag.StringVar(&fBQDataset, "bq-dataset", "routeprofit", "BigQuery dataset")
	flag.StringVar(&fBQTable, "bq-table", "route_summaries", "BigQuery table")
	flag.BoolVar(&fList, "list", false, "list published objects in -gcs-bucket and exit")
	flag.Parse()
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

// {{{ loadConfig

// Flags that were explicitly set win over the config file and environment.
func loadConfig() (config.Config, error) {
	cfg,err := config.Load(fConfigFile)
	if err != nil { return cfg, err }

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "routes": cfg.RouteCount = fRoutes
		case "seed":   cfg.Seed = fSeed
		}
	})
	return cfg, nil
}

// }}}
// {{{ writeExport

func writeFile(path string, write func(f *os.File) error) error {
	f,err := os.Create(path)
	if err != nil { return err }
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func writeExport(a *analysis.Analysis, runID string) ([]report.Report, error) {
	if err := os.MkdirAll(fOutDir, 0755); err != nil { return nil, err }

	opt,err := report.ParseOptions(fMonths, fRouteTypes, fRecs)
	if err != nil { return nil, err }
	if fVerbosity > 1 { opt.ReportLogLevel = report.DEBUG }

	reports := []report.Report{}
	for _,name := range report.ExportTables {
		r,err := report.Generate(name, opt, a)
		if err != nil { return nil, err }

		path := filepath.Join(fOutDir, r.Filename())
		if err := writeFile(path, func(f *os.File) error { return r.OutputAsCSV(f) }); err != nil {
			return nil, err
		}
		slog.Info("wrote table", "table", name, "rows", len(r.RowsText), "path", path)
		if fVerbosity > 0 && r.Log != "" { fmt.Printf("---- %s ----\n%s", name, r.Log) }

		reports = append(reports, r)
	}

	if !fNoPdf {
		path := filepath.Join(fOutDir, "charts.pdf")
		if err := writeFile(path, func(f *os.File) error { return fpdf.WriteAnalysis(f, a) }); err != nil {
			return nil, err
		}
		slog.Info("wrote charts", "path", path)
	}

	m := report.NewManifest(runID, a, reports)
	path := filepath.Join(fOutDir, "manifest.yaml")
	if err := writeFile(path, func(f *os.File) error { return m.Write(f) }); err != nil {
		return nil, err
	}

	return reports, nil
}

// }}}
// {{{ printSummary

func printSummary(a *analysis.Analysis) error {
	in,err := analysis.NewInsights(a.Summaries, fTopN)
	if err != nil { return err }

	bar := strings.Repeat("=", 60)
	fmt.Printf("%s\nANALYSIS SUMMARY\n%s\n", bar, bar)
	fmt.Printf("Config: %s\n\n", a.Config)
	fmt.Print(a.Stats)

	fmt.Printf("\nTop %d most profitable routes:\n", fTopN)
	for i,s := range in.MostProfitable {
		fmt.Printf("  %d. %s - $%.2fM (%s%% margin)\n", i+1, s.ID, s.AnnualProfit/1e6, s.MarginPct)
	}
	fmt.Printf("\nTop %d least profitable routes:\n", fTopN)
	for i,s := range in.LeastProfitable {
		fmt.Printf("  %d. %s - $%.2fM (%s%% margin)\n", i+1, s.ID, s.AnnualProfit/1e6, s.MarginPct)
	}
	fmt.Printf("\nHighest ROI routes:\n")
	for i,s := range in.HighestROI {
		fmt.Printf("  %d. %s - %s%% ROI\n", i+1, s.ID, s.ROIPct)
	}

	fmt.Printf("\nPerformance by route type:\n")
	for _,rt := range in.ByRouteType {
		fmt.Printf("  %s\n", rt)
	}

	if a.ExpandCutoff.Valid {
		fmt.Printf("\nRecommendations (Expand cutoff: ROI >= %.2f%%):\n", a.ExpandCutoff.Float64)
	} else {
		fmt.Printf("\nRecommendations (no profitable routes, no Expand cutoff):\n")
	}
	for _,g := range recommend.Groups(a.Summaries) {
		fmt.Printf("  %s\n", g)
		if fVerbosity > 0 && len(g.RouteIDs) > 0 {
			fmt.Printf("           %s\n", strings.Join(g.RouteIDs, " "))
		}
	}
	fmt.Printf("%s\n", bar)
	return nil
}

// }}}

func main() {
	level := slog.LevelWarn
	if fVerbosity > 0 { level = slog.LevelInfo }
	if fVerbosity > 1 { level = slog.LevelDebug }
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pub := publish.Publisher{
		Bucket: fBucket,
		Folder: fFolder,
		Project: fBQProject,
		Dataset: fBQDataset,
		Table: fBQTable,
		CredentialsFile: fCredentials,
	}
	if pub.Folder == "" {
		pub.Folder = "routeprofit/" + date.NowInPdt().Format("20060102-150405")
	}

	if fList {
		if fBucket == "" { fatal("listing", fmt.Errorf("-list needs -gcs-bucket")) }
		if fFolder == "" { pub.Folder = "routeprofit/" }
		objs,err := pub.List(ctx)
		if err != nil { fatal("listing", err) }
		for _,o := range objs { fmt.Println(o) }
		return
	}

	cfg,err := loadConfig()
	if err != nil { fatal("loading config", err) }

	a,err := analysis.Run(cfg)
	if err != nil { fatal("running analysis", err) }
	slog.Info("timings (micros)", "stats", fmt.Sprintf("%s", a.Timings))

	runID := report.NewRunID()
	if _,err := writeExport(a, runID); err != nil { fatal("writing export", err) }

	if err := printSummary(a); err != nil { fatal("summarizing", err) }

	if fBucket != "" {
		if err := pub.PublishExport(ctx, fOutDir, runID, a.Summaries); err != nil {
			fatal("publishing", err)
		}
		fmt.Printf("Published to gs://%s/%s (run %s)\n", pub.Bucket, pub.Folder, runID)
	}

	fmt.Printf("\nDone: %d routes, %d to review, tables in %s\n", a.Stats.TotalRoutes,
		a.Stats.Counts[rp.Review], fOutDir)
}
