package report

import(
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/skypies/routeprofit/analysis"
	"github.com/skypies/routeprofit/config"
)

// Manifest describes one export: which run produced it, with what configuration,
// and which tables it holds.
type Manifest struct {
	RunID     string        `yaml:"run_id"`
	CreatedAt time.Time     `yaml:"created_at"`
	Config    config.Config `yaml:"config"`
	Tables    []TableEntry  `yaml:"tables"`
	Summary   ManifestStats `yaml:"summary"`
}

type TableEntry struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Rows        int    `yaml:"rows"`
	Description string `yaml:"description,omitempty"`
}

type ManifestStats struct {
	Routes        int            `yaml:"routes"`
	Profitable    int            `yaml:"profitable"`
	TotalProfit   float64        `yaml:"total_profit"`
	AvgLoadFactor float64        `yaml:"avg_load_factor"`
	ExpandCutoff  *float64       `yaml:"expand_roi_cutoff_pct"`
	Counts        map[string]int `yaml:"recommendations"`
}

func NewRunID() string { return uuid.NewString() }

func NewManifest(runID string, a *analysis.Analysis, reports []Report) Manifest {
	m := Manifest{
		RunID: runID,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Config: a.Config,
		Tables: []TableEntry{},
		Summary: ManifestStats{
			Routes: a.Stats.TotalRoutes,
			Profitable: a.Stats.ProfitableRoutes,
			TotalProfit: a.Stats.TotalProfit,
			AvgLoadFactor: a.Stats.AvgLoadFactor,
			Counts: map[string]int{},
		},
	}
	if a.ExpandCutoff.Valid {
		cutoff := a.ExpandCutoff.Float64
		m.Summary.ExpandCutoff = &cutoff
	}
	for rec,n := range a.Stats.Counts {
		m.Summary.Counts[rec.String()] = n
	}
	for _,r := range reports {
		m.Tables = append(m.Tables, TableEntry{r.Name, r.Filename(), len(r.RowsText), r.Description})
	}
	return m
}

func (m Manifest)Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil { return fmt.Errorf("manifest: %w", err) }
	return enc.Close()
}

func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil { return m, fmt.Errorf("manifest: %w", err) }
	return m, nil
}
