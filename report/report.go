// Package report renders an analysis run as named tables. Each table is a report
// registered by name; running one fills in headers, rows, counters and a log.
package report

import(
	"fmt"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	"github.com/skypies/routeprofit/analysis"
)

type ReportFunc func(*Report, *analysis.Analysis) error
type SummarizeFunc func(*Report)

type ReportLogLevel int
const(
	DEBUG ReportLogLevel = iota
	INFO
)

type Report struct {
	Name              string
	Description       string
	Options           // embedded
	Func              ReportFunc
	SummarizeFunc     // embedded, but just to avoid a more confusing name

	// Output state
	RowsText    [][]string
	HeadersText []string

	I         map[string]int
	F         map[string]float64
	S         map[string]string
	H         histogram.Histogram

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		RowsText: [][]string{},
		HeadersText: []string{},
		Stats: histogram.NewSet(40000),  // maxval, in micros; 40ms == 40000us
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Infof("%s", s) }
func (r *Report)Debug(s string) { r.Debugf("%s", s) }

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(row []string) {
	r.RowsText = append(r.RowsText, row)
}

// Run fills the report's table from a.
func (r *Report)Run(a *analysis.Analysis) error {
	if r.Func == nil { return fmt.Errorf("report '%s' has no func", r.Name) }

	tStart := time.Now()
	err := r.Func(r, a)
	r.Stats.RecordValue("build", time.Since(tStart).Nanoseconds()/1000)
	if err != nil { return fmt.Errorf("report '%s': %w", r.Name, err) }

	r.I["[A] Rows"] = len(r.RowsText)
	r.FinishSummary()
	return nil
}

func (r *Report)FinishSummary() {
	r.Info("**** Stage: all done\n")
	r.Debug("* (DEBUG)\n")
	if r.SummarizeFunc != nil { r.SummarizeFunc(r) }
	r.Debugf("Stats (in micros):-\n%s", r.Stats)
}

// MetadataTable flattens the counters into sorted (key,value) rows.
func (r *Report)MetadataTable() [][]string {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.F { all[k] = fmt.Sprintf("%.2f", v) }
	for k,v := range r.S { all[k] = v }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] stats, N"] = fmt.Sprintf("%d", stats.N)
		all["[Z] stats, Mean"] = fmt.Sprintf("%.0f", stats.Mean)
		all["[Z] stats, Stddev"] = fmt.Sprintf("%.0f", stats.Stddev)
		all["[Z] stats, 50%ile"] = fmt.Sprintf("%d", stats.Percentile50)
		all["[Z] stats, 90%ile"] = fmt.Sprintf("%d", stats.Percentile90)
	}

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]string{}
	for _,k := range keys {
		out = append(out, []string{k, all[k]})
	}
	return out
}
