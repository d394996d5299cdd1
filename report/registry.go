package report

import(
	"fmt"
	"sort"

	"github.com/skypies/routeprofit/analysis"
)

// A simple registry of all known reports.
type ReportEntry struct {
	ReportFunc
	SummarizeFunc
	Name, Description string
}

var reportRegistry = map[string]ReportEntry{}

func HandleReport(name string, f ReportFunc, description string) {
	reportRegistry[name] = ReportEntry{
		ReportFunc: f,
		Name: name,
		Description: description,
	}
}
func SummarizeReport(name string, sf SummarizeFunc) {
	entry := reportRegistry[name]
	entry.SummarizeFunc = sf
	reportRegistry[name] = entry
}

func ListReports() []ReportEntry {
	out := []ReportEntry{}

	keys := []string{}
	for k,_ := range reportRegistry { keys = append(keys, k) }
	sort.Strings(keys)

	for _,k := range keys {
		out = append(out, reportRegistry[k])
	}
	return out
}

func InstantiateReport(name string) (Report,error) {
	// Lookup in registry
	r := BlankReport()

	r.Name = name
	r.Options.Name = name

	if entry,exists := reportRegistry[name]; !exists {
		return r, fmt.Errorf("report '%s' not known", name)
	} else {
		r.Func = entry.ReportFunc
		r.SummarizeFunc = entry.SummarizeFunc
		r.Description = entry.Description
	}
	return r, nil
}

// Generate instantiates the named report with opt and runs it over a.
func Generate(name string, opt Options, a *analysis.Analysis) (Report, error) {
	r,err := InstantiateReport(name)
	if err != nil { return r, err }

	opt.Name = name
	r.Options = opt
	if err := r.Run(a); err != nil { return r, err }
	return r, nil
}
