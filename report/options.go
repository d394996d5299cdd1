package report

// All reports share this same options struct. Some options apply to all reports, some
// only apply to one kind of report.

import(
	"fmt"
	"strconv"
	"strings"

	rp "github.com/skypies/routeprofit"
)

type Options struct {
	Name              string
	ReportLogLevel

	Months          []int               // monthly: restrict to these months (empty means all)
	RouteTypes      []rp.RouteType      // routes, monthly: restrict to these route types
	Recommendations []rp.Recommendation // routes: restrict to these labels
}

func (o Options)WantMonth(m int) bool {
	if len(o.Months) == 0 { return true }
	for _,x := range o.Months {
		if x == m { return true }
	}
	return false
}

func (o Options)WantRouteType(t rp.RouteType) bool {
	if len(o.RouteTypes) == 0 { return true }
	for _,x := range o.RouteTypes {
		if x == t { return true }
	}
	return false
}

func (o Options)WantRecommendation(rec rp.Recommendation) bool {
	if len(o.Recommendations) == 0 { return true }
	for _,x := range o.Recommendations {
		if x == rec { return true }
	}
	return false
}

func commaSepStrings(s string) []string {
	out := []string{}
	for _,f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" { out = append(out, f) }
	}
	return out
}

// ParseOptions builds options from the comma-separated forms used on the command line,
// e.g. months="6,7,8", types="Major-Major", recs="Expand,Review".
func ParseOptions(months, types, recs string) (Options, error) {
	opt := Options{ReportLogLevel: INFO}

	for _,f := range commaSepStrings(months) {
		m,err := strconv.Atoi(f)
		if err != nil { return Options{}, fmt.Errorf("month '%s': %v", f, err) }
		if err := rp.ValidMonth(m); err != nil { return Options{}, err }
		opt.Months = append(opt.Months, m)
	}

	for _,f := range commaSepStrings(types) {
		t := rp.RouteType(f)
		switch t {
		case rp.MajorMajor, rp.MajorMedium, rp.MediumMedium:
			opt.RouteTypes = append(opt.RouteTypes, t)
		default:
			return Options{}, fmt.Errorf("route type '%s' not known", f)
		}
	}

	for _,f := range commaSepStrings(recs) {
		rec,err := rp.ParseRecommendation(f)
		if err != nil { return Options{}, err }
		opt.Recommendations = append(opt.Recommendations, rec)
	}

	return opt, nil
}
