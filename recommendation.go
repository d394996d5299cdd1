package routeprofit

import "fmt"

// Recommendation is the business action attached to a RouteSummary once the whole
// set of summaries exists.
type Recommendation int
const(
	Unclassified Recommendation = iota
	Expand       // top of the ROI distribution among profitable routes
	Optimize     // profitable, but thin margin and unexceptional ROI
	Stable       // profitable, healthy margin, ROI below the Expand cutoff
	Review       // loss-making; candidate for discontinuation
)

var Recommendations = []Recommendation{Expand, Optimize, Stable, Review}

func (r Recommendation)String() string {
	switch r {
	case Unclassified: return "Unclassified"
	case Expand:       return "Expand"
	case Optimize:     return "Optimize"
	case Stable:       return "Stable"
	case Review:       return "Review"
	}
	return fmt.Sprintf("Recommendation(%d)", int(r))
}

func (r Recommendation)MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func ParseRecommendation(s string) (Recommendation, error) {
	for _,r := range append([]Recommendation{Unclassified}, Recommendations...) {
		if r.String() == s { return r, nil }
	}
	return Unclassified, fmt.Errorf("recommendation '%s' not known", s)
}

// Rationale is the one-line explanation that accompanies each group of routes.
func (r Recommendation)Rationale() string {
	switch r {
	case Expand:
		return "ROI in the top quintile of profitable routes; add frequency or upgauge"
	case Optimize:
		return "Profitable but margin under threshold; review pricing, schedule and equipment"
	case Stable:
		return "Profitable with a healthy margin; maintain current service"
	case Review:
		return "Loss-making over the year; consider restructuring or discontinuing"
	}
	return ""
}
