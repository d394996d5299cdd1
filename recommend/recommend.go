// Package recommend labels route summaries with a business action, once the whole
// distribution of summaries is known.
package recommend

import(
	"fmt"
	"math"
	"sort"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

// Classifier applies, in order:
//   Review    annual profit <= 0
//   Expand    ROI >= the Percentile'th ROI among profitable routes
//   Optimize  margin < OptimizeMarginPct
//   Stable    everything else
// Boundary ties go to the better category. A profitable route whose ROI or margin
// is undefined is Stable; it is never sampled for the cutoff.
type Classifier struct {
	Percentile        float64 // e.g. 80
	OptimizeMarginPct float64 // e.g. 10
}

func NewClassifier(cfg config.Config) Classifier {
	return Classifier{
		Percentile: cfg.ExpandPercentile,
		OptimizeMarginPct: cfg.OptimizeMarginPct,
	}
}

// Percentile returns the p'th percentile of vals using linear interpolation between
// closest ranks. The second return is false if vals is empty.
func Percentile(vals []float64, p float64) (float64, bool) {
	if len(vals) == 0 { return 0, false }
	s := append([]float64{}, vals...)
	sort.Float64s(s)

	pos := p / 100.0 * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 { return s[0], true }
	if hi >= len(s) { return s[len(s)-1], true }
	return s[lo] + (pos-float64(lo))*(s[hi]-s[lo]), true
}

// Threshold is the Expand cutoff for a set of summaries, computed only over
// profitable routes with a defined ROI.
func (c Classifier)Threshold(summaries []rp.RouteSummary) (float64, bool) {
	rois := []float64{}
	for _,s := range summaries {
		if s.Profitable() && s.ROIPct.Valid {
			rois = append(rois, s.ROIPct.Float64)
		}
	}
	return Percentile(rois, c.Percentile)
}

// Label classifies a single summary against a precomputed cutoff.
func (c Classifier)Label(s rp.RouteSummary, cutoff float64, haveCutoff bool) rp.Recommendation {
	if !s.Profitable() { return rp.Review }
	if !s.ROIPct.Valid || !s.MarginPct.Valid { return rp.Stable }
	if haveCutoff && s.ROIPct.Float64 >= cutoff { return rp.Expand }
	if s.MarginPct.Float64 < c.OptimizeMarginPct { return rp.Optimize }
	return rp.Stable
}

// Classify returns copies of the summaries with Recommendation set, in the same
// order, along with the cutoff used. The cutoff is undefined when no route is
// profitable. The inputs are not modified.
func (c Classifier)Classify(summaries []rp.RouteSummary) ([]rp.RouteSummary, rp.NullFloat) {
	cutoff,ok := c.Threshold(summaries)
	out := make([]rp.RouteSummary, len(summaries))
	for i,s := range summaries {
		s.Recommendation = c.Label(s, cutoff, ok)
		out[i] = s
	}
	if !ok { return out, rp.NullFloat{} }
	return out, rp.Defined(cutoff)
}

// {{{ Groups

// Group is the set of routes sharing a recommendation.
type Group struct {
	Recommendation rp.Recommendation
	Rationale      string
	RouteIDs       []string
}

func (g Group)String() string {
	return fmt.Sprintf("%-8s %3d routes: %s", g.Recommendation, len(g.RouteIDs), g.Rationale)
}

// Groups buckets classified summaries by recommendation, one Group per category in
// rp.Recommendations order, including empty ones. Route order within a group
// follows the input.
func Groups(summaries []rp.RouteSummary) []Group {
	byRec := map[rp.Recommendation][]string{}
	for _,s := range summaries {
		byRec[s.Recommendation] = append(byRec[s.Recommendation], s.ID)
	}

	groups := []Group{}
	for _,rec := range rp.Recommendations {
		ids := byRec[rec]
		if ids == nil { ids = []string{} }
		groups = append(groups, Group{rec, rec.Rationale(), ids})
	}
	return groups
}

// Counts tallies classified summaries per recommendation.
func Counts(summaries []rp.RouteSummary) map[rp.Recommendation]int {
	m := map[rp.Recommendation]int{}
	for _,s := range summaries { m[s.Recommendation]++ }
	return m
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
