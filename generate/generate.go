// Package generate synthesizes the route catalog and the per-month demand and cost
// tables. Every source of randomness is an explicit *rand.Rand, so a seed fully
// determines the output.
package generate

import(
	"math/rand"
)

// Streams separate the random draws of each stage, so that changing how one stage
// consumes randomness does not perturb the others.
const(
	CatalogStream int64 = iota + 1
	DemandStream
)

// NewRand returns the generator for one stage's stream under a run seed.
func NewRand(seed, stream int64) *rand.Rand {
	return rand.New(rand.NewSource(seed*1000003 + stream))
}
