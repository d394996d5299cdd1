package generate

import(
	"fmt"
	"math"
	"math/rand"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

// CatalogGenerator draws distinct routes from the airport roster.
type CatalogGenerator struct {
	Rand            *rand.Rand
	CircuityMax     float64 // actual flown distance exceeds great-circle by up to this fraction
	FareIndexSpread float64 // stddev of the per-route fare index
}

func NewCatalogGenerator(cfg config.Config, rng *rand.Rand) *CatalogGenerator {
	return &CatalogGenerator{
		Rand: rng,
		CircuityMax: cfg.CircuityMax,
		FareIndexSpread: cfg.FareIndexSpread,
	}
}

type airportPair struct { A,B string }

func allPairs(codes []string) []airportPair {
	pairs := []airportPair{}
	for i:=0; i<len(codes); i++ {
		for j:=i+1; j<len(codes); j++ {
			pairs = append(pairs, airportPair{codes[i], codes[j]})
		}
	}
	return pairs
}

// Generate returns n routes, with no unordered airport pair repeated. It fails if n
// exceeds the number of distinct pairs the roster offers.
func (g *CatalogGenerator)Generate(n int) ([]rp.Route, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: route count %d", rp.ErrInvalidConfig, n)
	}
	pairs := allPairs(rp.RosterCodes())
	if n > len(pairs) {
		return nil, fmt.Errorf("%w: asked for %d, roster has %d", rp.ErrTooManyRoutes, n, len(pairs))
	}

	g.Rand.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	routes := make([]rp.Route, 0, n)
	for _,p := range pairs[:n] {
		orig,dest := p.A, p.B
		if g.Rand.Intn(2) == 1 { orig,dest = dest,orig }

		r,err := g.route(orig, dest)
		if err != nil { return nil, err }
		routes = append(routes, r)
	}
	return routes, nil
}

// route derives distance from the pair's great-circle distance plus a circuity
// factor, so distance tracks geography rather than noise.
func (g *CatalogGenerator)route(orig, dest string) (rp.Route, error) {
	o,err := rp.LookupAirport(orig)
	if err != nil { return rp.Route{}, err }
	d,err := rp.LookupAirport(dest)
	if err != nil { return rp.Route{}, err }

	dist := o.DistMiles(d) * (1.0 + g.CircuityMax*g.Rand.Float64())

	r,err := rp.NewRoute(orig, dest, dist)
	if err != nil { return rp.Route{}, err }

	r.DailyFlights = g.dailyFlights(r)
	r.FareIndex = math.Max(MinFareIndex, 1.0 + g.Rand.NormFloat64()*g.FareIndexSpread)

	if err := r.Validate(); err != nil { return rp.Route{}, err }
	return r, nil
}

const MinFareIndex = 0.5

// Short routes see more frequencies than long ones; hub-to-hub gets an extra one.
func (g *CatalogGenerator)dailyFlights(r rp.Route) int {
	var n int
	switch {
	case r.DistanceMiles < rp.RegionalMaxMiles: n = 3 + g.Rand.Intn(4)
	case r.DistanceMiles < 1500.0:              n = 1 + g.Rand.Intn(3)
	default:                                    n = 1 + g.Rand.Intn(2)
	}
	if r.RouteType == rp.MajorMajor { n++ }
	return n
}
