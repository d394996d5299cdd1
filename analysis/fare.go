package analysis

import(
	"math"

	rp "github.com/skypies/routeprofit"
	"github.com/skypies/routeprofit/config"
)

// FareModel prices the average one-way ticket on a route in a given month: a base
// fare plus a per-mile component with a diminishing marginal rate, scaled by the
// route's competitive index, with a premium in the holiday months.
type FareModel struct {
	config.FareModel
}

func NewFareModel(cfg config.Config) FareModel { return FareModel{cfg.Fare} }

func (m FareModel)Fare(r rp.Route, month int) float64 {
	idx := r.FareIndex
	if idx <= 0 { idx = 1.0 }

	fare := (m.BaseFare + m.PerMileRate * math.Pow(r.DistanceMiles, m.DistanceExponent)) * idx
	if rp.IsHolidayMonth(month) { fare *= m.HolidayPremium }
	return fare
}
