package routeprofit

import "fmt"

// Calendar and seasonality tables, indexed by month-1.

var DaysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var MonthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// RawSeasonalProfile is the unnormalized demand shape: summer peak, February trough,
// a holiday bump in November and December.
var RawSeasonalProfile = [12]float64{1.00, 0.70, 1.00, 1.00, 1.00, 1.40,
	1.40, 1.40, 1.00, 1.00, 1.10, 1.10}

// FuelPriceTable is jet fuel in USD per gallon for each month.
var FuelPriceTable = [12]float64{2.55, 2.50, 2.60, 2.70, 2.80, 2.90,
	2.95, 2.90, 2.75, 2.65, 2.60, 2.55}

var seasonalMultipliers [12]float64

func init() {
	sum := 0.0
	for _,v := range RawSeasonalProfile { sum += v }
	mean := sum / 12.0
	for i,v := range RawSeasonalProfile {
		seasonalMultipliers[i] = v / mean
	}
}

func ValidMonth(m int) error {
	if m < 1 || m > 12 {
		return fmt.Errorf("month %d: %w", m, ErrInvalidMonth)
	}
	return nil
}

// SeasonalMultiplier returns the normalized demand multiplier for a month (1..12).
// The twelve multipliers average to 1.0.
func SeasonalMultiplier(m int) float64 { return seasonalMultipliers[m-1] }

func FuelPrice(m int) float64 { return FuelPriceTable[m-1] }

func DaysIn(m int) int { return DaysInMonth[m-1] }

func MonthName(m int) string { return MonthNames[m-1] }

// IsHolidayMonth is true for the months that carry premium fares.
func IsHolidayMonth(m int) bool { return m == 11 || m == 12 }
