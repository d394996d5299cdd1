// Package config holds the knobs for an analysis run: how many routes to
// synthesize, the seed, and the demand, cost and fare model parameters.
package config

import(
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	rp "github.com/skypies/routeprofit"
)

const EnvPrefix = "ROUTEPROFIT"

type FareModel struct {
	BaseFare         float64 `mapstructure:"base_fare"         yaml:"base_fare"         validate:"gte=0"`
	PerMileRate      float64 `mapstructure:"per_mile_rate"     yaml:"per_mile_rate"     validate:"gt=0"`
	DistanceExponent float64 `mapstructure:"distance_exponent" yaml:"distance_exponent" validate:"gt=0,lt=1"`
	HolidayPremium   float64 `mapstructure:"holiday_premium"   yaml:"holiday_premium"   validate:"gte=1"`
}

type Config struct {
	RouteCount         int     `mapstructure:"route_count"          yaml:"route_count"          validate:"gt=0"`
	Seed               int64   `mapstructure:"seed"                 yaml:"seed"`
	BaselineLoadFactor float64 `mapstructure:"baseline_load_factor" yaml:"baseline_load_factor" validate:"gt=0,lte=1"`
	LoadFactorSpread   float64 `mapstructure:"load_factor_spread"   yaml:"load_factor_spread"   validate:"gte=0,lt=0.5"`
	FareIndexSpread    float64 `mapstructure:"fare_index_spread"    yaml:"fare_index_spread"    validate:"gte=0,lt=0.5"`
	CircuityMax        float64 `mapstructure:"circuity_max"         yaml:"circuity_max"         validate:"gte=0,lte=0.5"`
	MaintenanceRatio   float64 `mapstructure:"maintenance_ratio"    yaml:"maintenance_ratio"    validate:"gte=0,lte=1"`
	MajorTurnFee       float64 `mapstructure:"major_turn_fee"       yaml:"major_turn_fee"       validate:"gtefield=MediumTurnFee"`
	MediumTurnFee      float64 `mapstructure:"medium_turn_fee"      yaml:"medium_turn_fee"      validate:"gte=0"`
	ExpandPercentile   float64 `mapstructure:"expand_percentile"    yaml:"expand_percentile"    validate:"gt=0,lt=100"`
	OptimizeMarginPct  float64 `mapstructure:"optimize_margin_pct"  yaml:"optimize_margin_pct"  validate:"gte=0,lte=100"`

	Fare FareModel `mapstructure:"fare" yaml:"fare"`
}

// Default returns the parameters that produce the reference dataset: 105 routes,
// ~78% of them profitable, ~$45M aggregate annual profit, ~82% average load factor.
func Default() Config {
	return Config{
		RouteCount: 105,
		Seed: 42,
		BaselineLoadFactor: 0.84,
		LoadFactorSpread: 0.03,
		FareIndexSpread: 0.03,
		CircuityMax: 0.06,
		MaintenanceRatio: 0.15,
		MajorTurnFee: 1400.0,
		MediumTurnFee: 650.0,
		ExpandPercentile: 80.0,
		OptimizeMarginPct: 10.0,
		Fare: FareModel{
			BaseFare: 10.0,
			PerMileRate: 0.555,
			DistanceExponent: 0.72,
			HolidayPremium: 1.10,
		},
	}
}

func (c Config)String() string {
	return fmt.Sprintf("routes=%d seed=%d lf=%.2f±%.2f fare=%.0f+%.3f*d^%.2f",
		c.RouteCount, c.Seed, c.BaselineLoadFactor, c.LoadFactorSpread,
		c.Fare.BaseFare, c.Fare.PerMileRate, c.Fare.DistanceExponent)
}

// {{{ Load

// Load layers configuration: defaults, then the config file (if any), then
// environment variables (ROUTEPROFIT_ROUTE_COUNT, ROUTEPROFIT_FARE_BASE_FARE, ...).
// If path is empty, a file named routeprofit.{yaml,json,toml,env} is looked for in
// the working directory; not finding one is fine. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("routeprofit")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("route_count", d.RouteCount)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("baseline_load_factor", d.BaselineLoadFactor)
	v.SetDefault("load_factor_spread", d.LoadFactorSpread)
	v.SetDefault("fare_index_spread", d.FareIndexSpread)
	v.SetDefault("circuity_max", d.CircuityMax)
	v.SetDefault("maintenance_ratio", d.MaintenanceRatio)
	v.SetDefault("major_turn_fee", d.MajorTurnFee)
	v.SetDefault("medium_turn_fee", d.MediumTurnFee)
	v.SetDefault("expand_percentile", d.ExpandPercentile)
	v.SetDefault("optimize_margin_pct", d.OptimizeMarginPct)
	v.SetDefault("fare.base_fare", d.Fare.BaseFare)
	v.SetDefault("fare.per_mile_rate", d.Fare.PerMileRate)
	v.SetDefault("fare.distance_exponent", d.Fare.DistanceExponent)
	v.SetDefault("fare.holiday_premium", d.Fare.HolidayPremium)
}

// }}}
// {{{ Validate

var validate = validator.New()

// Validate rejects configurations that cannot produce a dataset. It is called before
// any generation happens; a run either validates fully or generates nothing.
func (c Config)Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := []string{}
			for _,fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s=%s, got %v)", fe.Namespace(), fe.Tag(),
					fe.Param(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", rp.ErrInvalidConfig, strings.Join(fields, "; "))
		}
		return fmt.Errorf("%w: %v", rp.ErrInvalidConfig, err)
	}

	if limit := rp.MaxRoutes(); c.RouteCount > limit {
		return fmt.Errorf("%w: asked for %d, roster has %d", rp.ErrTooManyRoutes, c.RouteCount, limit)
	}
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
