package bootstrap

import (
	"sportsbook/internal/domain/booking"
	"sportsbook/internal/pkg/clock"
	"sportsbook/internal/pkg/config"
	"sportsbook/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewRules,
	),
)

// NewRules binds validation to the facility calendar. Bad opening hours or
// an unknown timezone stop startup.
func NewRules(cfg config.Config) (booking.Rules, error) {
	hours, err := booking.ParseOperatingHours(cfg.Facility.OpenTime, cfg.Facility.CloseTime)
	if err != nil {
		return booking.Rules{}, errs.Wrapf(err, "invalid facility hours %s-%s", cfg.Facility.OpenTime, cfg.Facility.CloseTime)
	}
	loc, err := cfg.Facility.Location()
	if err != nil {
		return booking.Rules{}, err
	}
	return booking.NewRules(clock.NewRealClockIn(loc), hours), nil
}
