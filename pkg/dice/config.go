package dice

import (
	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/optional"
	"github.com/dmitrymomot/precond/pkg/validator"
)

// Config holds simulation settings, loaded with pkg/config.
type Config struct {
	Sides        int    `env:"DICE_SIDES" envDefault:"6"`
	Rolls        int    `env:"DICE_ROLLS" envDefault:"100000"`
	Seed         uint64 `env:"DICE_SEED"`
	ReportPath   string `env:"DICE_REPORT_PATH" envDefault:"./result.txt"`
	ReportFormat string `env:"DICE_REPORT_FORMAT" envDefault:"text"`
}

// Validate fails with *errkind.ArgumentError on the first bad setting.
func (c Config) Validate() error {
	if err := validator.First(
		validator.GreaterThan(c.Sides, 1, false, "sides", errkind.Argument),
		validator.Positive(c.Rolls, "rolls", errkind.Argument),
		validator.NotNullNorEmptyTrimmed(optional.Of(c.ReportPath), "report path", errkind.Argument),
	); err != nil {
		return err
	}
	if _, err := ParseFormat(c.ReportFormat); err != nil {
		return errkind.ConstructWithCause(errkind.Argument, "report format is not supported", err)
	}
	return nil
}

// Die builds the configured die. A zero Seed means a random seed.
func (c Config) Die() (*Die, error) {
	var opts []Option
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}
	return New(c.Sides, opts...)
}
