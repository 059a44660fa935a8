package dice

import (
	"context"
	"time"

	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/tracelog"
	"github.com/dmitrymomot/precond/pkg/validator"
)

// DefaultRolls is the number of rolls of a default simulation run.
const DefaultRolls = 100000

// cancelCheckEvery is how many rolls pass between context checks.
const cancelCheckEvery = 4096

// Simulator rolls a die many times and tallies the faces.
type Simulator struct {
	log    tracelog.Sink
	tracer *tracelog.Tracer
	now    func() time.Time
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithLogger sets the sink runs are traced to. Without it runs are not traced.
func WithLogger(sink tracelog.Sink) SimulatorOption {
	return func(s *Simulator) { s.log = sink }
}

// WithTracer replaces the default tracer. Nil is ignored.
func WithTracer(t *tracelog.Tracer) SimulatorOption {
	return func(s *Simulator) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithClock sets the time source used to mark the start of a run. Nil is ignored.
func WithClock(now func() time.Time) SimulatorOption {
	return func(s *Simulator) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSimulator creates a Simulator.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		tracer: tracelog.New(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run rolls d the given number of times and returns the tally.
// It fails with *errkind.ArgumentError when d is nil or rolls is not positive,
// and with the context error when ctx is done before the run completes.
func (s *Simulator) Run(ctx context.Context, d *Die, rolls int) (Report, error) {
	const sig = "dice.Simulator.Run"

	start := s.now()
	s.tracer.Entrance(ctx, s.log, sig, []string{"sides", "rolls"}, []any{sidesOf(d), rolls})

	if err := validator.First(
		validator.NotNull(d, "die", errkind.Argument),
		validator.Positive(rolls, "rolls", errkind.Argument),
	); err != nil {
		return Report{}, s.tracer.Exception(ctx, s.log, sig, err)
	}

	counts := make([]int, d.Sides())
	for i := range rolls {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, s.tracer.Exception(ctx, s.log, sig, err)
			}
		}
		counts[d.Roll()-1]++
	}

	rep := newReport(d.Sides(), rolls, counts)
	s.tracer.Exit(ctx, s.log, sig, tracelog.WithResult(rep.Summary()), tracelog.WithEntranceTime(start))
	return rep, nil
}

func sidesOf(d *Die) any {
	if d == nil {
		return nil
	}
	return d.Sides()
}
