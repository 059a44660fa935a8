package dice

import (
	"math/rand/v2"

	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/validator"
)

// DefaultSides is the number of sides of a die built by Default.
const DefaultSides = 6

// Die is an n-sided die with faces numbered 1..n.
type Die struct {
	sides int
	top   int
	rng   *rand.Rand
}

// Option configures a Die.
type Option func(*Die)

// WithSeed makes rolls reproducible.
func WithSeed(seed uint64) Option {
	return func(d *Die) {
		d.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithSource sets the random source. Nil is ignored.
func WithSource(src rand.Source) Option {
	return func(d *Die) {
		if src != nil {
			d.rng = rand.New(src)
		}
	}
}

// New creates a die with the given number of sides, which must be greater
// than 1.
func New(sides int, opts ...Option) (*Die, error) {
	if err := validator.GreaterThan(sides, 1, false, "sides", errkind.Argument); err != nil {
		return nil, err
	}

	d := &Die{
		sides: sides,
		top:   1,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Default creates a six-sided die.
func Default(opts ...Option) *Die {
	d, _ := New(DefaultSides, opts...)
	return d
}

// Sides returns the number of sides.
func (d *Die) Sides() int { return d.sides }

// TopFace returns the face currently on top.
func (d *Die) TopFace() int { return d.top }

// Roll picks a new top face and returns it.
func (d *Die) Roll() int {
	d.top = d.rng.IntN(d.sides) + 1
	return d.top
}
