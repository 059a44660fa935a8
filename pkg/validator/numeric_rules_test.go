package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/precond/pkg/validator"
)

func TestSignRules(t *testing.T) {
	t.Parallel()

	t.Run("negative", func(t *testing.T) {
		assert.NoError(t, validator.Negative(int64(-1), "v", kindA))
		assert.NoError(t, validator.Negative(-0.5, "v", kindA))
		requireKindA(t, validator.Negative(int64(0), "v", kindA), "v should be negative")
		requireKindA(t, validator.Negative(0.1, "v", kindA), "v should be negative")
	})

	t.Run("positive", func(t *testing.T) {
		assert.NoError(t, validator.Positive(int64(1), "v", kindA))
		assert.NoError(t, validator.Positive(0.1, "v", kindA))
		requireKindA(t, validator.Positive(0, "v", kindA), "v should be positive")
		requireKindA(t, validator.Positive(-0.1, "v", kindA), "v should be positive")
	})

	t.Run("not negative", func(t *testing.T) {
		assert.NoError(t, validator.NotNegative(0, "v", kindA))
		assert.NoError(t, validator.NotNegative(2.5, "v", kindA))
		requireKindA(t, validator.NotNegative(int64(-1), "v", kindA), "v should be not negative")
		requireKindA(t, validator.NotNegative(-0.5, "v", kindA), "v should be not negative")
	})

	t.Run("not positive", func(t *testing.T) {
		assert.NoError(t, validator.NotPositive(0, "v", kindA))
		assert.NoError(t, validator.NotPositive(-2.5, "v", kindA))
		requireKindA(t, validator.NotPositive(int64(1), "v", kindA), "v should be not positive")
		requireKindA(t, validator.NotPositive(0.5, "v", kindA), "v should be not positive")
	})

	t.Run("not zero", func(t *testing.T) {
		assert.NoError(t, validator.NotZero(-1, "v", kindA))
		assert.NoError(t, validator.NotZero(0.001, "v", kindA))
		requireKindA(t, validator.NotZero(int64(0), "v", kindA), "v should not be equal to 0")
		requireKindA(t, validator.NotZero(0.0, "v", kindA), "v should not be equal to 0")
	})

	t.Run("unsigned and small widths", func(t *testing.T) {
		assert.NoError(t, validator.Positive(uint8(1), "v", kindA))
		requireKindA(t, validator.Positive(uint(0), "v", kindA), "v should be positive")
		requireKindA(t, validator.Negative(float32(1), "v", kindA), "v should be negative")
	})
}

func TestGreaterThan(t *testing.T) {
	t.Parallel()

	requireKindA(t, validator.GreaterThan(0, 0, false, "v", kindA), "v should be greater than 0")
	assert.NoError(t, validator.GreaterThan(0, 0, true, "v", kindA))
	assert.NoError(t, validator.GreaterThan(1, 0, false, "v", kindA))
	requireKindA(t, validator.GreaterThan(-1, 0, true, "v", kindA), "v should be greater than or equal to 0")
	requireKindA(t, validator.GreaterThan(1.5, 2.25, false, "v", kindA), "v should be greater than 2.25")
}

func TestLessThan(t *testing.T) {
	t.Parallel()

	requireKindA(t, validator.LessThan(0, 0, false, "v", kindA), "v should be less than 0")
	assert.NoError(t, validator.LessThan(0, 0, true, "v", kindA))
	assert.NoError(t, validator.LessThan(-1, 0, false, "v", kindA))
	requireKindA(t, validator.LessThan(1, 0, true, "v", kindA), "v should be less than or equal to 0")
	requireKindA(t, validator.LessThan(int64(10), 3, false, "v", kindA), "v should be less than 3")
}

func TestInRange(t *testing.T) {
	t.Parallel()

	t.Run("scenarios", func(t *testing.T) {
		assert.NoError(t, validator.InRange(0, -1, 1, true, true, "v", kindA))
		err := validator.InRange(2, -1, 1, false, false, "v", kindA)
		ka := requireKindA(t, err, "v should be in the range (-1, 1)")
		assert.Contains(t, ka.Error(), "(-1, 1)")
	})

	t.Run("bound notation", func(t *testing.T) {
		requireKindA(t, validator.InRange(5, 1, 3, true, true, "v", kindA), "v should be in the range [1, 3]")
		requireKindA(t, validator.InRange(5, 1, 3, true, false, "v", kindA), "v should be in the range [1, 3)")
		requireKindA(t, validator.InRange(5, 1, 3, false, true, "v", kindA), "v should be in the range (1, 3]")
		requireKindA(t, validator.InRange(0.5, 1.5, 3, false, true, "v", kindA), "v should be in the range (1.5, 3.0]")
	})

	t.Run("consistent with bound checks", func(t *testing.T) {
		for _, v := range []int64{-2, -1, 0, 1, 2} {
			for _, fromInc := range []bool{true, false} {
				for _, toInc := range []bool{true, false} {
					want := validator.GreaterThan(v, -1, fromInc, "v", kindA) == nil &&
						validator.LessThan(v, 1, toInc, "v", kindA) == nil
					got := validator.InRange(v, -1, 1, fromInc, toInc, "v", kindA) == nil
					assert.Equal(t, want, got, "v=%d fromInclusive=%t toInclusive=%t", v, fromInc, toInc)
				}
			}
		}
	})

	t.Run("float bounds keep a decimal place", func(t *testing.T) {
		requireKindA(t, validator.InRange(5.0, 1, 2, true, true, "v", kindA), "v should be in the range [1.0, 2.0]")
		requireKindA(t, validator.InRange(float32(5), 0.25, 2, true, false, "v", kindA), "v should be in the range [0.25, 2.0)")
		requireKindA(t, validator.GreaterThan(0.0, 1, false, "v", kindA), "v should be greater than 1.0")
		requireKindA(t, validator.LessThan(2.0, -1, true, "v", kindA), "v should be less than or equal to -1.0")
		requireKindA(t, validator.InRange(5.0, math.Inf(-1), 1, true, true, "v", kindA), "v should be in the range [-Infinity, 1.0]")
	})

	t.Run("nan is never in range", func(t *testing.T) {
		assert.Error(t, validator.InRange(math.NaN(), -1, 1, true, true, "v", kindA))
	})
}
