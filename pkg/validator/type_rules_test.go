package validator_test

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/precond/pkg/optional"
	"github.com/dmitrymomot/precond/pkg/validator"
)

func TestInstanceOf(t *testing.T) {
	t.Parallel()

	stringType := reflect.TypeFor[string]()
	readerType := reflect.TypeFor[io.Reader]()

	t.Run("passes for exact type", func(t *testing.T) {
		assert.NoError(t, validator.InstanceOf("a", stringType, "x", kindA))
	})

	t.Run("passes for implemented interface", func(t *testing.T) {
		assert.NoError(t, validator.InstanceOf(strings.NewReader("a"), readerType, "r", kindA))
		assert.NoError(t, validator.InstanceOfType[fmt.Stringer](reflect.TypeFor[int](), "t", kindA))
	})

	t.Run("fails for other type", func(t *testing.T) {
		requireKindA(t, validator.InstanceOf(42, stringType, "x", kindA), "x should be an instance of string")
		requireKindA(t, validator.InstanceOfType[io.Reader](42, "r", kindA), "r should be an instance of io.Reader")
	})

	t.Run("absent fails", func(t *testing.T) {
		requireKindA(t, validator.InstanceOf(nil, stringType, "x", kindA), "x should be an instance of string")
		var r *strings.Reader
		requireKindA(t, validator.InstanceOf(r, readerType, "r", kindA), "r should be an instance of io.Reader")
	})

	t.Run("judges optionals by their content", func(t *testing.T) {
		assert.NoError(t, validator.InstanceOf(optional.Of(5), reflect.TypeFor[int](), "v", kindA))
		assert.NoError(t, validator.InstanceOf(optional.Of[io.Reader](strings.NewReader("a")), readerType, "r", kindA))
		requireKindA(t, validator.InstanceOf(optional.Of(5), stringType, "v", kindA), "v should be an instance of string")
		requireKindA(t, validator.InstanceOf(optional.None[string](), stringType, "v", kindA), "v should be an instance of string")
		requireKindA(t, validator.InstanceOf(optional.Of[any](nil), stringType, "v", kindA), "v should be an instance of string")
	})

	t.Run("nil expected type never matches", func(t *testing.T) {
		requireKindA(t, validator.InstanceOf("a", nil, "x", kindA), "x should be an instance of <nil>")
	})
}

func TestNullOrInstanceOf(t *testing.T) {
	t.Parallel()

	stringType := reflect.TypeFor[string]()

	assert.NoError(t, validator.NullOrInstanceOf(nil, stringType, "x", kindA))
	assert.NoError(t, validator.NullOrInstanceOf("a", stringType, "x", kindA))
	assert.NoError(t, validator.NullOrInstanceOfType[int](nil, "x", kindA))
	requireKindA(t, validator.NullOrInstanceOf(1.5, stringType, "x", kindA), "x should be null or an instance of string")
	requireKindA(t, validator.NullOrInstanceOfType[int]("a", "x", kindA), "x should be null or an instance of int")

	t.Run("optionals", func(t *testing.T) {
		assert.NoError(t, validator.NullOrInstanceOf(optional.Of(5), reflect.TypeFor[int](), "v", kindA))
		assert.NoError(t, validator.NullOrInstanceOf(optional.None[int](), stringType, "v", kindA))
		requireKindA(t, validator.NullOrInstanceOf(optional.Of(5), stringType, "v", kindA), "v should be null or an instance of string")
	})
}
