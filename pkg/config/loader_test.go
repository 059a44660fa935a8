package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/precond/pkg/config"
)

type rollConfig struct {
	Sides int    `env:"PC_TEST_SIDES" envDefault:"6"`
	Rolls int    `env:"PC_TEST_ROLLS" envDefault:"100"`
	Path  string `env:"PC_TEST_PATH" envDefault:"./result.txt"`
}

type brokerConfig struct {
	URL     string        `env:"PC_TEST_BROKER_URL" envDefault:"tcp://localhost:1883"`
	Timeout time.Duration `env:"PC_TEST_TIMEOUT" envDefault:"10s"`
	Retain  bool          `env:"PC_TEST_RETAIN" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"PC_TEST_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Topic string `env:"PC_TEST_REQUIRED_TOPIC,required"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("PC_TEST_SIDES", "20")
		t.Setenv("PC_TEST_ROLLS", "500")

		var cfg rollConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 20, cfg.Sides)
		assert.Equal(t, 500, cfg.Rolls)
		assert.Equal(t, "./result.txt", cfg.Path)
	})

	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("PC_TEST_BROKER_URL")
		os.Unsetenv("PC_TEST_TIMEOUT")
		os.Unsetenv("PC_TEST_RETAIN")

		var cfg brokerConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "tcp://localhost:1883", cfg.URL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.True(t, cfg.Retain)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("PC_TEST_CACHED", "first")

		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("PC_TEST_CACHED", "second")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)
	})

	t.Run("missing required", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("PC_TEST_REQUIRED_TOPIC")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("failed parse is not cached", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("PC_TEST_REQUIRED_TOPIC")

		var cfg requiredConfig
		require.Error(t, config.Load(&cfg))

		t.Setenv("PC_TEST_REQUIRED_TOPIC", "dice/results")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "dice/results", cfg.Topic)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *rollConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("PC_TEST_REQUIRED_TOPIC")

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	var ok rollConfig
	assert.NotPanics(t, func() { config.MustLoad(&ok) })
}

func TestForceReload(t *testing.T) {
	config.ResetCache()
	t.Setenv("PC_TEST_CACHED", "before")

	var cfg cachedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "before", cfg.Value)

	t.Setenv("PC_TEST_CACHED", "after")
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "after", cfg.Value)

	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "after", again.Value)

	t.Setenv("PC_TEST_CACHED", "alias")
	require.NoError(t, config.ForceReloadConfig(&again))
	assert.Equal(t, "alias", again.Value)

	assert.ErrorIs(t, config.ForceReload[cachedConfig](nil), config.ErrNilPointer)
}
