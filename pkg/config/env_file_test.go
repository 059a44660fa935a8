package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/precond/pkg/config"
)

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetForTest removes keys from the environment and restores them after t.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

type fileConfig struct {
	Sides  int      `env:"PC_FILE_SIDES"`
	Topic  string   `env:"PC_FILE_TOPIC"`
	Faces  []string `env:"PC_FILE_FACES" envSeparator:","`
	Quoted string   `env:"PC_FILE_QUOTED"`
}

func TestLoadEnv(t *testing.T) {
	keys := []string{"PC_FILE_SIDES", "PC_FILE_TOPIC", "PC_FILE_FACES", "PC_FILE_QUOTED", "PC_FILE_ONLY_OVERRIDE"}

	t.Run("single file", func(t *testing.T) {
		unsetForTest(t, keys...)
		config.ResetCache()

		path := writeEnvFile(t, ".env.dice", "PC_FILE_SIDES=12\nPC_FILE_TOPIC=dice\nPC_FILE_FACES=one,two,three\nPC_FILE_QUOTED=\"quoted value\"\n")
		require.NoError(t, config.LoadEnv(path))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 12, cfg.Sides)
		assert.Equal(t, "dice", cfg.Topic)
		assert.Equal(t, []string{"one", "two", "three"}, cfg.Faces)
		assert.Equal(t, "quoted value", cfg.Quoted)
	})

	t.Run("later file wins", func(t *testing.T) {
		unsetForTest(t, keys...)
		config.ResetCache()

		base := writeEnvFile(t, ".env.base", "PC_FILE_SIDES=6\nPC_FILE_TOPIC=base\n")
		override := writeEnvFile(t, ".env.override", "PC_FILE_TOPIC=override\nPC_FILE_ONLY_OVERRIDE=yes\n")
		require.NoError(t, config.LoadEnv(base, override))

		assert.Equal(t, "6", os.Getenv("PC_FILE_SIDES"))
		assert.Equal(t, "override", os.Getenv("PC_FILE_TOPIC"))
		assert.Equal(t, "yes", os.Getenv("PC_FILE_ONLY_OVERRIDE"))
	})

	t.Run("process environment wins", func(t *testing.T) {
		unsetForTest(t, keys...)
		t.Setenv("PC_FILE_TOPIC", "from-process")

		path := writeEnvFile(t, ".env", "PC_FILE_TOPIC=from-file\n")
		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "from-process", os.Getenv("PC_FILE_TOPIC"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("nothing applied when one file is missing", func(t *testing.T) {
		unsetForTest(t, keys...)

		good := writeEnvFile(t, ".env.good", "PC_FILE_TOPIC=good\n")
		require.Error(t, config.LoadEnv(good, filepath.Join(t.TempDir(), "missing.env")))
		_, set := os.LookupEnv("PC_FILE_TOPIC")
		assert.False(t, set)
	})
}

func TestMustLoadEnv(t *testing.T) {
	unsetForTest(t, "PC_FILE_TOPIC")

	path := writeEnvFile(t, ".env", "PC_FILE_TOPIC=must\n")
	assert.NotPanics(t, func() { config.MustLoadEnv(path) })
	assert.Equal(t, "must", os.Getenv("PC_FILE_TOPIC"))

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}
