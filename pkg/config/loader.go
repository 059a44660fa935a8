package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read once, on the first Load, when present.
const DefaultEnvFile = ".env"

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	store = &cache{values: make(map[reflect.Type]any)}

	defaultEnvOnce sync.Once
)

// LoadEnv reads the given dotenv files (DefaultEnvFile when none is given)
// into the process environment. Files are merged in order, so a later file
// overrides an earlier one, while variables already set in the process keep
// their values.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	merged := make(map[string]string)
	for _, p := range paths {
		vars, err := godotenv.Read(p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, p, err)
		}
		for k, v := range vars {
			merged[k] = v
		}
	}

	for k, v := range merged {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, k, err)
		}
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using its env struct tags.
//
// The default .env file is read on the first call if it exists. Each
// configuration type is parsed once; later calls for the same type return the
// cached copy, even if the environment has changed since. Use ForceReload to
// parse again.
//
// Example:
//
//	type DiceConfig struct {
//		Sides int `env:"DICE_SIDES" envDefault:"6"`
//		Rolls int `env:"DICE_ROLLS" envDefault:"100000"`
//	}
//
//	var cfg DiceConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// a missing default file is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	store.mu.Lock()
	defer store.mu.Unlock()

	if cached, ok := store.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	return parseLocked(key, v)
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the program cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload parses v again, ignoring and replacing any cached copy.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.values, key)
	return parseLocked(key, v)
}

// ForceReloadConfig is an alias for ForceReload.
func ForceReloadConfig[T any](v *T) error {
	return ForceReload(v)
}

// ResetCache drops every cached configuration.
func ResetCache() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values = make(map[reflect.Type]any)
}

// parseLocked must be called with store.mu held.
func parseLocked[T any](key reflect.Type, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	store.values[key] = parsed
	*v = parsed
	return nil
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
