package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/precond/pkg/config"
	"github.com/dmitrymomot/precond/pkg/environment"
	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/logger"
)

// AppConfig holds settings shared by all commands.
type AppConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"precond"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// app is the state built once in the root command's pre-run hook.
type app struct {
	cfg   AppConfig
	log   *slog.Logger
	kinds *errkind.Registry
}

// runIDKey carries the invocation's run id; every context-aware log record
// gets it as "run_id".
type runIDKey struct{}

type rootFlags struct {
	envFiles []string
	logLevel string
}

func (a *app) init(cmd *cobra.Command, flags rootFlags) error {
	if len(flags.envFiles) > 0 {
		if err := config.LoadEnv(flags.envFiles...); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("load app config: %w", err)
	}
	if flags.logLevel != "" {
		a.cfg.LogLevel = flags.logLevel
	}

	log, err := newLogger(a.cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	logger.SetAsDefault(log)
	a.kinds = errkind.NewRegistry(errkind.Argument, errkind.State)

	ctx := environment.WithContext(contextOf(cmd), environment.Parse(a.cfg.Env))
	cmd.SetContext(context.WithValue(ctx, runIDKey{}, uuid.NewString()))
	return nil
}

func newLogger(cfg AppConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}

// kind resolves an error kind by name from the registry.
func (a *app) kind(name string) (errkind.Kind, error) {
	k, err := a.kinds.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w (known: %v)", err, a.kinds.Names())
	}
	return k, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
