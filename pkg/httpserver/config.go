package httpserver

import "time"

// Config is the environment form of the server options. An empty Addr
// leaves the server disabled; see Config.Enabled.
type Config struct {
	Addr            string        `env:"METRICS_ADDR"`                             // Addr is the address the server listens on, e.g. ":9102".
	ReadTimeout     time.Duration `env:"METRICS_READ_TIMEOUT" envDefault:"10s"`    // ReadTimeout is the maximum duration for reading the entire request.
	WriteTimeout    time.Duration `env:"METRICS_WRITE_TIMEOUT" envDefault:"10s"`   // WriteTimeout is the maximum duration before timing out writes of the response.
	IdleTimeout     time.Duration `env:"METRICS_IDLE_TIMEOUT" envDefault:"60s"`    // IdleTimeout is the maximum time to wait for the next request on a keep-alive connection.
	ShutdownTimeout time.Duration `env:"METRICS_SHUTDOWN_TIMEOUT" envDefault:"5s"` // ShutdownTimeout is the time allowed for graceful shutdown.
}

// Enabled reports whether an address is configured.
func (c Config) Enabled() bool {
	return c.Addr != ""
}

// NewFromConfig creates a new Server from the provided Config.
// Only non-zero values from the config are applied; opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
