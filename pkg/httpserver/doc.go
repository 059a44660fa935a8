// Package httpserver runs a small HTTP server with graceful shutdown, used to
// expose operational endpoints such as Prometheus metrics and health checks
// next to a long-running command.
//
// Construction goes through New or NewFromConfig with Option helpers such as
// WithAddr, WithReadTimeout and WithLogger. Listen binds the address up front
// so a bad or busy address is reported before the caller starts other work;
// Run serves until its context is cancelled and then shuts the server down
// within the configured deadline.
//
// Router builds a chi router with /metrics served from a prometheus.Gatherer
// and /livez and /readyz served by HealthCheckHandler.
//
// # Usage
//
//	reg := prometheus.NewRegistry()
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Listen(); err != nil {
//		return err
//	}
//	return srv.Run(ctx, httpserver.Router(reg, log, isConnected))
//
// # Errors
//
// Listen and Run wrap bind and serve failures with ErrStart, and Shutdown
// wraps shutdown failures with ErrShutdown. Use errors.Is to tell them apart.
package httpserver
