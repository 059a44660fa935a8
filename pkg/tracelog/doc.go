// Package tracelog logs method entrance, exit and failure events to an
// injected sink.
//
// A Tracer turns a call site signature, parameters, a result or an error into
// text through a Formatter and forwards it to a Sink at a chosen slog.Level.
// *slog.Logger satisfies Sink, so any logger built with pkg/logger works:
//
//	func (s *Service) Roll(ctx context.Context, n int) (res int, err error) {
//	    const sig = "Service.Roll"
//	    start := time.Now()
//	    tracelog.Entrance(ctx, s.log, sig, []string{"n"}, []any{n})
//	    defer func() {
//	        if err == nil {
//	            tracelog.Exit(ctx, s.log, sig, tracelog.WithResult(res), tracelog.WithEntranceTime(start))
//	        }
//	    }()
//	    if n <= 0 {
//	        return 0, tracelog.Exception(ctx, s.log, sig, errBadCount)
//	    }
//	    ...
//	}
//
// Entrance and exit events default to slog.LevelDebug, exceptions to
// slog.LevelError; AtLevel overrides either per call.
//
// A nil Sink (or nil *slog.Logger) disables tracing: the call returns before
// any formatting. Exception always returns the error it was given, with or
// without a sink, so it can be used inline in a return statement.
//
// Entrance expects len(values) >= len(names); this is not checked.
//
// The package holds no state beyond the immutable Tracer configuration and
// neither buffers nor batches; sink thread safety is the sink's concern.
package tracelog
