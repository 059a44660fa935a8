package tracelog

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/dmitrymomot/precond/pkg/logger"
	"github.com/dmitrymomot/precond/pkg/optional"
)

// Sink receives formatted trace events. *slog.Logger implements it.
type Sink interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
}

// Default levels.
const (
	DefaultLevel          = slog.LevelDebug
	DefaultExceptionLevel = slog.LevelError
)

const (
	phaseEntrance  = "entrance"
	phaseParams    = "params"
	phaseExit      = "exit"
	phaseReturn    = "return"
	phaseException = "exception"
)

// Tracer formats and emits trace events. Its configuration is fixed at
// construction, so a Tracer is safe for concurrent use.
type Tracer struct {
	formatter Formatter
	now       func() time.Time
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithFormatter replaces the default TextFormatter. Nil is ignored.
func WithFormatter(f Formatter) Option {
	return func(t *Tracer) {
		if f != nil {
			t.formatter = f
		}
	}
}

// WithClock sets the time source used to compute elapsed time. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(t *Tracer) {
		if now != nil {
			t.now = now
		}
	}
}

// New creates a Tracer.
func New(opts ...Option) *Tracer {
	t := &Tracer{
		formatter: TextFormatter{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// call holds per-call settings.
type call struct {
	level    slog.Level
	result   optional.Value[any]
	entrance optional.Value[time.Time]
}

// CallOption adjusts a single trace call.
type CallOption func(*call)

// AtLevel overrides the level of the events emitted by the call.
func AtLevel(l slog.Level) CallOption {
	return func(c *call) { c.level = l }
}

// WithResult logs v as the method's return value on Exit.
// A nil v is logged as well; omit the option for methods without a result.
func WithResult(v any) CallOption {
	return func(c *call) { c.result = optional.Of(v) }
}

// WithEntranceTime makes Exit include the time elapsed since t.
func WithEntranceTime(t time.Time) CallOption {
	return func(c *call) { c.entrance = optional.Of(t) }
}

func newCall(level slog.Level, opts []CallOption) call {
	c := call{level: level}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Entrance logs the method entrance, then its parameters when names is not nil.
func (t *Tracer) Entrance(ctx context.Context, sink Sink, signature string, names []string, values []any, opts ...CallOption) {
	if absent(sink) {
		return
	}
	c := newCall(DefaultLevel, opts)

	sink.Log(ctx, c.level, t.formatter.Entrance(signature),
		logger.Signature(signature), logger.Phase(phaseEntrance))
	if names != nil {
		sink.Log(ctx, c.level, t.formatter.Params(names, values),
			logger.Signature(signature), logger.Phase(phaseParams))
	}
}

// Exit logs the method exit, with elapsed time when WithEntranceTime is
// given, then the result when WithResult is given.
func (t *Tracer) Exit(ctx context.Context, sink Sink, signature string, opts ...CallOption) {
	if absent(sink) {
		return
	}
	c := newCall(DefaultLevel, opts)

	args := []any{logger.Signature(signature), logger.Phase(phaseExit)}
	elapsed := optional.None[time.Duration]()
	if start, ok := c.entrance.Get(); ok {
		d := t.now().Sub(start)
		elapsed = optional.Of(d)
		args = append(args, logger.Duration(d))
	}
	sink.Log(ctx, c.level, t.formatter.Exit(signature, elapsed), args...)

	if v, ok := c.result.Get(); ok {
		sink.Log(ctx, c.level, t.formatter.Return(v),
			logger.Signature(signature), logger.Phase(phaseReturn))
	}
}

// Exception logs err and returns it unchanged. With an absent sink nothing
// is logged, but err is still returned so callers can write
// "return tracelog.Exception(...)" unconditionally.
func (t *Tracer) Exception(ctx context.Context, sink Sink, signature string, err error, opts ...CallOption) error {
	if absent(sink) {
		return err
	}
	c := newCall(DefaultExceptionLevel, opts)

	sink.Log(ctx, c.level, t.formatter.Exception(signature, err),
		logger.Signature(signature), logger.Phase(phaseException), logger.Error(err))
	return err
}

// absent reports whether sink is nil, including a typed nil such as a nil
// *slog.Logger.
func absent(sink Sink) bool {
	if sink == nil {
		return true
	}
	rv := reflect.ValueOf(sink)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

var defaultTracer = New()

// Entrance logs with the default Tracer.
func Entrance(ctx context.Context, sink Sink, signature string, names []string, values []any, opts ...CallOption) {
	defaultTracer.Entrance(ctx, sink, signature, names, values, opts...)
}

// Exit logs with the default Tracer.
func Exit(ctx context.Context, sink Sink, signature string, opts ...CallOption) {
	defaultTracer.Exit(ctx, sink, signature, opts...)
}

// Exception logs with the default Tracer and returns err unchanged, also
// when sink is absent.
func Exception(ctx context.Context, sink Sink, signature string, err error, opts ...CallOption) error {
	return defaultTracer.Exception(ctx, sink, signature, err, opts...)
}
