package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Signature records the traced call site under the key "signature".
func Signature(sig string) slog.Attr {
	return slog.String("signature", sig)
}

// Phase records the tracing phase (entrance, params, exit, return, exception)
// under the key "phase".
func Phase(phase string) slog.Attr {
	return slog.String("phase", phase)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Topic records a messaging topic under the key "topic".
func Topic(topic string) slog.Attr {
	return slog.String("topic", topic)
}

// Path records a file system path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Bytes records a payload size under the key "bytes".
func Bytes(n int) slog.Attr {
	return slog.Int("bytes", n)
}
