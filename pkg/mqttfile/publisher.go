package mqttfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/logger"
	"github.com/dmitrymomot/precond/pkg/optional"
	"github.com/dmitrymomot/precond/pkg/tracelog"
	"github.com/dmitrymomot/precond/pkg/validator"
)

// Publisher sends file contents to a topic.
type Publisher struct {
	client   Client
	topic    string
	qos      byte
	retained bool
	timeout  time.Duration
	log      *slog.Logger
	metrics  *Metrics
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithPublisherLogger sets the logger publishes are traced to.
func WithPublisherLogger(log *slog.Logger) PublisherOption {
	return func(p *Publisher) { p.log = log }
}

// WithPublisherMetrics records publishes in m.
func WithPublisherMetrics(m *Metrics) PublisherOption {
	return func(p *Publisher) { p.metrics = m }
}

// NewPublisher creates a Publisher for cfg.Topic using cfg's QoS, retain flag
// and operation timeout.
func NewPublisher(client Client, cfg Config, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		client:   client,
		topic:    cfg.Topic,
		qos:      cfg.QoS,
		retained: cfg.Retained,
		timeout:  cfg.OperationTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PublishFile reads the file at path and publishes its contents.
// It fails with *errkind.ArgumentError when path is blank, missing or not a
// regular file.
func (p *Publisher) PublishFile(ctx context.Context, path string) error {
	const sig = "mqttfile.Publisher.PublishFile"

	start := time.Now()
	tracelog.Entrance(ctx, p.log, sig, []string{"path", "topic"}, []any{path, p.topic})

	v := optional.Of(path)
	if err := validator.First(
		validator.NotNullNorEmptyTrimmed(v, "path", errkind.Argument),
		validator.Exists(v, "path", errkind.Argument),
		validator.IsFile(v, "path", errkind.Argument),
	); err != nil {
		p.metrics.failure(directionOut, p.topic)
		return tracelog.Exception(ctx, p.log, sig, err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		p.metrics.failure(directionOut, p.topic)
		return tracelog.Exception(ctx, p.log, sig, fmt.Errorf("%w: %w", ErrPublish, err))
	}

	if err := p.Publish(ctx, payload); err != nil {
		return tracelog.Exception(ctx, p.log, sig, err)
	}

	if p.log != nil {
		p.log.InfoContext(ctx, "file published", logger.Path(path), logger.Topic(p.topic), logger.Bytes(len(payload)))
	}
	tracelog.Exit(ctx, p.log, sig, tracelog.WithResult(len(payload)), tracelog.WithEntranceTime(start))
	return nil
}

// Publish sends payload and waits for the broker to acknowledge it.
func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	token := p.client.Publish(p.topic, p.qos, p.retained, payload)
	if err := wait(ctx, token, p.timeout); err != nil {
		p.metrics.failure(directionOut, p.topic)
		return fmt.Errorf("%w: %s: %w", ErrPublish, p.topic, err)
	}
	p.metrics.success(directionOut, p.topic, len(payload))
	return nil
}
