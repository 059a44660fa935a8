package mqttfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/dmitrymomot/precond/pkg/logger"
	"github.com/dmitrymomot/precond/pkg/tracelog"
)

// Delivery describes a payload written by a Receiver.
type Delivery struct {
	Topic string
	QoS   byte
	Bytes int
	Path  string
	Err   error
}

// Receiver writes payloads from a topic to a file.
type Receiver struct {
	client  Client
	topic   string
	qos     byte
	path    string
	timeout time.Duration
	log     *slog.Logger
	metrics *Metrics
	notify  func(Delivery)

	mu         sync.Mutex
	subscribed bool
}

// ReceiverOption configures a Receiver.
type ReceiverOption func(*Receiver)

// WithReceiverLogger sets the logger deliveries are traced to.
func WithReceiverLogger(log *slog.Logger) ReceiverOption {
	return func(r *Receiver) { r.log = log }
}

// WithReceiverMetrics records deliveries in m.
func WithReceiverMetrics(m *Metrics) ReceiverOption {
	return func(r *Receiver) { r.metrics = m }
}

// WithNotify calls fn after each delivery, successful or not. fn runs on the
// client's message goroutine and must not block.
func WithNotify(fn func(Delivery)) ReceiverOption {
	return func(r *Receiver) { r.notify = fn }
}

// NewReceiver creates a Receiver for cfg.Topic that writes to cfg.ReceivePath.
func NewReceiver(client Client, cfg Config, opts ...ReceiverOption) *Receiver {
	r := &Receiver{
		client:  client,
		topic:   cfg.Topic,
		qos:     cfg.QoS,
		path:    cfg.ReceivePath,
		timeout: cfg.OperationTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start subscribes to the topic.
func (r *Receiver) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subscribed {
		return ErrAlreadySubscribed
	}
	if err := wait(ctx, r.client.Subscribe(r.topic, r.qos, r.handle), r.timeout); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSubscribe, r.topic, err)
	}
	r.subscribed = true
	if r.log != nil {
		r.log.InfoContext(ctx, "subscribed", logger.Topic(r.topic), logger.Path(r.path))
	}
	return nil
}

// Stop unsubscribes from the topic. Stopping a receiver that is not
// subscribed is a no-op.
func (r *Receiver) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.subscribed {
		return nil
	}
	if err := wait(ctx, r.client.Unsubscribe(r.topic), r.timeout); err != nil {
		return fmt.Errorf("%w: unsubscribe %s: %w", ErrSubscribe, r.topic, err)
	}
	r.subscribed = false
	return nil
}

func (r *Receiver) handle(_ mqtt.Client, msg mqtt.Message) {
	const sig = "mqttfile.Receiver.handle"
	ctx := context.Background()

	payload := msg.Payload()
	tracelog.Entrance(ctx, r.log, sig, []string{"topic", "qos", "bytes"}, []any{msg.Topic(), msg.Qos(), len(payload)})

	d := Delivery{Topic: msg.Topic(), QoS: msg.Qos(), Bytes: len(payload), Path: r.path}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		r.metrics.failure(directionIn, r.topic)
		d.Err = tracelog.Exception(ctx, r.log, sig, err)
	} else {
		r.metrics.success(directionIn, r.topic, len(payload))
		tracelog.Exit(ctx, r.log, sig, tracelog.WithResult(r.path))
	}

	if r.notify != nil {
		r.notify(d)
	}
}
