package mqttfile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/dmitrymomot/precond/pkg/logger"
)

const clientIDPrefix = "precond-"

// Client is the part of mqtt.Client the relay needs.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload any) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Unsubscribe(topics ...string) mqtt.Token
	Disconnect(quiesce uint)
}

var _ Client = (mqtt.Client)(nil)

// ClientOptions builds paho options from cfg. An empty ClientID gets a
// random one. Connection loss is logged to log when it is not nil.
func ClientOptions(cfg Config, log *slog.Logger) *mqtt.ClientOptions {
	id := cfg.ClientID
	if id == "" {
		id = clientIDPrefix + uuid.NewString()
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(id).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetCleanSession(cfg.CleanSession).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetKeepAlive(cfg.KeepAlive).
		SetAutoReconnect(true)

	if log != nil {
		log = log.With(logger.Component("mqttfile"))
		opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn("mqtt connection lost", logger.Error(err))
		})
		opts.SetOnConnectHandler(func(_ mqtt.Client) {
			log.Info("mqtt connected", slog.String("broker", cfg.BrokerURL), slog.String("client_id", id))
		})
	}
	return opts
}

// Connect validates cfg, connects to the broker and returns the client.
func Connect(ctx context.Context, cfg Config, log *slog.Logger) (mqtt.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := mqtt.NewClient(ClientOptions(cfg, log))
	if err := wait(ctx, client.Connect(), cfg.ConnectTimeout); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnect, cfg.BrokerURL, err)
	}
	return client, nil
}

// wait blocks until the token completes, ctx is done or timeout passes.
func wait(ctx context.Context, token mqtt.Token, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrTimeout
	}
}
