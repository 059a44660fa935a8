package mqttfile

import (
	"net/url"
	"time"

	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/optional"
	"github.com/dmitrymomot/precond/pkg/validator"
)

// Config holds broker and relay settings, loaded with pkg/config.
type Config struct {
	BrokerURL        string        `env:"MQTT_BROKER_URL" envDefault:"tcp://localhost:1883"`
	ClientID         string        `env:"MQTT_CLIENT_ID"`
	Username         string        `env:"MQTT_USERNAME"`
	Password         string        `env:"MQTT_PASSWORD"`
	Topic            string        `env:"MQTT_TOPIC" envDefault:"precond/files"`
	QoS              byte          `env:"MQTT_QOS" envDefault:"1"`
	Retained         bool          `env:"MQTT_RETAINED" envDefault:"true"`
	CleanSession     bool          `env:"MQTT_CLEAN_SESSION" envDefault:"false"`
	ConnectTimeout   time.Duration `env:"MQTT_CONNECT_TIMEOUT" envDefault:"10s"`
	KeepAlive        time.Duration `env:"MQTT_KEEPALIVE" envDefault:"20s"`
	OperationTimeout time.Duration `env:"MQTT_OPERATION_TIMEOUT" envDefault:"5s"`
	ReceivePath      string        `env:"MQTT_RECEIVE_PATH" envDefault:"./received.txt"`
}

// DefaultConfig returns the settings used when no environment is set.
func DefaultConfig() Config {
	return Config{
		BrokerURL:        "tcp://localhost:1883",
		Topic:            "precond/files",
		QoS:              1,
		Retained:         true,
		ConnectTimeout:   10 * time.Second,
		KeepAlive:        20 * time.Second,
		OperationTimeout: 5 * time.Second,
		ReceivePath:      "./received.txt",
	}
}

// Validate fails with *errkind.ArgumentError on the first bad setting.
func (c Config) Validate() error {
	if err := validator.First(
		validator.NotNullNorEmptyTrimmed(optional.Of(c.BrokerURL), "broker url", errkind.Argument),
		validator.NotNullNorEmptyTrimmed(optional.Of(c.Topic), "topic", errkind.Argument),
		validator.InRange(c.QoS, 0, 2, true, true, "qos", errkind.Argument),
		validator.Positive(c.ConnectTimeout, "connect timeout", errkind.Argument),
		validator.NotNegative(c.KeepAlive, "keepalive", errkind.Argument),
		validator.Positive(c.OperationTimeout, "operation timeout", errkind.Argument),
	); err != nil {
		return err
	}
	u, err := url.Parse(c.BrokerURL)
	if err != nil {
		return errkind.ConstructWithCause(errkind.Argument, "broker url is malformed", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return errkind.Construct(errkind.Argument, "broker url should have a scheme and a host")
	}
	return nil
}
