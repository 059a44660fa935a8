package mqttfile

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "precond"

// Metrics counts relay traffic per topic. A nil *Metrics records nothing.
type Metrics struct {
	messages *prometheus.CounterVec
	bytes    *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics creates the relay counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "mqttfile",
			Name:      "messages_total",
			Help:      "Number of relayed messages by direction and topic.",
		}, []string{"direction", "topic"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "mqttfile",
			Name:      "bytes_total",
			Help:      "Number of relayed payload bytes by direction and topic.",
		}, []string{"direction", "topic"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "mqttfile",
			Name:      "failures_total",
			Help:      "Number of failed relay operations by direction and topic.",
		}, []string{"direction", "topic"}),
	}

	for _, c := range []prometheus.Collector{m.messages, m.bytes, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

const (
	directionOut = "out"
	directionIn  = "in"
)

func (m *Metrics) success(direction, topic string, n int) {
	if m == nil {
		return
	}
	m.messages.WithLabelValues(direction, topic).Inc()
	m.bytes.WithLabelValues(direction, topic).Add(float64(n))
}

func (m *Metrics) failure(direction, topic string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(direction, topic).Inc()
}
