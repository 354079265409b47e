// Package metrics exposes poller results as prometheus collectors
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robgonnella/noip-sensor/internal/poller"
	"github.com/robgonnella/noip-sensor/internal/status"
)

const namespace = "noip_sensor"

// Metrics implements poller.Observer and owns its own registry
type Metrics struct {
	registry      *prometheus.Registry
	polls         *prometheus.CounterVec
	transportErrs *prometheus.CounterVec
	contact       *prometheus.GaugeVec
	halted        *prometheus.GaugeVec
	lastPoll      *prometheus.GaugeVec
}

// New returns collectors registered with a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Completed update requests by response token.",
		}, []string{"hostname", "token"}),
		transportErrs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transport_errors_total",
			Help:      "Update requests that failed before a response could be interpreted.",
		}, []string{"hostname"}),
		contact: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "contact_detected",
			Help:      "1 when the last update was healthy.",
		}, []string{"hostname"}),
		halted: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "halted",
			Help:      "1 when polling is halted after a fatal response.",
		}, []string{"hostname"}),
		lastPoll: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_poll_timestamp_seconds",
			Help:      "Unix time of the last completed poll.",
		}, []string{"hostname"}),
	}

	m.registry.MustRegister(
		m.polls,
		m.transportErrs,
		m.contact,
		m.halted,
		m.lastPoll,
	)

	return m
}

// Registry returns the registry to serve
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe implements poller.Observer
func (m *Metrics) Observe(res poller.Result) {
	m.halted.WithLabelValues(res.Hostname).Set(boolToFloat(res.Halted))

	if res.Reset {
		return
	}

	m.lastPoll.WithLabelValues(res.Hostname).Set(float64(res.At.Unix()))

	if res.Err != nil {
		m.transportErrs.WithLabelValues(res.Hostname).Inc()
		return
	}

	m.polls.WithLabelValues(res.Hostname, string(res.Outcome.Token)).Inc()
	m.contact.WithLabelValues(res.Hostname).Set(boolToFloat(res.Contact.Detected()))
}

// Forget drops every series for hostname
func (m *Metrics) Forget(hostname string) {
	labels := prometheus.Labels{"hostname": hostname}

	m.polls.DeletePartialMatch(labels)
	m.transportErrs.DeletePartialMatch(labels)
	m.contact.DeletePartialMatch(labels)
	m.halted.DeletePartialMatch(labels)
	m.lastPoll.DeletePartialMatch(labels)
}

// Init creates zero valued series for hostname so dashboards see every
// token before it first occurs
func (m *Metrics) Init(hostname string) {
	for _, token := range tokens {
		m.polls.WithLabelValues(hostname, string(token))
	}

	m.transportErrs.WithLabelValues(hostname)
	m.halted.WithLabelValues(hostname).Set(0)
}

var tokens = []status.Token{
	status.TokenGood,
	status.TokenNoChange,
	status.TokenNoHost,
	status.TokenBadAuth,
	status.TokenBadAgent,
	status.TokenDonator,
	status.TokenAbuse,
	status.TokenOutage,
	status.TokenUnknown,
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
