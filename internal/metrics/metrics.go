package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service's prometheus collectors behind a private
// registry so tests can build isolated instances.
type Registry struct {
	reg *prometheus.Registry

	SessionsStarted prometheus.Counter
	OrdersCompleted prometheus.Counter
	ChatMessages    *prometheus.CounterVec
}

// NewRegistry creates the registry. activeSessions is sampled on scrape to
// report the current session count.
func NewRegistry(activeSessions func() float64) *Registry {
	r := prometheus.NewRegistry()

	started := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nopickles_sessions_started_total",
		Help: "Order sessions opened since process start.",
	})
	completed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nopickles_orders_completed_total",
		Help: "Orders confirmed and finalized.",
	})
	messages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nopickles_chat_messages_total",
		Help: "Customer messages processed, labeled by classified intent.",
	}, []string{"intent"})
	active := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "nopickles_active_sessions",
		Help: "Sessions currently held in memory.",
	}, activeSessions)

	r.MustRegister(started, completed, messages, active)

	return &Registry{
		reg:             r,
		SessionsStarted: started,
		OrdersCompleted: completed,
		ChatMessages:    messages,
	}
}

// Handler exposes the registry for scraping.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
