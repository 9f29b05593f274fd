// Package metrics exposes prometheus counters for the consent and audit
// flows. The registry is injected so each process (or test) owns its own.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Share-code lookup results.
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Metrics holds the prometheus collectors of the data-access layer.
type Metrics struct {
	sessionsCreated prometheus.Counter
	sessionsExpired prometheus.Counter
	codeLookups     *prometheus.CounterVec
	auditRecorded   prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "consent_sessions_created_total",
			Help: "Total number of consent sessions created.",
		}),
		sessionsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "consent_sessions_expired_total",
			Help: "Total number of explicit consent session expirations.",
		}),
		codeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "consent_share_code_lookups_total",
			Help: "Total number of share-code lookups, by result.",
		}, []string{"result"}),
		auditRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_entries_recorded_total",
			Help: "Total number of audit log entries recorded.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.sessionsCreated,
		m.sessionsExpired,
		m.codeLookups,
		m.auditRecorded,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Nil-receiver safe: services constructed without metrics simply skip
// counting.

func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
}

func (m *Metrics) SessionExpired() {
	if m == nil {
		return
	}
	m.sessionsExpired.Inc()
}

func (m *Metrics) CodeLookup(result string) {
	if m == nil {
		return
	}
	m.codeLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) AuditRecorded() {
	if m == nil {
		return
	}
	m.auditRecorded.Inc()
}
