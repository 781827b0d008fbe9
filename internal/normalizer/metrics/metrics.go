package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the normalizer module.
type Metrics struct {
	// Plate validation verdicts by outcome ("valid" or the rejection key)
	PlateValidation *prometheus.CounterVec

	// Date inputs that failed to parse on derive, by error code
	DateParseFailure *prometheus.CounterVec

	// Ledger changes that clamped paid to the total fee
	LedgerClamp prometheus.Counter

	// Classification outcomes by permit kind and severity
	Classification *prometheus.CounterVec
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return With(nil)
}

// With creates a Metrics instance registered on reg; nil means the default
// registry. Tests pass their own registry to avoid duplicate registration.
func With(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		PlateValidation: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "permitdesk_plate_validation_total",
			Help: "Total plate validation verdicts by outcome",
		}, []string{"outcome"}),

		DateParseFailure: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "permitdesk_date_parse_failures_total",
			Help: "Date inputs that could not be parsed when deriving a dependent field, by error code",
		}, []string{"code"}),

		LedgerClamp: factory.NewCounter(prometheus.CounterOpts{
			Name: "permitdesk_ledger_clamps_total",
			Help: "Ledger changes where paid was clamped to the total fee",
		}),

		Classification: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "permitdesk_classification_total",
			Help: "Permit severity classifications by kind and severity",
		}, []string{"kind", "severity"}),
	}
}

// IncPlateValidation records a plate validation verdict.
func (m *Metrics) IncPlateValidation(outcome string) {
	if m != nil {
		m.PlateValidation.WithLabelValues(outcome).Inc()
	}
}

// IncDateParseFailure records a failed date parse during derivation.
func (m *Metrics) IncDateParseFailure(code string) {
	if m != nil {
		m.DateParseFailure.WithLabelValues(code).Inc()
	}
}

// IncLedgerClamp records a clamped payment.
func (m *Metrics) IncLedgerClamp() {
	if m != nil {
		m.LedgerClamp.Inc()
	}
}

// IncClassification records a severity classification.
func (m *Metrics) IncClassification(kind, severity string) {
	if m != nil {
		m.Classification.WithLabelValues(kind, severity).Inc()
	}
}
