// Package normalizer is the facade every issue/edit form depends on: it
// composes the date formatter, the plate parser, the validity engine and the
// payment ledger behind the form-field contract. Date fields wire onChange to
// HandleDateKeystroke and onBlur to HandleDateBlur; plate fields wire
// onChange to HandlePlateKeystroke then ValidatePlate; on save,
// AssembleRecord produces the shape the persistence collaborator accepts.
package normalizer

import (
	"go.uber.org/zap"

	"permitdesk/internal/dateinput"
	"permitdesk/internal/normalizer/metrics"
	"permitdesk/internal/payment"
	"permitdesk/internal/permit"
	"permitdesk/internal/validity"
	"permitdesk/internal/vehicle"
	"permitdesk/pkg/domain"
	dErrors "permitdesk/pkg/domain-errors"
)

// Normalizer bundles the pure components with optional observability.
// All methods are safe for concurrent use: the components hold no mutable
// state and the logger and metrics are themselves concurrency-safe.
type Normalizer struct {
	engine  *validity.Engine
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger attaches a structured logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(n *Normalizer) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m *metrics.Metrics) Option {
	return func(n *Normalizer) { n.metrics = m }
}

// WithThresholdOverrides replaces the display-only threshold bands for the
// given kinds.
func WithThresholdOverrides(overrides map[domain.PermitKind]validity.Thresholds) Option {
	return func(n *Normalizer) { n.engine = validity.New(overrides) }
}

// New builds a Normalizer with the mandated threshold table.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		engine: validity.New(nil),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// HandleDateKeystroke formats a date field's raw text on change.
func (n *Normalizer) HandleDateKeystroke(raw, prior string, lastActionWasDelete bool) string {
	return dateinput.FormatOnInput(raw, prior, lastActionWasDelete)
}

// HandleDateBlur normalizes a date field on focus loss.
func (n *Normalizer) HandleDateBlur(value string) string {
	return dateinput.NormalizeOnBlur(value)
}

// HandlePlateKeystroke filters a plate field's new value on change.
func (n *Normalizer) HandlePlateKeystroke(prior, next string) string {
	return vehicle.EnforceFormatWhileTyping(prior, next)
}

// ValidatePlate checks a complete plate value and records the verdict.
func (n *Normalizer) ValidatePlate(value string) vehicle.Result {
	res := vehicle.Validate(value)
	if res.Valid {
		n.metrics.IncPlateValidation("valid")
	} else {
		n.metrics.IncPlateValidation(res.Message)
	}
	return res
}

// RecomputeValidTo derives the valid-to field whenever valid-from or the
// permit kind changes. While validFrom is incomplete or malformed, the
// previous valid-to value is returned untouched so the field never flashes
// empty mid-typing.
func (n *Normalizer) RecomputeValidTo(validFrom string, kind domain.PermitKind, previous string) string {
	rule, ok := validity.RuleFor(kind)
	if !ok {
		return previous
	}
	from, err := domain.ParseDate(validFrom)
	if err != nil {
		n.metrics.IncDateParseFailure(string(dErrors.CodeOf(err)))
		return previous
	}
	validTo, ok := validity.ComputeValidToDate(from, rule)
	if !ok {
		return previous
	}
	return validTo.String()
}

// Classify reports the severity band for a permit's end date.
func (n *Normalizer) Classify(validTo string, kind domain.PermitKind, today domain.Date) validity.Severity {
	sev := n.engine.ClassifyPermit(validTo, kind, today)
	n.metrics.IncClassification(kind.String(), string(sev))
	return sev
}

// IsRenewalEligible reports whether the renewal action should be offered.
func (n *Normalizer) IsRenewalEligible(validTo string, kind domain.PermitKind, today domain.Date) bool {
	return n.engine.IsRenewalEligible(validTo, kind, today)
}

// ApplyLedgerChange recomputes the ledger after a fee field edit, logging
// and counting boundary clamps so over-payments never vanish silently.
func (n *Normalizer) ApplyLedgerChange(field payment.Field, raw string, current payment.Ledger) (payment.Ledger, bool) {
	next, exceeds := payment.ApplyChange(field, raw, current)
	if exceeds {
		n.metrics.IncLedgerClamp()
		n.logger.Info("paid amount clamped to total fee",
			zap.String("field", string(field)),
			zap.String("entered", raw),
			zap.String("total_fee", next.TotalFee.String()))
	}
	return next, exceeds
}

// AssembleRecord resolves a form's fields into the persistence-ready record.
//
// Errors: CodeInvalidFormat when the plate or valid-from value violates its
// grammar (the UI blocks submission on these); CodeIncompleteInput when the
// date is still partial.
func (n *Normalizer) AssembleRecord(plate, validFrom string, kind domain.PermitKind, ledger payment.Ledger) (permit.Record, error) {
	num := vehicle.Parse(plate)
	if num == nil {
		res := vehicle.Validate(plate)
		n.metrics.IncPlateValidation(res.Message)
		return permit.Record{}, dErrors.New(dErrors.CodeInvalidFormat, res.Message)
	}

	from, err := domain.ParseDate(dateinput.NormalizeOnBlur(validFrom))
	if err != nil {
		n.metrics.IncDateParseFailure(string(dErrors.CodeOf(err)))
		return permit.Record{}, err
	}

	rule, ok := validity.RuleFor(kind)
	if !ok {
		return permit.Record{}, dErrors.New(dErrors.CodeInvalidInput, "unsupported permit kind")
	}
	validTo, _ := validity.ComputeValidToDate(from, rule)

	return permit.Record{
		VehicleNumber: num.Raw(),
		ValidFrom:     from.String(),
		ValidTo:       validTo.String(),
		TotalFee:      ledger.TotalFee,
		Paid:          ledger.Paid,
		Balance:       ledger.Balance,
	}, nil
}
