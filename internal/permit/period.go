// Package permit holds the period and record aggregates built on top of the
// validity engine. Periods are superseded, never mutated: renewing produces a
// new Period while the old one is retained as history.
package permit

import (
	"fmt"

	"permitdesk/internal/validity"
	"permitdesk/pkg/domain"
	dErrors "permitdesk/pkg/domain-errors"
)

// Period is one validity span of a permit document.
// Invariant: ValidTo is fully determined by ValidFrom and Rule; it is a
// derived field and is never editable on its own.
type Period struct {
	ValidFrom domain.Date
	ValidTo   domain.Date
	Rule      domain.RuleKind
}

// NewPeriod derives a period from its start date and governing rule.
//
// Errors: CodeInvalidInput when the start date is unset or the rule is not a
// supported validity rule.
func NewPeriod(validFrom domain.Date, rule domain.RuleKind) (Period, error) {
	if validFrom.IsZero() {
		return Period{}, dErrors.New(dErrors.CodeInvalidInput, "period requires a start date")
	}
	validTo, ok := validity.ComputeValidToDate(validFrom, rule)
	if !ok {
		return Period{}, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported validity rule %q", rule))
	}
	return Period{ValidFrom: validFrom, ValidTo: validTo, Rule: rule}, nil
}
