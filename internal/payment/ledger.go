// Package payment keeps a permit's fee arithmetic consistent: the balance is
// always derived from total and paid, never set directly. Amounts are exact
// decimals; float drift on legal fee records is not acceptable.
package payment

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Field names the ledger field a form edit changed.
type Field string

const (
	FieldTotalFee Field = "totalFee"
	FieldPaid     Field = "paid"
)

// Ledger holds a permit's fee state.
// Invariants: all amounts are non-negative, Paid never exceeds TotalFee, and
// Balance is always TotalFee − Paid.
type Ledger struct {
	TotalFee decimal.Decimal
	Paid     decimal.Decimal
	Balance  decimal.Decimal
}

// NewLedger starts a ledger with the given total fee and nothing paid.
func NewLedger(totalFee decimal.Decimal) Ledger {
	if totalFee.IsNegative() {
		totalFee = decimal.Zero
	}
	return Ledger{TotalFee: totalFee, Paid: decimal.Zero, Balance: totalFee}
}

// ApplyChange recomputes the ledger after one field changed, parsing the raw
// field text leniently (non-numeric and negative input count as 0, so typing
// is never blocked).
//
// When the change would leave Paid above TotalFee — raising paid past the
// total, or lowering the total below what was already paid — Paid is clamped
// to TotalFee and exceedsTotal is true so the caller can surface a warning.
// The excess is never dropped silently.
func ApplyChange(field Field, raw string, current Ledger) (Ledger, bool) {
	amount := ParseAmount(raw)

	next := current
	switch field {
	case FieldTotalFee:
		next.TotalFee = amount
	case FieldPaid:
		next.Paid = amount
	default:
		return current, false
	}

	exceeds := false
	if next.Paid.GreaterThan(next.TotalFee) {
		next.Paid = next.TotalFee
		exceeds = true
	}
	next.Balance = next.TotalFee.Sub(next.Paid)
	return next, exceeds
}

// ParseAmount converts free-text numeric input to a non-negative decimal.
// Unparseable or negative values yield 0; this is best-effort field plumbing,
// not validation.
func ParseAmount(raw string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}
