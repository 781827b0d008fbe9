package permit

import (
	"github.com/shopspring/decimal"

	"permitdesk/internal/payment"
	"permitdesk/internal/vehicle"
	"permitdesk/pkg/domain"
	dErrors "permitdesk/pkg/domain-errors"
)

// Part is one independently-dated sub-document of a national permit: the
// current period, the superseded periods, and its own fee ledger.
type Part struct {
	Current Period
	History []Period
	Ledger  payment.Ledger
}

// NewPart opens a part with its first period and fee.
func NewPart(validFrom domain.Date, rule domain.RuleKind, totalFee decimal.Decimal) (Part, error) {
	period, err := NewPeriod(validFrom, rule)
	if err != nil {
		return Part{}, err
	}
	return Part{Current: period, Ledger: payment.NewLedger(totalFee)}, nil
}

// Renew supersedes the current period with one starting at newFrom under the
// same rule. The outgoing period is appended to History unchanged.
func (p *Part) Renew(newFrom domain.Date) error {
	next, err := NewPeriod(newFrom, p.Current.Rule)
	if err != nil {
		return err
	}
	p.History = append(p.History, p.Current)
	p.Current = next
	return nil
}

// NationalPermitRecord aggregates the two sub-documents of a national
// permit: Part A, the five-year vehicle permit, and Part B, the one-year
// route authorization.
// Invariant: the parts expire independently; renewing one never alters the
// other's period or ledger.
type NationalPermitRecord struct {
	ID      domain.PermitID
	Vehicle vehicle.Number
	PartA   Part
	PartB   Part
}

// NewNationalPermitRecord issues a national permit for a vehicle, opening
// both parts from their respective start dates.
//
// Errors: CodeInvalidInput when the plate does not parse or either start
// date is unusable.
func NewNationalPermitRecord(plate string, partAFrom, partBFrom domain.Date, partAFee, partBFee decimal.Decimal) (*NationalPermitRecord, error) {
	num := vehicle.Parse(plate)
	if num == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "vehicle number is not a valid registration")
	}
	partA, err := NewPart(partAFrom, domain.FiveYearsLessOneDay, partAFee)
	if err != nil {
		return nil, err
	}
	partB, err := NewPart(partBFrom, domain.OneYearLessOneDay, partBFee)
	if err != nil {
		return nil, err
	}
	return &NationalPermitRecord{
		ID:      domain.NewPermitID(),
		Vehicle: *num,
		PartA:   partA,
		PartB:   partB,
	}, nil
}

// RenewPartA supersedes Part A's period. Part B is untouched.
func (r *NationalPermitRecord) RenewPartA(newFrom domain.Date) error {
	return r.PartA.Renew(newFrom)
}

// RenewPartB supersedes Part B's period. Part A is untouched.
func (r *NationalPermitRecord) RenewPartB(newFrom domain.Date) error {
	return r.PartB.Renew(newFrom)
}
