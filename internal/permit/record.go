package permit

import (
	"github.com/shopspring/decimal"
)

// Record is the fully-resolved shape handed to the external persistence
// collaborator on save. Every field is already normalized: dates are
// DD-MM-YYYY, the plate is uppercase with no separators, and the balance is
// derived. This package never calls the persistence API itself.
type Record struct {
	VehicleNumber string
	ValidFrom     string
	ValidTo       string
	TotalFee      decimal.Decimal
	Paid          decimal.Decimal
	Balance       decimal.Decimal
}
