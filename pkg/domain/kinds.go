package domain

import dErrors "permitdesk/pkg/domain-errors"

// RuleKind is a domain value that identifies how a permit's expiry date is
// derived from its start date.
// Invariant: the value must be one of the supported validity rules.
//
// Usage: construct via ParseRuleKind at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type RuleKind string

// Supported validity rules.
const (
	FiveYearsLessOneDay RuleKind = "five_years_less_one_day"
	OneYearLessOneDay   RuleKind = "one_year_less_one_day"
	ThreeMonths         RuleKind = "three_months"
	FourMonths          RuleKind = "four_months"
)

// validRuleKinds is the single source of truth for valid rules.
var validRuleKinds = map[RuleKind]bool{
	FiveYearsLessOneDay: true,
	OneYearLessOneDay:   true,
	ThreeMonths:         true,
	FourMonths:          true,
}

// ParseRuleKind constructs a RuleKind from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseRuleKind(s string) (RuleKind, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "rule kind cannot be empty")
	}
	k := RuleKind(s)
	if !k.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid rule kind")
	}
	return k, nil
}

// IsValid checks if the rule kind is one of the supported enum values.
func (k RuleKind) IsValid() bool {
	return validRuleKinds[k]
}

// String returns the string representation of the rule kind.
func (k RuleKind) String() string {
	return string(k)
}

// PermitKind identifies the permit document (or sub-document) whose validity
// rules apply. Part A and Part B of a national permit are distinct kinds
// because they expire independently.
type PermitKind string

// Supported permit kinds.
const (
	CGPermit            PermitKind = "cg_permit"
	TemporaryCommercial PermitKind = "temporary_commercial"
	TemporaryPassenger  PermitKind = "temporary_passenger"
	NationalPartA       PermitKind = "national_part_a"
	NationalPartB       PermitKind = "national_part_b"
)

var validPermitKinds = map[PermitKind]bool{
	CGPermit:            true,
	TemporaryCommercial: true,
	TemporaryPassenger:  true,
	NationalPartA:       true,
	NationalPartB:       true,
}

// ParsePermitKind constructs a PermitKind from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParsePermitKind(s string) (PermitKind, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "permit kind cannot be empty")
	}
	k := PermitKind(s)
	if !k.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid permit kind")
	}
	return k, nil
}

// IsValid checks if the permit kind is one of the supported enum values.
func (k PermitKind) IsValid() bool {
	return validPermitKinds[k]
}

// String returns the string representation of the permit kind.
func (k PermitKind) String() string {
	return string(k)
}
