// Package validity maps a permit's start date and kind to its mandated end
// date and classifies how urgently it needs renewal. Pure domain logic: no
// I/O, no side effects, and no errors as control flow — incomplete or
// malformed inputs yield a false ok or a false verdict so the forms can keep
// the previous derived value while the user types.
package validity

import (
	"permitdesk/pkg/domain"
)

// Severity is the urgency classification of a permit period. Used purely for
// UI signaling and renewal-button visibility; it never touches stored state.
type Severity string

const (
	SeverityExpired  Severity = "expired"
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityNormal   Severity = "normal"
)

// Thresholds bound the Critical and Warning bands in days remaining.
type Thresholds struct {
	CriticalDays int
	WarningDays  int
}

// offset expresses a validity rule as calendar arithmetic.
type offset struct {
	years, months, days int
}

// ruleOffsets is the single source of truth for how each rule derives the
// end date from the start date.
var ruleOffsets = map[domain.RuleKind]offset{
	domain.FiveYearsLessOneDay: {years: 5, days: -1},
	domain.OneYearLessOneDay:   {years: 1, days: -1},
	domain.ThreeMonths:         {months: 3},
	domain.FourMonths:          {months: 4},
}

// kindRule maps each permit kind to its governing validity rule.
var kindRule = map[domain.PermitKind]domain.RuleKind{
	domain.CGPermit:            domain.FiveYearsLessOneDay,
	domain.TemporaryCommercial: domain.ThreeMonths,
	domain.TemporaryPassenger:  domain.FourMonths,
	domain.NationalPartA:       domain.FiveYearsLessOneDay,
	domain.NationalPartB:       domain.OneYearLessOneDay,
}

// defaultThresholds holds the renewal windows per permit kind. The critical
// windows are mandated (7/90/30 days); warning windows are display-only and
// default to twice the critical window. CG permits have no entry because
// their status is set manually.
var defaultThresholds = map[domain.PermitKind]Thresholds{
	domain.TemporaryCommercial: {CriticalDays: 7, WarningDays: 14},
	domain.TemporaryPassenger:  {CriticalDays: 7, WarningDays: 14},
	domain.NationalPartA:       {CriticalDays: 90, WarningDays: 180},
	domain.NationalPartB:       {CriticalDays: 30, WarningDays: 60},
}

// Engine computes validity periods and renewal classifications. The zero
// value uses the mandated thresholds; construct via New to override the
// display-only warning windows.
type Engine struct {
	thresholds map[domain.PermitKind]Thresholds
}

// New returns an Engine with the default threshold table, with any supplied
// overrides applied on top.
func New(overrides map[domain.PermitKind]Thresholds) *Engine {
	t := make(map[domain.PermitKind]Thresholds, len(defaultThresholds))
	for k, v := range defaultThresholds {
		t[k] = v
	}
	for k, v := range overrides {
		t[k] = v
	}
	return &Engine{thresholds: t}
}

// DefaultThresholdsFor returns the mandated threshold band for a permit
// kind. ok is false for kinds whose status is managed manually.
func DefaultThresholdsFor(kind domain.PermitKind) (Thresholds, bool) {
	t, ok := defaultThresholds[kind]
	return t, ok
}

// RuleFor returns the validity rule governing a permit kind.
func RuleFor(kind domain.PermitKind) (domain.RuleKind, bool) {
	r, ok := kindRule[kind]
	return r, ok
}

// ComputeValidTo derives the end date from a start date string and rule.
// ok is false when validFrom is not yet a complete, real calendar date —
// callers must leave the previous end date untouched in that case, not
// clear it.
func ComputeValidTo(validFrom string, rule domain.RuleKind) (domain.Date, bool) {
	from, err := domain.ParseDate(validFrom)
	if err != nil {
		return domain.Date{}, false
	}
	return ComputeValidToDate(from, rule)
}

// ComputeValidToDate is ComputeValidTo for an already-parsed start date.
func ComputeValidToDate(from domain.Date, rule domain.RuleKind) (domain.Date, bool) {
	off, ok := ruleOffsets[rule]
	if !ok || from.IsZero() {
		return domain.Date{}, false
	}
	return from.AddCalendarOffset(off.years, off.months, off.days), true
}

// DaysRemaining returns whole days from today until the end date, at day
// granularity so the verdict cannot flap within one calendar day. Negative
// means already expired.
func DaysRemaining(validTo, today domain.Date) int {
	return domain.DaysBetween(today, validTo)
}

// Classify buckets a days-remaining figure into a severity band.
func Classify(daysRemaining int, t Thresholds) Severity {
	switch {
	case daysRemaining < 0:
		return SeverityExpired
	case daysRemaining <= t.CriticalDays:
		return SeverityCritical
	case daysRemaining <= t.WarningDays:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// ThresholdsFor returns the threshold band for a permit kind. ok is false
// for kinds whose status is managed manually (CG permits).
func (e *Engine) ThresholdsFor(kind domain.PermitKind) (Thresholds, bool) {
	table := e.thresholds
	if table == nil {
		table = defaultThresholds
	}
	t, ok := table[kind]
	return t, ok
}

// ClassifyPermit classifies a permit's end date against the kind's band.
// Unparseable dates and manually-managed kinds classify as Normal.
func (e *Engine) ClassifyPermit(validTo string, kind domain.PermitKind, today domain.Date) Severity {
	t, ok := e.ThresholdsFor(kind)
	if !ok {
		return SeverityNormal
	}
	to, err := domain.ParseDate(validTo)
	if err != nil {
		return SeverityNormal
	}
	return Classify(DaysRemaining(to, today), t)
}

// IsRenewalEligible reports whether the renewal action should be offered:
// the permit is expired or inside its critical window. Always false for CG
// permits (status is set manually) and for dates that do not parse.
func (e *Engine) IsRenewalEligible(validTo string, kind domain.PermitKind, today domain.Date) bool {
	t, ok := e.ThresholdsFor(kind)
	if !ok {
		return false
	}
	to, err := domain.ParseDate(validTo)
	if err != nil {
		return false
	}
	switch Classify(DaysRemaining(to, today), t) {
	case SeverityExpired, SeverityCritical:
		return true
	default:
		return false
	}
}
