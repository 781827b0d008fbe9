package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	dErrors "permitdesk/pkg/domain-errors"
)

// minYear is the oldest year accepted on permit documents. Anything at or
// below it is treated as an incomplete or mistyped entry.
const minYear = 1900

// Date is a calendar date, always serialized as DD-MM-YYYY.
// Invariant: a non-zero Date corresponds to a real calendar date (no Feb 30)
// with a year above 1900.
//
// Usage: construct via NewDate or ParseDate at trust boundaries; the zero
// value is "no date" and is reported by IsZero.
type Date struct {
	day, month, year int
}

// NewDate constructs a Date, enforcing the real-calendar invariant.
//
// Errors: CodeInvalidFormat when the combination is not a real calendar date
// or the year is not above 1900.
func NewDate(day, month, year int) (Date, error) {
	if year <= minYear {
		return Date{}, dErrors.New(dErrors.CodeInvalidFormat, fmt.Sprintf("year must be after %d", minYear))
	}
	if month < 1 || month > 12 {
		return Date{}, dErrors.New(dErrors.CodeInvalidFormat, "month must be between 1 and 12")
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, dErrors.New(dErrors.CodeInvalidFormat, fmt.Sprintf("day %d does not exist in month %d of %d", day, month, year))
	}
	return Date{day: day, month: month, year: year}, nil
}

// ParseDate parses a DD-MM-YYYY string (slash separators also accepted).
//
// Errors: CodeIncompleteInput when parts are missing or the year is not yet
// four digits (the user is still typing); CodeInvalidFormat when the value is
// complete but not a real calendar date.
func ParseDate(s string) (Date, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return Date{}, dErrors.New(dErrors.CodeIncompleteInput, "date requires day, month and year")
	}
	if len(parts[2]) != 4 {
		return Date{}, dErrors.New(dErrors.CodeIncompleteInput, "year is not yet four digits")
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, dErrors.New(dErrors.CodeInvalidFormat, "date contains non-numeric part")
		}
		nums[i] = n
	}
	return NewDate(nums[0], nums[1], nums[2])
}

// MustDate parses a DD-MM-YYYY string and panics on failure. Test helper.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime converts a time.Time to a Date, discarding the time of day.
func FromTime(t time.Time) Date {
	return Date{day: t.Day(), month: int(t.Month()), year: t.Year()}
}

// Day returns the day of month (1-31).
func (d Date) Day() int { return d.day }

// Month returns the month (1-12).
func (d Date) Month() int { return d.month }

// Year returns the four-digit year.
func (d Date) Year() int { return d.year }

// IsZero reports whether d is the "no date" zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String renders the canonical DD-MM-YYYY form.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.day, d.month, d.year)
}

// Time returns the date at midnight UTC. Day-granularity arithmetic relies
// on every Date mapping to the same instant within a calendar day.
func (d Date) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(o Date) bool { return d == o }

// Before reports whether d is an earlier calendar day than o.
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }

// After reports whether d is a later calendar day than o.
func (d Date) After(o Date) bool { return d.Time().After(o.Time()) }

// AddCalendarOffset adds whole years and months first, then the day
// adjustment, using real calendar arithmetic.
//
// When the year/month step lands on a month without an equivalent day
// (Jan 31 + 1 month), the result clamps to the last day of the target month
// rather than rolling into the following one. The upstream forms relied on
// native date rollover here (Jan 31 + 1 month = Mar 3), which over-grants
// validity days; the clamp matches the business reading of "N months".
func (d Date) AddCalendarOffset(years, months, daysAdjustment int) Date {
	total := (d.year+years)*12 + (d.month - 1) + months
	y := total / 12
	m := total%12 + 1
	day := d.day
	if max := daysInMonth(y, m); day > max {
		day = max
	}
	t := time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
	if daysAdjustment != 0 {
		t = t.AddDate(0, 0, daysAdjustment)
	}
	return FromTime(t)
}

// DaysBetween returns the whole days from one date to another, negative when
// `to` is earlier. Computed at day granularity; time of day never enters.
func DaysBetween(from, to Date) int {
	return int(to.Time().Sub(from.Time()).Hours() / 24)
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
