// Package dateinput turns keystroke-level date entry into canonical
// DD-MM-YYYY strings. Everything here is pure and total: malformed fragments
// degrade to digits-plus-separators, never to an error, so users can type
// digit by digit without transient error flashes.
package dateinput

import (
	"strconv"
	"strings"
)

// twoDigitYearPivot splits two-digit years: 00-50 expand into 2000-2050,
// 51-99 into 1951-1999. Fixed by convention; changing it would reinterpret
// the dates on already-issued permits.
const twoDigitYearPivot = 50

// maxDateDigits caps accumulated input at DDMMYYYY.
const maxDateDigits = 8

// FormatOnInput converts the field's current raw text into a progressively
// formatted date string. prior is the field text before this edit;
// lastActionWasDelete must be true when the edit was a Backspace/Delete so a
// separator the user just removed is not re-inserted under the cursor.
//
// Guarantee: as the user types forward, the output is prefix-consistent and
// monotonically extendable; it never starts with a separator and never holds
// two consecutive separators.
func FormatOnInput(raw, prior string, lastActionWasDelete bool) string {
	digits := stripNonDigits(raw)
	if len(digits) > maxDateDigits {
		digits = digits[:maxDateDigits]
	}

	// A shrinking digit count is a deletion even when the caller could not
	// tell us (cut, select-and-delete).
	deleting := lastActionWasDelete || len(digits) < len(stripNonDigits(prior))

	switch n := len(digits); {
	case n < 2:
		return digits
	case n == 2:
		if deleting {
			return digits
		}
		return digits + "-"
	case n == 3:
		return digits[:2] + "-" + digits[2:]
	case n == 4:
		if deleting {
			return digits[:2] + "-" + digits[2:]
		}
		return digits[:2] + "-" + digits[2:] + "-"
	case n == 5:
		return digits[:2] + "-" + digits[2:4] + "-" + digits[4:]
	case n == 6:
		if deleting {
			return digits[:2] + "-" + digits[2:4] + "-" + digits[4:]
		}
		// Two full digit groups plus a two-digit year: expand the year
		// inline so typing 240124 lands on 24-01-2024 without a pause.
		return digits[:2] + "-" + digits[2:4] + "-" + expandTwoDigitYear(digits[4:])
	default:
		// Digits 7-8 extend the year literally, overriding the two-digit
		// expansion when the user keeps typing a full four-digit year.
		return digits[:2] + "-" + digits[2:4] + "-" + digits[4:]
	}
}

// NormalizeOnBlur normalizes a completed date string on focus loss: when the
// value splits into exactly three non-empty parts and the year part has two
// digits, the year is expanded and the parts re-joined as DD-MM-YYYY.
// Anything else is returned unchanged, which makes the function idempotent.
func NormalizeOnBlur(value string) string {
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return value
	}
	year := parts[2]
	switch len(year) {
	case 2:
		expanded := expandTwoDigitYear(year)
		if expanded == year {
			return value
		}
		return parts[0] + "-" + parts[1] + "-" + expanded
	case 4:
		return parts[0] + "-" + parts[1] + "-" + year
	default:
		return value
	}
}

// expandTwoDigitYear applies the pivot rule to a two-digit year string.
// Non-numeric input is returned unchanged.
func expandTwoDigitYear(yy string) string {
	n, err := strconv.Atoi(yy)
	if err != nil {
		return yy
	}
	if n <= twoDigitYearPivot {
		n += 2000
	} else {
		n += 1900
	}
	return strconv.Itoa(n)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
