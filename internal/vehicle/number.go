// Package vehicle validates and decomposes Indian vehicle registration
// numbers. Two total shapes are accepted: LL DD LL DDDD (10 characters) and
// LL DD L DDDD (9 characters) with no embedded whitespace. All functions are
// pure and cheap enough for per-keystroke invocation.
package vehicle

import "strings"

// Rejection messages. Treated as classification keys by callers and tests.
const (
	msgEmbeddedSpace  = "vehicle number must not contain spaces"
	msgWrongLength    = "vehicle number must be 9 or 10 characters"
	msgStateCodeClass = "state code must be two letters"
	msgDistrictClass  = "district code must be two digits"
	msgSeriesClass    = "series must be letters"
	msgSerialClass    = "serial must be four digits"
)

// Result is the outcome of Validate: a verdict plus a human-readable reason
// for rejection. Never an error; validation failures are expected input.
type Result struct {
	Valid   bool
	Message string
}

// Number is an immutable decomposition of a valid registration number.
// Created by Parse; a new value replaces the old one, never mutated.
type Number struct {
	stateCode    string
	districtCode string
	series       string
	serial       string
	raw          string
}

// StateCode returns the two-letter state/UT code.
func (n Number) StateCode() string { return n.stateCode }

// DistrictCode returns the two-digit district code.
func (n Number) DistrictCode() string { return n.districtCode }

// Series returns the one- or two-letter series segment.
func (n Number) Series() string { return n.series }

// Serial returns the four-digit serial.
func (n Number) Serial() string { return n.serial }

// Raw returns the full uppercase plate string with no separators.
func (n Number) Raw() string { return n.raw }

// String returns the raw plate string.
func (n Number) String() string { return n.raw }

// StateName returns the display name for the state code. Unrecognized codes
// fall back to the raw code: a cosmetic miss, never a validation failure.
func (n Number) StateName() string {
	if name, ok := stateNames[n.stateCode]; ok {
		return name
	}
	return n.stateCode
}

// StateRecognized reports whether the state code has a display-name entry.
func (n Number) StateRecognized() bool {
	_, ok := stateNames[n.stateCode]
	return ok
}

// Validate checks a complete plate string against the two accepted shapes.
// Input is case-insensitive; embedded whitespace is rejected outright.
func Validate(value string) Result {
	if strings.ContainsAny(value, " \t") {
		return Result{Message: msgEmbeddedSpace}
	}
	v := strings.ToUpper(value)
	if len(v) != 9 && len(v) != 10 {
		return Result{Message: msgWrongLength}
	}
	if !isLetter(v[0]) || !isLetter(v[1]) {
		return Result{Message: msgStateCodeClass}
	}
	if !isDigit(v[2]) || !isDigit(v[3]) {
		return Result{Message: msgDistrictClass}
	}
	seriesEnd := 5
	if len(v) == 10 {
		seriesEnd = 6
	}
	for i := 4; i < seriesEnd; i++ {
		if !isLetter(v[i]) {
			return Result{Message: msgSeriesClass}
		}
	}
	for i := seriesEnd; i < len(v); i++ {
		if !isDigit(v[i]) {
			return Result{Message: msgSerialClass}
		}
	}
	return Result{Valid: true}
}

// Parse decomposes a plate string into its structured parts.
// Returns nil (no error) on anything failing Validate.
func Parse(value string) *Number {
	if res := Validate(value); !res.Valid {
		return nil
	}
	v := strings.ToUpper(value)
	seriesEnd := 5
	if len(v) == 10 {
		seriesEnd = 6
	}
	return &Number{
		stateCode:    v[0:2],
		districtCode: v[2:4],
		series:       v[4:seriesEnd],
		serial:       v[seriesEnd:],
		raw:          v,
	}
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
