package vehicle

import "strings"

// format commitment while typing. Position 5 decides the layout: a letter
// there commits to the 10-character shape (two-letter series), a digit to
// the 9-character shape (one-letter series).
type layout int

const (
	layoutOpen layout = iota
	layoutNine
	layoutTen
)

// EnforceFormatWhileTyping filters a plate field's new value character by
// character against position-dependent rules. Characters violating the
// expected class at their position are dropped, not stored, and the result
// is capped at the committed layout's length.
//
// Guarantee: the returned string is always a valid prefix of one of the two
// accepted final formats; it may be incomplete but never malformed at any
// typed position.
func EnforceFormatWhileTyping(prior, next string) string {
	if next == prior {
		return prior
	}

	var b strings.Builder
	b.Grow(10)
	l := layoutOpen

	for _, r := range strings.ToUpper(next) {
		if r > 'Z' { // lowercase already folded; anything above Z is noise
			continue
		}
		c := byte(r)
		pos := b.Len()
		if pos >= maxLen(l) {
			break
		}

		switch {
		case pos <= 1 || pos == 4: // state code, first series letter
			if isLetter(c) {
				b.WriteByte(c)
			}
		case pos == 2 || pos == 3: // district code
			if isDigit(c) {
				b.WriteByte(c)
			}
		case pos == 5:
			switch {
			case isLetter(c):
				l = layoutTen
				b.WriteByte(c)
			case isDigit(c):
				l = layoutNine
				b.WriteByte(c)
			}
		default: // serial digits in either layout
			if isDigit(c) {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

func maxLen(l layout) int {
	if l == layoutNine {
		return 9
	}
	return 10
}
