// Package cipher implements the fixed Caesar substitution used to obfuscate
// word lists on disk. Only ASCII letters are rotated; everything else passes
// through untouched.
package cipher

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultShift is the rotation applied to stored word files.
const DefaultShift = 3

// alphabetSize is the number of letters in each ASCII case.
const alphabetSize = 26

// ErrInvalidShift is returned by ValidateShift for shifts outside [0, 26).
var ErrInvalidShift = errors.New("cipher: shift out of range")

// ValidateShift reports whether shift is a usable rotation.
func ValidateShift(shift int) error {
	if shift < 0 || shift >= alphabetSize {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidShift, shift, alphabetSize-1)
	}
	return nil
}

// Decode reverses the forward rotation applied by Encode.
// Each ASCII letter moves back by shift positions within its own case.
func Decode(line string, shift int) string {
	return rotate(line, -shift)
}

// Encode rotates each ASCII letter forward by shift positions.
// Decode(Encode(s, n), n) == s for every string and shift.
func Encode(line string, shift int) string {
	return rotate(line, shift)
}

// rotate moves ASCII letters by delta within their case, wrapping modulo 26.
func rotate(s string, delta int) string {
	delta %= alphabetSize
	if delta < 0 {
		delta += alphabetSize
	}
	if delta == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune('a' + (r-'a'+rune(delta))%alphabetSize)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune('A' + (r-'A'+rune(delta))%alphabetSize)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
