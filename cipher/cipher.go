// Package cipher implements the keyed letter-shift transform used by the
// service. It is a reversible obfuscation, not encryption in any secure sense.
package cipher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const alphabetSize = 26

// ErrInvalidKey is returned when a key is not a base-10 signed integer.
var ErrInvalidKey = errors.New("key must be a valid integer")

// Transform shifts every ASCII letter by shift positions within its own case.
// All other bytes, including multi-byte UTF-8 sequences, are copied unchanged,
// so the output always has the same length as the input.
func Transform(shift int, text string) string {
	n := normalize(shift)
	if n == 0 {
		return text
	}

	out := []byte(text)
	for i, c := range out {
		switch {
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + byte((int(c-'A')+n)%alphabetSize)
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + byte((int(c-'a')+n)%alphabetSize)
		}
	}
	return string(out)
}

// InverseTransform undoes Transform for the same shift.
func InverseTransform(shift int, text string) string {
	// Reduce before negating so the minimum int does not overflow.
	return Transform(-(shift % alphabetSize), text)
}

// ParseShift parses keyText as a base-10 signed integer. Surrounding
// whitespace is ignored. Values outside the int range are accepted and
// reduced modulo 26, which yields an equivalent shift.
func ParseShift(keyText string) (int, error) {
	s := strings.TrimSpace(keyText)
	if s == "" {
		return 0, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err == nil {
		return int(v), nil
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return reduceDigits(s)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKey, keyText)
}

// Encrypt parses keyText and applies Transform to text.
func Encrypt(keyText, text string) (string, error) {
	shift, err := ParseShift(keyText)
	if err != nil {
		return "", err
	}
	return Transform(shift, text), nil
}

// Decrypt parses keyText and applies InverseTransform to text.
func Decrypt(keyText, text string) (string, error) {
	shift, err := ParseShift(keyText)
	if err != nil {
		return "", err
	}
	return InverseTransform(shift, text), nil
}

// normalize maps any shift into [0, 26).
func normalize(shift int) int {
	n := shift % alphabetSize
	if n < 0 {
		n += alphabetSize
	}
	return n
}

// reduceDigits reduces a decimal integer of any length modulo 26 in a single
// pass over its digits.
func reduceDigits(s string) (int, error) {
	neg := false
	digits := s
	switch {
	case strings.HasPrefix(digits, "-"):
		neg = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	r := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
		}
		r = (r*10 + int(c-'0')) % alphabetSize
	}
	if neg && r != 0 {
		r = alphabetSize - r
	}
	return r, nil
}
