// Package sin parses, validates, classifies and formats Canadian Social
// Insurance Numbers and Business Numbers.
//
// Both kinds are nine decimal digits sharing one namespace and one Luhn
// check digit, so the kind is always supplied by the caller. Every function
// in this package is pure and safe for concurrent use.
package sin

import "strings"

const (
	Length       = 9
	PrefixLength = Length - 1
)

// Digits is a sequence of exactly nine decimal digits. It says nothing about
// the check digit; see Validate.
type Digits struct {
	d [Length]uint8
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '-'
}

// Parse reads nine digits from s, skipping spaces and hyphens.
// It stops at the tenth digit with ErrTooLong rather than truncating.
func Parse(s string) (Digits, error) {
	var out Digits
	n := 0
	pos := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			if n == Length {
				return Digits{}, ErrTooLong
			}
			out.d[n] = uint8(r - '0')
			n++
		case isSeparator(r):
		default:
			return Digits{}, &InvalidCharacterError{Char: r, Position: pos}
		}
		pos++
	}
	if n < Length {
		return Digits{}, ErrTooShort
	}
	return out, nil
}

// DigitsFromArray builds Digits from raw values, rejecting anything above 9.
func DigitsFromArray(a [Length]uint8) (Digits, error) {
	for _, v := range a {
		if v > 9 {
			return Digits{}, ErrDigitOutOfRange
		}
	}
	return Digits{d: a}, nil
}

// DigitsFromPrefix appends the correct check digit to an 8-digit prefix.
func DigitsFromPrefix(prefix [PrefixLength]uint8) (Digits, error) {
	check, err := CheckDigitFor(prefix)
	if err != nil {
		return Digits{}, err
	}
	var out Digits
	copy(out.d[:], prefix[:])
	out.d[PrefixLength] = check
	return out, nil
}

func (d Digits) Array() [Length]uint8 {
	return d.d
}

func (d Digits) Prefix() [PrefixLength]uint8 {
	var p [PrefixLength]uint8
	copy(p[:], d.d[:PrefixLength])
	return p
}

func (d Digits) Lead() uint8 {
	return d.d[0]
}

func (d Digits) Check() uint8 {
	return d.d[PrefixLength]
}

// ChecksumValid reports whether the last digit is the check digit of the rest.
func (d Digits) ChecksumValid() bool {
	return checkDigit(d.Prefix()) == d.Check()
}

func (d Digits) String() string {
	var b strings.Builder
	b.Grow(Length)
	for _, v := range d.d {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// Masked hides everything but the last group: ***-***-286.
func (d Digits) Masked() string {
	s := d.String()
	return "***-***-" + s[6:]
}
