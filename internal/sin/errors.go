package sin

import (
	"errors"
	"fmt"
)

var (
	ErrTooShort         = errors.New("too few digits: a number has 9")
	ErrTooLong          = errors.New("too many digits: a number has 9")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidChecksum  = errors.New("invalid checksum")
	ErrDigitOutOfRange  = errors.New("digit out of range 0-9")
	ErrUnknownKind      = errors.New("unknown number kind")
)

// InvalidCharacterError reports a rune that is neither a digit nor a separator.
// Position is the 0-based rune index in the input.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidCharacter, e.Char, e.Position)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

type ChecksumError struct {
	Expected uint8
	Actual   uint8
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%s: expected check digit %d, got %d", ErrInvalidChecksum, e.Expected, e.Actual)
}

func (e *ChecksumError) Unwrap() error {
	return ErrInvalidChecksum
}

// IsParseError reports whether err came out of Parse.
func IsParseError(err error) bool {
	return errors.Is(err, ErrTooShort) ||
		errors.Is(err, ErrTooLong) ||
		errors.Is(err, ErrInvalidCharacter)
}

func IsChecksumError(err error) bool {
	return errors.Is(err, ErrInvalidChecksum)
}
