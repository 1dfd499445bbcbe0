package sin

import "strings"

type Kind uint8

const (
	kindUnknown Kind = iota
	KindSIN
	KindBN
)

func (k Kind) valid() bool {
	return k == KindSIN || k == KindBN
}

func (k Kind) String() string {
	switch k {
	case KindSIN:
		return "SIN"
	case KindBN:
		return "BN"
	default:
		return "unknown"
	}
}

// ParseKind accepts "sin" or "bn" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sin":
		return KindSIN, nil
	case "bn":
		return KindBN, nil
	default:
		return kindUnknown, ErrUnknownKind
	}
}

// Number is a checksum-verified number of a known kind. Its fields are
// unexported, so a non-zero Number can only come from Validate,
// ParseAndValidate or Generate.
type Number struct {
	digits Digits
	kind   Kind
}

func (n Number) Digits() Digits {
	return n.digits
}

func (n Number) Kind() Kind {
	return n.kind
}

// IsZero reports whether n is the zero value returned next to an error.
func (n Number) IsZero() bool {
	return n.kind == kindUnknown
}

func (n Number) Class() Class {
	return Classify(n.digits, n.kind)
}

func (n Number) String() string {
	return Format(n, Grouped)
}
