package sin

// CheckDigitFor returns the Luhn check digit for an 8-digit prefix.
// Weights run 1,2,1,2,... from the most significant digit, so the digit next
// to the check digit is doubled; doubled values above 9 lose 9.
func CheckDigitFor(prefix [PrefixLength]uint8) (uint8, error) {
	for _, v := range prefix {
		if v > 9 {
			return 0, ErrDigitOutOfRange
		}
	}
	return checkDigit(prefix), nil
}

func checkDigit(prefix [PrefixLength]uint8) uint8 {
	total := 0
	for i, v := range prefix {
		x := int(v)
		if i%2 == 1 {
			x *= 2
			if x > 9 {
				x -= 9
			}
		}
		total += x
	}
	return uint8((10 - total%10) % 10)
}

// Validate checks the check digit and tags the result with k.
// A zero-valued Number is returned alongside any error.
func Validate(d Digits, k Kind) (Number, error) {
	if !k.valid() {
		return Number{}, ErrUnknownKind
	}
	expected := checkDigit(d.Prefix())
	if actual := d.Check(); actual != expected {
		return Number{}, &ChecksumError{Expected: expected, Actual: actual}
	}
	return Number{digits: d, kind: k}, nil
}

// ParseAndValidate runs Parse then Validate. The error is either a parse
// error (see IsParseError) or a *ChecksumError.
func ParseAndValidate(s string, k Kind) (Number, error) {
	d, err := Parse(s)
	if err != nil {
		return Number{}, err
	}
	return Validate(d, k)
}
