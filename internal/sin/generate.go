package sin

import "math/rand/v2"

// Generate returns a random checksum-valid number whose first digit is lead.
// It is meant for test data; the output is predictable from rng.
func Generate(rng *rand.Rand, k Kind, lead uint8) (Number, error) {
	if lead > 9 {
		return Number{}, ErrDigitOutOfRange
	}
	var prefix [PrefixLength]uint8
	prefix[0] = lead
	for i := 1; i < PrefixLength; i++ {
		prefix[i] = uint8(rng.IntN(10))
	}
	d, err := DigitsFromPrefix(prefix)
	if err != nil {
		return Number{}, err
	}
	return Validate(d, k)
}
