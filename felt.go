package cairolang

import (
	"math/big"

	"github.com/dewi-tim/cairo-lang/errors"
)

// Prime is the default field prime: 2^251 + 17*2^192 + 1. Every word of the
// wire encoding is a non-negative integer below this value.
var Prime, _ = new(big.Int).SetString(
	"800000000000011000000000000000000000000000000000000000000000001", 16)

// ValidFelt reports whether v is in the field range [0, Prime).
func ValidFelt(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(Prime) < 0
}

// CastToFelts validates that every value is a field element and returns a
// defensive copy of the sequence.
func CastToFelts(values []*big.Int) ([]*big.Int, error) {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		if !ValidFelt(v) {
			return nil, errors.New(errors.PhaseEncode, errors.KindOutOfRange).
				Detail("value %v at index %d is not a field element", v, i).
				Build()
		}
		out[i] = new(big.Int).Set(v)
	}
	return out, nil
}

// Felt builds a field element from an int64. Negative values wrap modulo
// Prime, matching the usual shorthand for values like -1.
func Felt(v int64) *big.Int {
	f := big.NewInt(v)
	if v < 0 {
		f.Mod(f, Prime)
	}
	return f
}

// FeltFromString parses a decimal or 0x-prefixed hex field element.
func FeltFromString(s string) (*big.Int, error) {
	base := 10
	digits := s
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		base = 16
		digits = s[2:]
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Detail("cannot parse %q as a field element", s).
			Build()
	}
	if !ValidFelt(v) {
		return nil, errors.New(errors.PhaseParse, errors.KindOutOfRange).
			Detail("%q is outside the field range", s).
			Build()
	}
	return v, nil
}
