package cairolang

import (
	"math/big"
	"testing"

	"github.com/dewi-tim/cairo-lang/errors"
)

func TestValidFelt(t *testing.T) {
	tests := []struct {
		name string
		v    *big.Int
		want bool
	}{
		{"nil", nil, false},
		{"zero", big.NewInt(0), true},
		{"small", big.NewInt(42), true},
		{"negative", big.NewInt(-1), false},
		{"prime minus one", new(big.Int).Sub(Prime, big.NewInt(1)), true},
		{"prime", new(big.Int).Set(Prime), false},
		{"above prime", new(big.Int).Add(Prime, big.NewInt(1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidFelt(tt.v); got != tt.want {
				t.Fatalf("ValidFelt(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestCastToFelts(t *testing.T) {
	in := []*big.Int{big.NewInt(1), big.NewInt(2)}
	out, err := CastToFelts(in)
	if err != nil {
		t.Fatalf("CastToFelts failed: %v", err)
	}
	out[0].SetInt64(99)
	if in[0].Int64() != 1 {
		t.Fatal("CastToFelts must return copies")
	}

	_, err = CastToFelts([]*big.Int{big.NewInt(1), big.NewInt(-5)})
	if !errors.IsKind(err, errors.KindOutOfRange) {
		t.Fatalf("expected out_of_range, got %v", err)
	}
	_, err = CastToFelts([]*big.Int{new(big.Int).Set(Prime)})
	if !errors.IsKind(err, errors.KindOutOfRange) {
		t.Fatalf("expected out_of_range, got %v", err)
	}
}

func TestFelt(t *testing.T) {
	if Felt(7).Int64() != 7 {
		t.Fatal("positive values pass through")
	}
	// -1 wraps to Prime-1.
	want := new(big.Int).Sub(Prime, big.NewInt(1))
	if Felt(-1).Cmp(want) != 0 {
		t.Fatalf("Felt(-1) = %v, want %v", Felt(-1), want)
	}
	if !ValidFelt(Felt(-123456)) {
		t.Fatal("wrapped negatives must be valid felts")
	}
}

func TestFeltFromString(t *testing.T) {
	v, err := FeltFromString("123")
	if err != nil || v.Int64() != 123 {
		t.Fatalf("decimal parse = %v, %v", v, err)
	}
	v, err = FeltFromString("0xff")
	if err != nil || v.Int64() != 255 {
		t.Fatalf("hex parse = %v, %v", v, err)
	}
	if _, err := FeltFromString("xyz"); err == nil {
		t.Fatal("garbage should fail")
	}
	if _, err := FeltFromString("-7"); err == nil {
		t.Fatal("negative strings should fail")
	}
	prime := "0x800000000000011000000000000000000000000000000000000000000000001"
	if _, err := FeltFromString(prime); !errors.IsKind(err, errors.KindOutOfRange) {
		t.Fatalf("expected out_of_range for the prime itself, got %v", err)
	}
}
