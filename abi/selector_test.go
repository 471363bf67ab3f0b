package abi

import (
	"math/big"
	"testing"
)

func TestSelector_KnownValue(t *testing.T) {
	// The canonical selector for "transfer".
	want, _ := new(big.Int).SetString(
		"83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e", 16)
	if got := Selector("transfer"); got.Cmp(want) != 0 {
		t.Fatalf("Selector(transfer) = %#x, want %#x", got, want)
	}
}

func TestSelector_Deterministic(t *testing.T) {
	a := Selector("balance_increased")
	b := Selector("balance_increased")
	if a.Cmp(b) != 0 {
		t.Fatal("selector derivation is not deterministic")
	}
}

func TestSelector_FitsInFieldElement(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 250)
	for _, name := range []string{"transfer", "approve", "a", "", "increase_balance"} {
		if sel := Selector(name); sel.Cmp(bound) >= 0 {
			t.Errorf("Selector(%q) = %#x exceeds 250 bits", name, sel)
		}
	}
}

func TestSelector_DistinctNames(t *testing.T) {
	if Selector("transfer").Cmp(Selector("approve")) == 0 {
		t.Fatal("distinct names produced the same selector")
	}
}
