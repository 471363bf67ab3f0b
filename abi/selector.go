package abi

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// selectorMask keeps the low 250 bits of the digest so the selector fits in
// a field element.
var selectorMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// Selector derives the numeric dispatch key for a declared function or event
// name: the Keccak-256 digest of the name truncated to 250 bits.
func Selector(name string) *big.Int {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	sel := new(big.Int).SetBytes(h.Sum(nil))
	return sel.And(sel, selectorMask)
}
