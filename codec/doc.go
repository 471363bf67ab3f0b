// Package codec converts between structured values and the flat felt word
// encoding used on the wire.
//
// # Wire Shape
//
// Encoding is type-directed and recursive:
//
//	Type        Encoding
//	──────────────────────────────────────────────
//	felt        one word
//	tuple       element encodings concatenated
//	struct      member encodings in field order
//	T*          length word, then element encodings
//
// There are no separators or padding; a struct's name never appears in the
// encoding. An empty array encodes as the single word 0.
//
// # Encoding Flow
//
//  1. CheckShape(structs, value, type) - full structural validation with
//     field paths, before any words are produced
//  2. Flatten(structs, value, type) → []*big.Int
//
// # Decoding Flow
//
// Unflatten(structs, words, types) decodes one value per type from a single
// shared cursor. Running out of words mid-decode yields an insufficient_data
// error; words left over after the last type yields trailing_data. Struct
// references decode into *abi.StructValue via the registry's definitions.
//
// # Numeric Semantics
//
// Words are arbitrary-precision non-negative integers below the field prime.
// The codec never truncates, sign-extends or otherwise reinterprets them, and
// both directions copy every word, so inputs are never aliased or mutated.
package codec
