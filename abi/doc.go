// Package abi models Cairo interface descriptions: the recursive value type
// algebra, textual type signature parsing, selector derivation, and the
// struct and event registries built from a declarative ABI.
//
// # Type Descriptors
//
// The closed set of value shapes:
//
//	Kind         Signature     Wire shape
//	────────────────────────────────────────────────────────
//	KindFelt     felt          one word
//	KindTuple    (a, b, ...)   element words concatenated
//	KindStruct   Name          member words in field order
//	KindPointer  T*            length word, then element words
//
// Arrays (pointers) may only appear as the outermost shape of a declared
// parameter or return field. Array members inside tuples and structs, and
// arrays of arrays, are rejected when the schema is loaded.
//
// # Registries
//
// NewStructRegistry and NewEventRegistry resolve every declaration eagerly at
// schema load: member and argument signatures are parsed, nested-array rules
// enforced, and struct references checked. The registries are immutable after
// construction and safe for concurrent readers. A StructDef or EventDef also
// acts as the constructible value type for decoded values:
//
//	def, _ := structs.Get("Point")
//	v, _ := def.New(big.NewInt(1), big.NewInt(2))
//	x, _ := v.Get("x")
//
// # Selectors
//
// Selector derives the numeric dispatch key for a function or event name:
// the Keccak-256 digest of the name, truncated to 250 bits so it fits in a
// field element.
package abi
