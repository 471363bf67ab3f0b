package abi

import (
	"math/big"
	"testing"

	"github.com/dewi-tim/cairo-lang/errors"
)

func TestStructRegistry_Lookup(t *testing.T) {
	r := testStructRegistry(t)

	if !r.Has("Point") {
		t.Fatal("Has(Point) = false")
	}
	if r.Has("Missing") {
		t.Fatal("Has(Missing) = true")
	}

	def, err := r.Get("Point")
	if err != nil {
		t.Fatalf("Get(Point) failed: %v", err)
	}
	if def.Name != "Point" || len(def.Fields) != 2 {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if def.Fields[0].Name != "x" || def.Fields[1].Name != "y" {
		t.Fatalf("field order not preserved: %v", FieldNames(def.Fields))
	}

	_, err = r.Get("Missing")
	if !errors.IsKind(err, errors.KindUnknownStruct) {
		t.Fatalf("Get(Missing) = %v, want unknown_struct", err)
	}
}

func TestStructRegistry_SameDefinitionIdentity(t *testing.T) {
	r := testStructRegistry(t)
	a, _ := r.Get("Point")
	b, _ := r.Get("Point")
	if a != b {
		t.Fatal("repeated lookups should return the same definition")
	}
}

func TestStructRegistry_MemberOffsetOrder(t *testing.T) {
	description := ABI{
		{
			Type: EntryStruct,
			Name: "Reversed",
			Members: []Member{
				{Name: "second", Type: "felt", Offset: 1},
				{Name: "first", Type: "felt", Offset: 0},
			},
		},
	}
	r, err := NewStructRegistry(description)
	if err != nil {
		t.Fatalf("NewStructRegistry failed: %v", err)
	}
	def, _ := r.Get("Reversed")
	if def.Fields[0].Name != "first" || def.Fields[1].Name != "second" {
		t.Fatalf("members not ordered by offset: %v", FieldNames(def.Fields))
	}
}

func TestStructRegistry_RejectsArrayMember(t *testing.T) {
	description := ABI{
		{
			Type: EntryStruct,
			Name: "Bad",
			Members: []Member{
				{Name: "items", Type: "felt*", Offset: 0},
			},
		},
	}
	_, err := NewStructRegistry(description)
	if !errors.IsKind(err, errors.KindNestedArray) {
		t.Fatalf("expected nested_array error, got %v", err)
	}
}

func TestStructRegistry_RejectsDanglingReference(t *testing.T) {
	description := ABI{
		{
			Type: EntryStruct,
			Name: "Holder",
			Members: []Member{
				{Name: "inner", Type: "Missing", Offset: 0},
			},
		},
	}
	_, err := NewStructRegistry(description)
	if !errors.IsKind(err, errors.KindUnknownStruct) {
		t.Fatalf("expected unknown_struct error, got %v", err)
	}
}

func TestStructRegistry_RejectsDuplicate(t *testing.T) {
	description := ABI{
		{Type: EntryStruct, Name: "P", Members: []Member{{Name: "x", Type: "felt"}}},
		{Type: EntryStruct, Name: "P", Members: []Member{{Name: "y", Type: "felt"}}},
	}
	if _, err := NewStructRegistry(description); err == nil {
		t.Fatal("duplicate struct declaration should fail")
	}
}

func TestStructDef_New(t *testing.T) {
	r := testStructRegistry(t)
	def, _ := r.Get("Point")

	v, err := def.New(big.NewInt(3), big.NewInt(4))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if v.Len() != 2 {
		t.Fatalf("Len = %d, want 2", v.Len())
	}
	x, ok := v.Get("x")
	if !ok || x.(*big.Int).Int64() != 3 {
		t.Fatalf("Get(x) = %v, %v", x, ok)
	}
	if _, ok := v.Get("z"); ok {
		t.Fatal("Get(z) should report absence")
	}
	if v.At(1).(*big.Int).Int64() != 4 {
		t.Fatalf("At(1) = %v, want 4", v.At(1))
	}

	if _, err := def.New(big.NewInt(1)); err == nil {
		t.Fatal("arity mismatch should fail")
	}
}

func TestStructValue_String(t *testing.T) {
	r := testStructRegistry(t)
	def, _ := r.Get("Point")
	v, _ := def.New(big.NewInt(1), big.NewInt(2))
	if got := v.String(); got != "Point(x=1, y=2)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestStructRegistry_Names(t *testing.T) {
	r := testStructRegistry(t)
	names := r.Names()
	if len(names) != 2 || names[0] != "Point" || names[1] != "Segment" {
		t.Fatalf("Names() = %v", names)
	}
}
