package abi

import (
	"testing"

	"github.com/dewi-tim/cairo-lang/errors"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		sig  string
		want string
	}{
		{"felt", "felt"},
		{"felt*", "felt*"},
		{" felt ", "felt"},
		{"Point", "Point"},
		{"Point*", "Point*"},
		{"(felt, felt)", "(felt, felt)"},
		{"(felt,felt)", "(felt, felt)"},
		{"(felt, (felt, felt))", "(felt, (felt, felt))"},
		{"(x: felt, y: felt)", "(felt, felt)"},
		{"(a: felt, b: (x: felt, y: felt))", "(felt, (felt, felt))"},
		{"((x: felt, y: felt), felt)", "((felt, felt), felt)"},
		{"(p: (low: felt, high: felt), q: Point*)", "((felt, felt), Point*)"},
		{"()", "()"},
		{"(Point, felt)", "(Point, felt)"},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.sig)
		if err != nil {
			t.Errorf("ParseType(%q) failed: %v", tt.sig, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseType(%q) = %s, want %s", tt.sig, got, tt.want)
		}
	}
}

func TestParseType_QualifiedName(t *testing.T) {
	got, err := ParseType("starkware.contracts.Point")
	if err != nil {
		t.Fatalf("ParseType failed: %v", err)
	}
	if got.Kind != KindStruct || got.Name != "Point" {
		t.Fatalf("expected struct ref Point, got %s", got)
	}
}

func TestParseType_Errors(t *testing.T) {
	invalid := []string{
		"",
		"  ",
		"felt**",
		"(felt",
		"felt)",
		"(felt))",
		"123abc",
		"foo bar",
		".Point",
		"Point.",
	}
	for _, sig := range invalid {
		if _, err := ParseType(sig); err == nil {
			t.Errorf("ParseType(%q) should fail", sig)
		}
	}
}

func TestParseType_NestedArrayRejected(t *testing.T) {
	_, err := ParseType("felt**")
	var e *errors.Error
	if err == nil {
		t.Fatal("felt** should be rejected")
	}
	if !asError(err, &e) {
		t.Fatalf("expected structured error, got %v", err)
	}
}

func asError(err error, target **errors.Error) bool {
	e, ok := err.(*errors.Error)
	if ok {
		*target = e
	}
	return ok
}
