package codec

import (
	"math/big"
	"strings"
	"testing"

	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/errors"
)

func testRegistry(t *testing.T) *abi.StructRegistry {
	t.Helper()
	structs, err := abi.NewStructRegistry(abi.ABI{
		{
			Type: abi.EntryStruct,
			Name: "Point",
			Size: 2,
			Members: []abi.Member{
				{Name: "x", Type: "felt", Offset: 0},
				{Name: "y", Type: "felt", Offset: 1},
			},
		},
		{
			Type: abi.EntryStruct,
			Name: "Segment",
			Size: 4,
			Members: []abi.Member{
				{Name: "start", Type: "Point", Offset: 0},
				{Name: "end", Type: "Point", Offset: 2},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewStructRegistry failed: %v", err)
	}
	return structs
}

func mustType(t *testing.T, s string) *abi.Type {
	t.Helper()
	typ, err := abi.ParseType(s)
	if err != nil {
		t.Fatalf("ParseType(%q) failed: %v", s, err)
	}
	return typ
}

func words(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func wordsEqual(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

func TestFlatten(t *testing.T) {
	structs := testRegistry(t)

	tests := []struct {
		name  string
		typ   string
		value any
		want  []*big.Int
	}{
		{"felt", "felt", big.NewInt(42), words(42)},
		{"felt from int", "felt", 7, words(7)},
		{"tuple", "(felt, felt)", []any{1, 2}, words(1, 2)},
		{"struct", "Point", []any{3, 4}, words(3, 4)},
		{"nested struct", "Segment", []any{[]any{1, 2}, []any{3, 4}}, words(1, 2, 3, 4)},
		{"array", "felt*", []any{5, 6, 7}, words(3, 5, 6, 7)},
		{"empty array", "felt*", []any{}, words(0)},
		{"struct array", "Point*", []any{[]any{1, 2}, []any{3, 4}}, words(2, 1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(structs, tt.value, mustType(t, tt.typ))
			if err != nil {
				t.Fatalf("Flatten failed: %v", err)
			}
			if !wordsEqual(got, tt.want) {
				t.Fatalf("Flatten = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlatten_DoesNotAliasInput(t *testing.T) {
	structs := testRegistry(t)
	in := big.NewInt(9)
	out, err := Flatten(structs, in, mustType(t, "felt"))
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	out[0].SetInt64(100)
	if in.Int64() != 9 {
		t.Fatal("output words must not alias the input value")
	}
}

func TestFlatten_Idempotent(t *testing.T) {
	structs := testRegistry(t)
	typ := mustType(t, "Point*")
	value := []any{[]any{1, 2}, []any{3, 4}}

	first, err := Flatten(structs, value, typ)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	second, err := Flatten(structs, value, typ)
	if err != nil {
		t.Fatalf("second Flatten failed: %v", err)
	}
	if !wordsEqual(first, second) {
		t.Fatalf("repeated Flatten diverged: %v vs %v", first, second)
	}
}

func TestFlatten_AcceptsStructValue(t *testing.T) {
	structs := testRegistry(t)
	def, err := structs.Get("Point")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	p, err := def.New(big.NewInt(11), big.NewInt(22))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got, err := Flatten(structs, p, mustType(t, "Point"))
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if !wordsEqual(got, words(11, 22)) {
		t.Fatalf("Flatten = %v", got)
	}
}

func TestCheckShape_Errors(t *testing.T) {
	structs := testRegistry(t)

	tests := []struct {
		name  string
		typ   string
		value any
	}{
		{"string for felt", "felt", "not a number"},
		{"negative int for felt", "felt", -1},
		{"felt at or above prime", "felt", new(big.Int).Set(primeForTest())},
		{"short tuple", "(felt, felt)", []any{1}},
		{"long tuple", "(felt, felt)", []any{1, 2, 3}},
		{"scalar for struct", "Point", 5},
		{"short struct", "Point", []any{1}},
		{"scalar for array", "felt*", 9},
		{"bad element", "felt*", []any{1, "x", 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckShape(structs, tt.value, mustType(t, tt.typ))
			if err == nil {
				t.Fatal("CheckShape should have failed")
			}
			if !errors.IsKind(err, errors.KindTypeMismatch) {
				t.Fatalf("expected type_mismatch, got %v", err)
			}
		})
	}
}

func TestCheckShape_ErrorPath(t *testing.T) {
	structs := testRegistry(t)
	err := CheckShape(structs, []any{[]any{1, "bad"}, []any{3, 4}}, mustType(t, "Segment"), "s")
	if err == nil {
		t.Fatal("CheckShape should have failed")
	}
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected structured error, got %T", err)
	}
	want := "s.start.y"
	if got := strings.Join(e.Path, "."); got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}

func primeForTest() *big.Int {
	p, _ := new(big.Int).SetString("800000000000011000000000000000000000000000000000000000000000001", 16)
	return p
}
