package abi

import (
	"strings"

	"github.com/dewi-tim/cairo-lang/errors"
)

// Kind identifies one variant of the closed Cairo value type algebra.
type Kind uint8

const (
	KindFelt Kind = iota
	KindTuple
	KindStruct
	KindPointer
)

var kindNames = [...]string{
	KindFelt:    "felt",
	KindTuple:   "tuple",
	KindStruct:  "struct",
	KindPointer: "pointer",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Type is an immutable recursive type descriptor. Exactly one of the
// variant fields is populated, selected by Kind: Members for tuples,
// Name for struct references, Elem for pointers (arrays).
type Type struct {
	Kind    Kind
	Name    string
	Elem    *Type
	Members []*Type
}

var feltType = &Type{Kind: KindFelt}

// FeltType returns the shared felt descriptor.
func FeltType() *Type {
	return feltType
}

// TupleOf builds a fixed-arity tuple descriptor.
func TupleOf(members ...*Type) *Type {
	return &Type{Kind: KindTuple, Members: members}
}

// StructRef builds a descriptor referring to a named struct. The field list
// is resolved through a StructRegistry.
func StructRef(name string) *Type {
	return &Type{Kind: KindStruct, Name: name}
}

// PointerTo builds a variable-length array descriptor.
func PointerTo(elem *Type) *Type {
	return &Type{Kind: KindPointer, Elem: elem}
}

// String renders the descriptor in Cairo signature syntax.
func (t *Type) String() string {
	switch t.Kind {
	case KindFelt:
		return "felt"
	case KindStruct:
		return t.Name
	case KindPointer:
		return t.Elem.String() + "*"
	case KindTuple:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = m.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "unknown"
	}
}

// WidthInWords returns the fixed wire width of the type. It is undefined for
// pointers, whose width depends on the encoded array length, and fails for
// struct references the registry does not know.
func (t *Type) WidthInWords(structs *StructRegistry) (int, error) {
	switch t.Kind {
	case KindFelt:
		return 1, nil
	case KindTuple:
		total := 0
		for _, m := range t.Members {
			w, err := m.WidthInWords(structs)
			if err != nil {
				return 0, err
			}
			total += w
		}
		return total, nil
	case KindStruct:
		def, err := structs.Get(t.Name)
		if err != nil {
			return 0, err
		}
		total := 0
		for _, f := range def.Fields {
			w, err := f.Type.WidthInWords(structs)
			if err != nil {
				return 0, err
			}
			total += w
		}
		return total, nil
	case KindPointer:
		return 0, errors.New(errors.PhaseSchema, errors.KindInvalidData).
			CairoType(t.String()).
			Detail("array width depends on the encoded length").
			Build()
	default:
		return 0, errors.UnsupportedType(errors.PhaseSchema, nil, t.String())
	}
}

// checkNested rejects arrays anywhere below the top level of a declared
// parameter, return field or struct member. Struct bodies are validated at
// registry build, so a reference by name is fine here.
func checkNested(t *Type, nested bool, path []string) error {
	switch t.Kind {
	case KindFelt, KindStruct:
		return nil
	case KindPointer:
		if nested {
			return errors.NestedArray(path, t.String())
		}
		return checkNested(t.Elem, true, path)
	case KindTuple:
		for _, m := range t.Members {
			if err := checkNested(m, true, path); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.UnsupportedType(errors.PhaseSchema, path, t.String())
	}
}

// CheckTopLevel validates a declared parameter or return type: arrays are
// allowed only as the outermost shape.
func CheckTopLevel(t *Type, path ...string) error {
	return checkNested(t, false, path)
}

// CheckMember validates a struct member type, where arrays are not allowed
// at any depth.
func CheckMember(t *Type, path ...string) error {
	return checkNested(t, true, path)
}
