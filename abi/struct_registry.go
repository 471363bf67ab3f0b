package abi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dewi-tim/cairo-lang/errors"
)

// StructDef is the resolved definition of a named struct: its ordered field
// list, fixed at schema load. The definition doubles as the constructible
// value type for the struct.
type StructDef struct {
	Name   string
	Fields []Field
	index  map[string]int
}

// NewStructDef builds a definition from an ordered field list.
func NewStructDef(name string, fields []Field) (*StructDef, error) {
	if err := checkUniqueNames(fields, name); err != nil {
		return nil, err
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}
	return &StructDef{Name: name, Fields: fields, index: index}, nil
}

// New constructs a struct value from ordered field values.
func (d *StructDef) New(values ...any) (*StructValue, error) {
	if len(values) != len(d.Fields) {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(d.Name).
			Detail("struct %s has %d fields, got %d values", d.Name, len(d.Fields), len(values)).
			Build()
	}
	return &StructValue{def: d, values: values}, nil
}

// StructValue is an immutable structured value: ordered field values matching
// the definition's field order.
type StructValue struct {
	def    *StructDef
	values []any
}

// Def returns the value's definition.
func (v *StructValue) Def() *StructDef { return v.def }

// Len returns the number of fields.
func (v *StructValue) Len() int { return len(v.values) }

// At returns the i-th field value in declaration order.
func (v *StructValue) At(i int) any { return v.values[i] }

// Get returns a field value by name.
func (v *StructValue) Get(name string) (any, bool) {
	i, ok := v.def.index[name]
	if !ok {
		return nil, false
	}
	return v.values[i], true
}

// Values returns a copy of the ordered field values.
func (v *StructValue) Values() []any {
	out := make([]any, len(v.values))
	copy(out, v.values)
	return out
}

func (v *StructValue) String() string {
	var b strings.Builder
	b.WriteString(v.def.Name)
	b.WriteByte('(')
	for i, f := range v.def.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		fmt.Fprintf(&b, "%v", v.values[i])
	}
	b.WriteByte(')')
	return b.String()
}

// StructRegistry maps struct names to their definitions. It is built once at
// schema load and immutable afterwards, so it may be shared freely across
// concurrent invocations.
type StructRegistry struct {
	defs map[string]*StructDef
}

// NewStructRegistry resolves every struct entry in the description. Member
// types are parsed, ordered by declared offset, and checked against the
// nested-array rule; struct references must resolve within the description.
func NewStructRegistry(description ABI) (*StructRegistry, error) {
	r := &StructRegistry{defs: make(map[string]*StructDef)}

	for _, entry := range description {
		if entry.Type != EntryStruct {
			continue
		}
		if _, ok := r.defs[entry.Name]; ok {
			return nil, errors.InvalidData(errors.PhaseSchema, []string{entry.Name},
				"struct declared more than once")
		}

		members := make([]Member, len(entry.Members))
		copy(members, entry.Members)
		sort.SliceStable(members, func(i, j int) bool { return members[i].Offset < members[j].Offset })

		fields := make([]Field, 0, len(members))
		for _, m := range members {
			t, err := ParseType(m.Type)
			if err != nil {
				return nil, err
			}
			if err := CheckMember(t, entry.Name, m.Name); err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: m.Name, Type: t})
		}

		def, err := NewStructDef(entry.Name, fields)
		if err != nil {
			return nil, err
		}
		r.defs[entry.Name] = def
	}

	// Dangling struct references fail at schema load, not at first use.
	for _, def := range r.defs {
		for _, f := range def.Fields {
			if err := r.checkResolved(f.Type); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func (r *StructRegistry) checkResolved(t *Type) error {
	switch t.Kind {
	case KindStruct:
		if _, ok := r.defs[t.Name]; !ok {
			return errors.UnknownStruct(t.Name)
		}
	case KindPointer:
		return r.checkResolved(t.Elem)
	case KindTuple:
		for _, m := range t.Members {
			if err := r.checkResolved(m); err != nil {
				return err
			}
		}
	}
	return nil
}

// Has reports whether the registry defines the named struct.
func (r *StructRegistry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Get returns the definition for the named struct.
func (r *StructRegistry) Get(name string) (*StructDef, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, errors.UnknownStruct(name)
	}
	return def, nil
}

// Names returns the defined struct names in sorted order.
func (r *StructRegistry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
