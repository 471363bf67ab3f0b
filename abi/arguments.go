package abi

import (
	"github.com/dewi-tim/cairo-lang/errors"
)

// Field is one resolved named slot: a parameter, return field, struct member
// or event argument.
type Field struct {
	Name string
	Type *Type
}

// ParseArguments resolves an ordered textual parameter list into fields.
// A felt parameter named "<x>_len" immediately preceding an array parameter
// "<x>" is the array's length companion; the companion is dropped because
// the codec emits the length as part of the array encoding.
func ParseArguments(params []Parameter) ([]Field, error) {
	fields := make([]Field, 0, len(params))
	for _, p := range params {
		t, err := ParseType(p.Type)
		if err != nil {
			return nil, err
		}
		if err := CheckTopLevel(t, p.Name); err != nil {
			return nil, err
		}
		if t.Kind == KindPointer && len(fields) > 0 {
			prev := fields[len(fields)-1]
			if prev.Name == p.Name+"_len" && prev.Type.Kind == KindFelt {
				fields = fields[:len(fields)-1]
			}
		}
		fields = append(fields, Field{Name: p.Name, Type: t})
	}
	return fields, nil
}

// FieldNames returns the ordered names of the fields.
func FieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func duplicateName(fields []Field) (string, bool) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			return f.Name, true
		}
		seen[f.Name] = struct{}{}
	}
	return "", false
}

func checkUniqueNames(fields []Field, owner string) error {
	if name, dup := duplicateName(fields); dup {
		return errors.InvalidData(errors.PhaseSchema, []string{owner, name}, "duplicate field name")
	}
	return nil
}
