package abi

import (
	"strings"

	"github.com/dewi-tim/cairo-lang/errors"
)

// ParseType parses a textual Cairo type signature into a descriptor.
// Supported forms: "felt", "T*" arrays, "(a, b, ...)" tuples with nesting,
// and bare identifiers as struct references. Pointer-to-pointer is rejected.
func ParseType(sig string) (*Type, error) {
	t, err := parseType(strings.TrimSpace(sig))
	if err != nil {
		return nil, errors.ParseFailed("type signature "+sig, err)
	}
	return t, nil
}

func parseType(s string) (*Type, error) {
	if s == "" {
		return nil, errors.InvalidData(errors.PhaseParse, nil, "empty type signature")
	}

	if strings.HasSuffix(s, "*") {
		elem, err := parseType(strings.TrimSpace(strings.TrimSuffix(s, "*")))
		if err != nil {
			return nil, err
		}
		if elem.Kind == KindPointer {
			return nil, errors.NestedArray(nil, s)
		}
		return PointerTo(elem), nil
	}

	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return nil, errors.InvalidData(errors.PhaseParse, nil, "unbalanced parentheses in "+s)
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return TupleOf(), nil
		}
		parts, err := splitMembers(inner)
		if err != nil {
			return nil, err
		}
		members := make([]*Type, len(parts))
		for i, part := range parts {
			m, err := parseType(stripMemberName(part))
			if err != nil {
				return nil, err
			}
			members[i] = m
		}
		return TupleOf(members...), nil
	}

	if s == "felt" {
		return FeltType(), nil
	}

	if !isIdentifier(s) {
		return nil, errors.InvalidData(errors.PhaseParse, nil, "invalid type signature "+s)
	}
	// Registries key structs by their unqualified name.
	if idx := strings.LastIndex(s, "."); idx != -1 {
		s = s[idx+1:]
	}
	return StructRef(s), nil
}

// stripMemberName removes a "name:" prefix from a tuple member. Only a colon
// at paren depth 0 names the member; colons inside a nested tuple belong to
// that tuple's own members.
func stripMemberName(part string) string {
	depth := 0
	for i, ch := range part {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ':':
			if depth == 0 {
				return strings.TrimSpace(part[i+1:])
			}
		}
	}
	return part
}

// splitMembers splits a tuple body on top-level commas, tracking paren depth.
func splitMembers(s string) ([]string, error) {
	var result []string
	var current strings.Builder
	depth := 0

	for _, ch := range s {
		switch ch {
		case '(':
			depth++
			current.WriteRune(ch)
		case ')':
			depth--
			if depth < 0 {
				return nil, errors.InvalidData(errors.PhaseParse, nil, "unbalanced parentheses in "+s)
			}
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				if str := strings.TrimSpace(current.String()); str != "" {
					result = append(result, str)
				}
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}
	if depth != 0 {
		return nil, errors.InvalidData(errors.PhaseParse, nil, "unbalanced parentheses in "+s)
	}

	if str := strings.TrimSpace(current.String()); str != "" {
		result = append(result, str)
	}

	return result, nil
}

func isIdentifier(s string) bool {
	for i, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return false
			}
		case ch == '.':
			// Fully qualified struct paths keep only dotted identifiers.
			if i == 0 || i == len(s)-1 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
