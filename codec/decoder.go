package codec

import (
	"math/big"

	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/errors"
)

// cursor consumes words from a single shared position so that consecutive
// top-level types decode contiguously.
type cursor struct {
	words []*big.Int
	pos   int
}

func (c *cursor) next(path []string) (*big.Int, error) {
	if c.pos >= len(c.words) {
		return nil, errors.InsufficientData(path)
	}
	w := c.words[c.pos]
	c.pos++
	return w, nil
}

func (c *cursor) remaining() int {
	return len(c.words) - c.pos
}

// Unflatten decodes a flat word sequence into one structured value per type,
// consuming the words left to right. It fails with an insufficient_data error
// when the words run out mid-decode and with a trailing_data error when words
// remain after every type has been decoded.
func Unflatten(structs *abi.StructRegistry, words []*big.Int, types []*abi.Type) ([]any, error) {
	c := &cursor{words: words}
	values := make([]any, 0, len(types))
	for _, t := range types {
		v, err := unflatten(structs, c, t, nil)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if c.remaining() > 0 {
		return nil, errors.TrailingData(c.remaining())
	}
	return values, nil
}

func unflatten(structs *abi.StructRegistry, c *cursor, t *abi.Type, path []string) (any, error) {
	switch t.Kind {
	case abi.KindFelt:
		w, err := c.next(path)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Set(w), nil

	case abi.KindTuple:
		out := make([]any, len(t.Members))
		for i, m := range t.Members {
			v, err := unflatten(structs, c, m, path)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case abi.KindStruct:
		def, err := structs.Get(t.Name)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(def.Fields))
		for i, f := range def.Fields {
			v, err := unflatten(structs, c, f.Type, append(path, f.Name))
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return def.New(values...)

	case abi.KindPointer:
		length, err := c.next(path)
		if err != nil {
			return nil, err
		}
		// A length that cannot possibly be satisfied by the remaining words
		// is under-consumption; checking up front also bounds the loop. The
		// bound only holds when each element consumes at least one word, so
		// zero-width elements (a struct with no members) skip it and decode
		// n empty values.
		if !length.IsInt64() || length.Sign() < 0 {
			return nil, errors.InsufficientData(path)
		}
		if w, werr := t.Elem.WidthInWords(structs); werr == nil && w > 0 &&
			length.Int64() > int64(c.remaining()) {
			return nil, errors.InsufficientData(path)
		}
		n := int(length.Int64())
		out := make([]any, n)
		for i := 0; i < n; i++ {
			v, err := unflatten(structs, c, t.Elem, path)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	default:
		return nil, errors.UnsupportedType(errors.PhaseDecode, path, t.String())
	}
}
