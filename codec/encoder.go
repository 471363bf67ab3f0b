package codec

import (
	"math/big"
	"strconv"

	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/errors"
)

// CheckShape validates a caller-supplied value against the full nested shape
// of the type tree before any flattening happens, so a mismatch anywhere is
// reported with the offending field path and no partial output is produced.
func CheckShape(structs *abi.StructRegistry, value any, t *abi.Type, path ...string) error {
	switch t.Kind {
	case abi.KindFelt:
		if _, ok := asFelt(value); !ok {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				GoType(goTypeName(value)).
				CairoType("felt").
				Value(value).
				Detail("expected a field element").
				Build()
		}
		return nil

	case abi.KindTuple:
		seq, ok := asSequence(value)
		if !ok || len(seq) != len(t.Members) {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				GoType(goTypeName(value)).
				CairoType(t.String()).
				Detail("expected a sequence of %d elements", len(t.Members)).
				Build()
		}
		for i, m := range t.Members {
			if err := CheckShape(structs, seq[i], m, append(path, strconv.Itoa(i))...); err != nil {
				return err
			}
		}
		return nil

	case abi.KindStruct:
		def, err := structs.Get(t.Name)
		if err != nil {
			return err
		}
		seq, ok := asSequence(value)
		if !ok || len(seq) != len(def.Fields) {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				GoType(goTypeName(value)).
				CairoType(t.Name).
				Detail("expected a sequence of %d fields", len(def.Fields)).
				Build()
		}
		for i, f := range def.Fields {
			if err := CheckShape(structs, seq[i], f.Type, append(path, f.Name)...); err != nil {
				return err
			}
		}
		return nil

	case abi.KindPointer:
		seq, ok := asSequence(value)
		if !ok {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				GoType(goTypeName(value)).
				CairoType(t.String()).
				Detail("expected a sequence").
				Build()
		}
		for i, elem := range seq {
			if err := CheckShape(structs, elem, t.Elem, append(path, strconv.Itoa(i))...); err != nil {
				return err
			}
		}
		return nil

	default:
		return errors.UnsupportedType(errors.PhaseEncode, path, t.String())
	}
}

// Flatten encodes a structured value into its flat word sequence. The value
// must satisfy CheckShape for the same type; inputs are never mutated and
// output words are fresh copies.
func Flatten(structs *abi.StructRegistry, value any, t *abi.Type) ([]*big.Int, error) {
	var words []*big.Int
	if err := flatten(structs, value, t, &words, nil); err != nil {
		return nil, err
	}
	if words == nil {
		words = []*big.Int{}
	}
	return words, nil
}

func flatten(structs *abi.StructRegistry, value any, t *abi.Type, words *[]*big.Int, path []string) error {
	switch t.Kind {
	case abi.KindFelt:
		f, ok := asFelt(value)
		if !ok {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				GoType(goTypeName(value)).
				CairoType("felt").
				Value(value).
				Detail("expected a field element").
				Build()
		}
		*words = append(*words, new(big.Int).Set(f))
		return nil

	case abi.KindTuple:
		seq, ok := asSequence(value)
		if !ok || len(seq) != len(t.Members) {
			return errors.TypeMismatch(errors.PhaseEncode, path, goTypeName(value), t.String())
		}
		for i, m := range t.Members {
			if err := flatten(structs, seq[i], m, words, append(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil

	case abi.KindStruct:
		def, err := structs.Get(t.Name)
		if err != nil {
			return err
		}
		seq, ok := asSequence(value)
		if !ok || len(seq) != len(def.Fields) {
			return errors.TypeMismatch(errors.PhaseEncode, path, goTypeName(value), t.Name)
		}
		for i, f := range def.Fields {
			if err := flatten(structs, seq[i], f.Type, words, append(path, f.Name)); err != nil {
				return err
			}
		}
		return nil

	case abi.KindPointer:
		seq, ok := asSequence(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, goTypeName(value), t.String())
		}
		*words = append(*words, big.NewInt(int64(len(seq))))
		for i, elem := range seq {
			if err := flatten(structs, elem, t.Elem, words, append(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil

	default:
		return errors.UnsupportedType(errors.PhaseEncode, path, t.String())
	}
}
