package codec

import (
	"fmt"
	"math/big"
	"reflect"

	cairolang "github.com/dewi-tim/cairo-lang"
	"github.com/dewi-tim/cairo-lang/abi"
)

// asFelt coerces a caller-supplied value to a field element. Accepted forms
// are *big.Int and the native integer types; negative values and values at
// or above the field prime are rejected.
func asFelt(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case *big.Int:
		if !cairolang.ValidFelt(x) {
			return nil, false
		}
		return x, true
	case int:
		if x < 0 {
			return nil, false
		}
		return big.NewInt(int64(x)), true
	case int64:
		if x < 0 {
			return nil, false
		}
		return big.NewInt(x), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), true
	default:
		return nil, false
	}
}

// asSequence coerces a caller-supplied value to an ordered element sequence.
// []any and *abi.StructValue are handled directly; any other slice or array
// type goes through reflection so callers can pass e.g. []*big.Int or []int64.
func asSequence(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case *abi.StructValue:
		return x.Values(), true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func goTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
