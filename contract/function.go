package contract

import (
	"math/big"

	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/codec"
	"github.com/dewi-tim/cairo-lang/errors"
)

// Raw-output functions declare exactly this return shape; their retdata is
// exposed verbatim instead of being decoded structurally.
var rawOutputField = abi.Field{Name: "retdata"}

// Function is a callable proxy for one declared contract function. It is
// immutable after construction and safe for concurrent use; each Bind call
// produces a fresh Invocation.
type Function struct {
	contract  *Contract
	name      string
	params    []abi.Field
	returns   []abi.Field
	returnDef *abi.StructDef
	rawOutput bool
}

func buildFunction(c *Contract, entry abi.Entry) (*Function, error) {
	params, err := abi.ParseArguments(entry.Inputs)
	if err != nil {
		return nil, err
	}
	returns, err := abi.ParseArguments(entry.Outputs)
	if err != nil {
		return nil, err
	}

	returnDef, err := abi.NewStructDef(entry.Name+"_return_type", returns)
	if err != nil {
		return nil, err
	}

	return &Function{
		contract:  c,
		name:      entry.Name,
		params:    params,
		returns:   returns,
		returnDef: returnDef,
		rawOutput: isRawOutput(returns),
	}, nil
}

func isRawOutput(returns []abi.Field) bool {
	return len(returns) == 1 &&
		returns[0].Name == rawOutputField.Name &&
		returns[0].Type.Kind == abi.KindPointer &&
		returns[0].Type.Elem.Kind == abi.KindFelt
}

// Name returns the declared function name.
func (f *Function) Name() string { return f.name }

// Params returns the resolved parameter list in declared order.
func (f *Function) Params() []abi.Field {
	out := make([]abi.Field, len(f.params))
	copy(out, f.params)
	return out
}

// Returns returns the resolved return field list in declared order.
func (f *Function) Returns() []abi.Field {
	out := make([]abi.Field, len(f.returns))
	copy(out, f.returns)
	return out
}

// HasRawOutput reports whether the function's retdata is passed through
// undecoded.
func (f *Function) HasRawOutput() bool { return f.rawOutput }

// Bind validates the named arguments against the declared parameter types,
// flattens them into calldata in declared order, and returns a fresh
// Invocation. Unknown and missing argument names are rejected, and every
// value is shape-checked in full before any words are produced.
func (f *Function) Bind(args map[string]any) (*Invocation, error) {
	declared := make(map[string]struct{}, len(f.params))
	for _, p := range f.params {
		declared[p.Name] = struct{}{}
	}
	for name := range args {
		if _, ok := declared[name]; !ok {
			return nil, errors.UnknownArgument(f.name, name)
		}
	}

	structs := f.contract.structs
	for _, p := range f.params {
		value, ok := args[p.Name]
		if !ok {
			return nil, errors.MissingArgument(f.name, p.Name)
		}
		if err := codec.CheckShape(structs, value, p.Type, p.Name); err != nil {
			return nil, err
		}
	}

	var calldata []*big.Int
	for _, p := range f.params {
		words, err := codec.Flatten(structs, args[p.Name], p.Type)
		if err != nil {
			return nil, err
		}
		calldata = append(calldata, words...)
	}
	if calldata == nil {
		calldata = []*big.Int{}
	}

	return &Invocation{
		contract:  f.contract,
		function:  f.name,
		calldata:  calldata,
		returns:   f.returns,
		returnDef: f.returnDef,
		rawOutput: f.rawOutput,
	}, nil
}
