package contract

import (
	"context"
	"math/big"

	cairolang "github.com/dewi-tim/cairo-lang"
	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/codec"
)

// ExecutionInfo is the post-processed outcome of one execution: the raw
// return words, the structurally decoded result (nil for raw-output
// functions), the reconstructed high-level events, and the untouched raw
// event and fee records.
type ExecutionInfo struct {
	Retdata []*big.Int
	Result  *abi.StructValue
	Events  []*abi.EventValue
	Raw     []cairolang.RawEvent
	Fee     *cairolang.FeeInfo
}

// Invocation is an immutable, ready-to-run binding of one function on one
// contract address with pre-encoded calldata. Creating invocations is cheap;
// the same function proxy can synthesize arbitrarily many.
type Invocation struct {
	contract  *Contract
	function  string
	calldata  []*big.Int
	returns   []abi.Field
	returnDef *abi.StructDef
	rawOutput bool
}

// Function returns the bound function name.
func (inv *Invocation) Function() string { return inv.function }

// Calldata returns a copy of the encoded calldata words.
func (inv *Invocation) Calldata() []*big.Int {
	out := make([]*big.Int, len(inv.calldata))
	for i, w := range inv.calldata {
		out[i] = new(big.Int).Set(w)
	}
	return out
}

// Call executes the function against a read-only snapshot of state; effects
// are not persisted.
func (inv *Invocation) Call(ctx context.Context, opts cairolang.CallOptions) (*ExecutionInfo, error) {
	normalizeCaller(&opts.CallerAddress)
	result, err := inv.contract.state.ExecuteReadOnly(
		ctx, inv.contract.address, inv.function, inv.calldata, opts)
	if err != nil {
		return nil, err
	}
	return inv.buildInfo(result)
}

// Invoke executes the function and persists its effects.
func (inv *Invocation) Invoke(ctx context.Context, opts cairolang.InvokeOptions) (*ExecutionInfo, error) {
	normalizeCaller(&opts.CallerAddress)
	if opts.MaxFee == nil {
		opts.MaxFee = big.NewInt(0)
	}
	result, err := inv.contract.state.ExecuteMutating(
		ctx, inv.contract.address, inv.function, inv.calldata, opts)
	if err != nil {
		return nil, err
	}
	return inv.buildInfo(result)
}

func normalizeCaller(addr **big.Int) {
	if *addr == nil {
		*addr = big.NewInt(0)
	}
}

// buildInfo post-processes a raw execution result. Return-shape mismatches
// are fatal here: retdata from a genuine execution is expected to match the
// declared return types exactly.
func (inv *Invocation) buildInfo(result *cairolang.ExecutionResult) (*ExecutionInfo, error) {
	info := &ExecutionInfo{
		Retdata: result.Retdata,
		Raw:     result.Events,
		Fee:     result.Fee,
	}

	if !inv.rawOutput {
		types := make([]*abi.Type, len(inv.returns))
		for i, r := range inv.returns {
			types[i] = r.Type
		}
		values, err := codec.Unflatten(inv.contract.structs, result.Retdata, types)
		if err != nil {
			return nil, err
		}
		decoded, err := inv.returnDef.New(values...)
		if err != nil {
			return nil, err
		}
		info.Result = decoded
	}

	info.Events = inv.buildEvents(result.Events)
	return info, nil
}
