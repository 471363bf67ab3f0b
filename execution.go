package cairolang

import (
	"context"
	"math/big"
)

// RawEvent is a low-level event record emitted during execution: an ordered
// key list followed by an ordered data list. The first key, when present, is
// a candidate event selector.
type RawEvent struct {
	FromAddress *big.Int
	Keys        []*big.Int
	Data        []*big.Int
}

// FeeInfo carries fee and resource accounting for an execution. It is passed
// through unchanged; this layer attaches no meaning to it.
type FeeInfo struct {
	ActualFee   *big.Int
	GasConsumed uint64
}

// ExecutionResult is the raw output of one execution: the flat return word
// sequence, the raw event records in emission order, and fee accounting.
type ExecutionResult struct {
	Retdata []*big.Int
	Events  []RawEvent
	Fee     *FeeInfo
}

// CallOptions configures a read-only execution.
type CallOptions struct {
	CallerAddress *big.Int
	Signature     []*big.Int
}

// InvokeOptions configures a state-mutating execution.
type InvokeOptions struct {
	CallerAddress *big.Int
	MaxFee        *big.Int
	Signature     []*big.Int
}

// ExecutionState executes named contract functions with flat felt calldata.
// ExecuteReadOnly runs against a snapshot and must not persist effects;
// ExecuteMutating applies effects to the live state. Implementations are
// expected to run each request to completion or fail synchronously; there is
// no partial-cancellation contract at this layer.
type ExecutionState interface {
	ExecuteReadOnly(ctx context.Context, address *big.Int, function string, calldata []*big.Int, opts CallOptions) (*ExecutionResult, error)
	ExecuteMutating(ctx context.Context, address *big.Int, function string, calldata []*big.Int, opts InvokeOptions) (*ExecutionResult, error)
}
