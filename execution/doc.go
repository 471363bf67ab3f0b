// Package execution provides an in-memory implementation of the
// cairolang.ExecutionState interface for tests, examples and tooling.
//
// Contract functions are plain Go handlers registered per address and
// function name. Each handler receives a Call bound to the contract's felt
// storage and an event sink:
//
//	state := execution.NewState()
//	state.Register(address, "increase_balance",
//	    func(ctx context.Context, call *execution.Call) ([]*big.Int, error) {
//	        balance := call.Read(balanceSlot)
//	        balance.Add(balance, call.Calldata[0])
//	        call.Write(balanceSlot, balance)
//	        call.Emit("balance_increased", call.Calldata[0])
//	        return nil, nil
//	    })
//
// ExecuteReadOnly runs the handler against a copy of the contract's storage,
// so effects are always discarded; ExecuteMutating runs against the live
// storage. This mirrors the call/invoke split in the contract package.
package execution
