// Package cairolang provides schema-driven value marshalling for Cairo-style
// contracts: recursive type descriptors, a flat field-element wire encoding,
// per-function call proxies built from a declarative ABI, and reconstruction
// of high-level events from raw execution records.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	cairolang/           Root package with the ExecutionState interface and felt helpers
//	├── abi/             ABI descriptions, type descriptors, signature parsing, registries
//	├── codec/           Flatten/unflatten between structured values and felt words
//	├── contract/        Function proxies, invocations, event reconstruction
//	├── execution/       In-memory ExecutionState implementation
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Bind a contract to an execution state and call a function:
//
//	description, err := abi.Parse(abiJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := contract.New(state, description, address)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fn, err := c.Function("transfer")
//	inv, err := fn.Bind(map[string]any{
//	    "recipient": cairolang.Felt(0x1234),
//	    "amount":    cairolang.Felt(10),
//	})
//	info, err := inv.Invoke(ctx, cairolang.InvokeOptions{})
//	fmt.Println(info.Result)
//
// # Type System
//
// The wire encoding supports the Cairo value type algebra:
//
//   - felt: one field element word
//   - (a, b, ...): fixed-arity tuple, concatenated element words
//   - named struct: identical to a tuple at the wire level, field order fixed
//   - T*: variable-length array, a length word followed by element words
//
// Arrays may only appear at the top level of a parameter or return list;
// array members inside tuples and structs are rejected at schema load.
//
// # Calls and Invocations
//
// A Function proxy validates named arguments against the declared parameter
// types, flattens them into calldata, and produces an immutable Invocation.
// Invocation.Call executes against a read-only snapshot; Invocation.Invoke
// persists effects. Both decode the returned words into the declared return
// shape and rebuild high-level events from the raw event stream.
package cairolang
