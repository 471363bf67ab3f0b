// Package contract provides the high-level call surface: function proxies
// built from an interface description, immutable invocations, and
// reconstruction of high-level events from raw execution records.
//
// # Quick Start
//
//	c, err := contract.New(state, description, address)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fn, err := c.Function("increase_balance")
//	inv, err := fn.Bind(map[string]any{"amount": cairolang.Felt(10)})
//	info, err := inv.Invoke(ctx, cairolang.InvokeOptions{})
//
// # Calls vs Invokes
//
// Invocation.Call executes against a read-only snapshot and never persists
// effects; Invocation.Invoke applies them. Both decode the returned words
// against the function's declared return fields into a named result value,
// unless the function declares the raw-output shape (a single felt* field
// named "retdata"), in which case the words are exposed verbatim.
//
// # Argument Binding
//
// Function.Bind takes a name-to-value mapping covering exactly the declared
// parameters. Values are shape-checked against the full type tree before any
// calldata is produced, so a mismatch deep inside a nested struct is
// reported with its field path and no partial encoding escapes.
//
// # Event Reconstruction
//
// Raw event records are matched by treating the first key as a candidate
// selector. Unregistered selectors mark low-level events, which pass through
// unreconstructed. A registered selector triggers a trial decode of the
// remaining keys and data against the event's declared argument types;
// records that fail the trial decode are dropped, since an unrelated
// low-level event may carry a selector-looking value by coincidence.
// Install a logger with SetLogger to see dropped records at debug level.
package contract
