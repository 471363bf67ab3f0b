package contract

import (
	"math/big"
	"sort"
	"sync"

	cairolang "github.com/dewi-tim/cairo-lang"
	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/errors"
)

// Contract binds an interface description to a deployed address on an
// execution state and builds one callable Function proxy per declared
// function. The schema (registries and type descriptors) is resolved eagerly
// when the contract is created and never mutated afterwards; only the proxy
// cache is lazy, guarded by a mutex.
type Contract struct {
	state       cairolang.ExecutionState
	address     *big.Int
	description abi.ABI
	structs     *abi.StructRegistry
	events      *abi.EventRegistry
	entries     map[string]abi.Entry

	mu        sync.Mutex
	functions map[string]*Function
}

// New resolves the description into registries and returns a contract bound
// to the address. Schema errors (bad signatures, nested arrays, duplicate or
// dangling declarations) surface here, before any call is attempted.
func New(state cairolang.ExecutionState, description abi.ABI, address *big.Int) (*Contract, error) {
	if state == nil {
		return nil, errors.InvalidData(errors.PhaseSchema, nil, "nil execution state")
	}
	if address == nil || address.Sign() < 0 {
		return nil, errors.InvalidData(errors.PhaseSchema, nil, "invalid contract address")
	}

	structs, err := abi.NewStructRegistry(description)
	if err != nil {
		return nil, err
	}
	events, err := abi.NewEventRegistry(description)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]abi.Entry)
	for _, entry := range description.Functions() {
		entries[entry.Name] = entry
	}

	return &Contract{
		state:       state,
		address:     new(big.Int).Set(address),
		description: description,
		structs:     structs,
		events:      events,
		entries:     entries,
		functions:   make(map[string]*Function),
	}, nil
}

// Address returns the bound contract address.
func (c *Contract) Address() *big.Int {
	return new(big.Int).Set(c.address)
}

// Structs returns the contract's struct registry.
func (c *Contract) Structs() *abi.StructRegistry {
	return c.structs
}

// Events returns the contract's event registry.
func (c *Contract) Events() *abi.EventRegistry {
	return c.events
}

// Function returns the proxy for a declared function, building it on first
// request. Repeated requests return the same proxy; the cache is purely an
// identity optimization, a rebuilt proxy would behave identically.
func (c *Contract) Function(name string) (*Function, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fn, ok := c.functions[name]; ok {
		return fn, nil
	}

	entry, ok := c.entries[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseSchema, "function", name)
	}
	fn, err := buildFunction(c, entry)
	if err != nil {
		return nil, err
	}
	c.functions[name] = fn
	return fn, nil
}

// FunctionNames returns the declared function names in sorted order.
func (c *Contract) FunctionNames() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReplaceABI returns an independent contract for the same address and
// execution state, interpreted under a different interface description.
// Typically used to inspect the implementation interface behind a proxy
// contract. The receiver is not modified.
func (c *Contract) ReplaceABI(description abi.ABI) (*Contract, error) {
	return New(c.state, description, c.address)
}
