package execution

import (
	"context"
	"math/big"
	"sync"

	"go.uber.org/zap"

	cairolang "github.com/dewi-tim/cairo-lang"
	"github.com/dewi-tim/cairo-lang/abi"
	"github.com/dewi-tim/cairo-lang/errors"
)

// Handler implements one contract function. It reads and writes contract
// storage and emits events through the Call, and returns the flat retdata
// word sequence.
type Handler func(ctx context.Context, call *Call) ([]*big.Int, error)

// Call carries one execution request to a handler, bound to a storage view:
// the live state for mutating executions, a discarded copy for read-only
// ones.
type Call struct {
	Address   *big.Int
	Function  string
	Calldata  []*big.Int
	Caller    *big.Int
	Signature []*big.Int
	MaxFee    *big.Int

	storage map[string]*big.Int
	events  []cairolang.RawEvent
}

// Read returns the value stored at slot for the called contract, zero when
// the slot has never been written.
func (c *Call) Read(slot *big.Int) *big.Int {
	if v, ok := c.storage[slot.String()]; ok {
		return new(big.Int).Set(v)
	}
	return big.NewInt(0)
}

// Write stores value at slot for the called contract.
func (c *Call) Write(slot, value *big.Int) {
	c.storage[slot.String()] = new(big.Int).Set(value)
}

// EmitEvent appends a raw event record with arbitrary keys and data, the
// low-level emission path.
func (c *Call) EmitEvent(keys, data []*big.Int) {
	c.events = append(c.events, cairolang.RawEvent{
		FromAddress: c.Address,
		Keys:        keys,
		Data:        data,
	})
}

// Emit appends an event record keyed by the selector of the declared event
// name, the high-level emission path.
func (c *Call) Emit(name string, data ...*big.Int) {
	c.EmitEvent([]*big.Int{abi.Selector(name)}, data)
}

// Option configures a State.
type Option func(*State)

// WithLogger installs a logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) { s.logger = l }
}

// State is an in-memory ExecutionState: a registry of Go handlers keyed by
// contract address and function name, plus per-address felt storage.
// ExecuteReadOnly runs handlers against a copy of the contract's storage so
// effects never persist; ExecuteMutating applies them.
type State struct {
	mu       sync.Mutex
	handlers map[string]Handler
	storage  map[string]map[string]*big.Int
	logger   *zap.Logger
}

// NewState creates an empty state.
func NewState(opts ...Option) *State {
	s := &State{
		handlers: make(map[string]Handler),
		storage:  make(map[string]map[string]*big.Int),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register installs the handler for a function on a deployed address.
func (s *State) Register(address *big.Int, function string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[handlerKey(address, function)] = h
}

func handlerKey(address *big.Int, function string) string {
	return address.String() + "/" + function
}

// ExecuteReadOnly implements cairolang.ExecutionState against a storage
// snapshot.
func (s *State) ExecuteReadOnly(ctx context.Context, address *big.Int, function string, calldata []*big.Int, opts cairolang.CallOptions) (*cairolang.ExecutionResult, error) {
	s.mu.Lock()
	h, ok := s.handlers[handlerKey(address, function)]
	view := copyStorage(s.storage[address.String()])
	s.mu.Unlock()

	if !ok {
		return nil, errors.NotFound(errors.PhaseExecute, "function", function)
	}
	return s.run(ctx, h, &Call{
		Address:   address,
		Function:  function,
		Calldata:  calldata,
		Caller:    opts.CallerAddress,
		Signature: opts.Signature,
		storage:   view,
	})
}

// ExecuteMutating implements cairolang.ExecutionState against live storage.
func (s *State) ExecuteMutating(ctx context.Context, address *big.Int, function string, calldata []*big.Int, opts cairolang.InvokeOptions) (*cairolang.ExecutionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.handlers[handlerKey(address, function)]
	if !ok {
		return nil, errors.NotFound(errors.PhaseExecute, "function", function)
	}
	live := s.storage[address.String()]
	if live == nil {
		live = make(map[string]*big.Int)
		s.storage[address.String()] = live
	}
	return s.run(ctx, h, &Call{
		Address:   address,
		Function:  function,
		Calldata:  calldata,
		Caller:    opts.CallerAddress,
		Signature: opts.Signature,
		MaxFee:    opts.MaxFee,
		storage:   live,
	})
}

func (s *State) run(ctx context.Context, h Handler, call *Call) (*cairolang.ExecutionResult, error) {
	retdata, err := h(ctx, call)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseExecute, errors.KindInvalidData, err,
			"execute "+call.Function)
	}
	if retdata == nil {
		retdata = []*big.Int{}
	}

	s.logger.Debug("executed function",
		zap.String("function", call.Function),
		zap.Int("calldata_words", len(call.Calldata)),
		zap.Int("retdata_words", len(retdata)),
		zap.Int("events", len(call.events)))

	return &cairolang.ExecutionResult{
		Retdata: retdata,
		Events:  call.events,
		Fee: &cairolang.FeeInfo{
			ActualFee:   big.NewInt(0),
			GasConsumed: uint64(len(call.Calldata) + len(retdata)),
		},
	}, nil
}

func copyStorage(m map[string]*big.Int) map[string]*big.Int {
	out := make(map[string]*big.Int, len(m))
	for k, v := range m {
		out[k] = new(big.Int).Set(v)
	}
	return out
}
