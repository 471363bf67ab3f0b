package abi

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/dewi-tim/cairo-lang/errors"
)

// EventDef is the resolved definition of a declared event: its selector and
// ordered argument list, fixed at schema load. The definition doubles as the
// constructible value type for the event.
type EventDef struct {
	Name     string
	Selector *big.Int
	Args     []Field
}

// New constructs an event value from ordered argument values.
func (d *EventDef) New(values ...any) (*EventValue, error) {
	if len(values) != len(d.Args) {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(d.Name).
			Detail("event %s has %d arguments, got %d values", d.Name, len(d.Args), len(values)).
			Build()
	}
	return &EventValue{def: d, values: values}, nil
}

// EventValue is a reconstructed high-level event: ordered argument values
// matching the definition's argument order.
type EventValue struct {
	def    *EventDef
	values []any
}

// Def returns the event's definition.
func (v *EventValue) Def() *EventDef { return v.def }

// Name returns the declared event name.
func (v *EventValue) Name() string { return v.def.Name }

// Len returns the number of arguments.
func (v *EventValue) Len() int { return len(v.values) }

// At returns the i-th argument value in declaration order.
func (v *EventValue) At(i int) any { return v.values[i] }

// Get returns an argument value by name.
func (v *EventValue) Get(name string) (any, bool) {
	for i, a := range v.def.Args {
		if a.Name == name {
			return v.values[i], true
		}
	}
	return nil, false
}

// Values returns a copy of the ordered argument values.
func (v *EventValue) Values() []any {
	out := make([]any, len(v.values))
	copy(out, v.values)
	return out
}

func (v *EventValue) String() string {
	var b strings.Builder
	b.WriteString(v.def.Name)
	b.WriteByte('(')
	for i, a := range v.def.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Name)
		b.WriteByte('=')
		fmt.Fprintf(&b, "%v", v.values[i])
	}
	b.WriteByte(')')
	return b.String()
}

// EventRegistry maps event selectors to their definitions. Like the struct
// registry it is built once at schema load and immutable afterwards.
type EventRegistry struct {
	bySelector map[string]*EventDef
	byName     map[string]*EventDef
}

// NewEventRegistry resolves every event entry in the description. Event
// arguments are the declared keys followed by the declared data fields; the
// selector is derived from the event name. Struct references in argument
// types must resolve within the same description, so a dangling reference is
// a schema error here rather than a decode failure on every instance of the
// event.
func NewEventRegistry(description ABI) (*EventRegistry, error) {
	structs, err := NewStructRegistry(description)
	if err != nil {
		return nil, err
	}

	r := &EventRegistry{
		bySelector: make(map[string]*EventDef),
		byName:     make(map[string]*EventDef),
	}

	for _, entry := range description {
		if entry.Type != EntryEvent {
			continue
		}
		if _, ok := r.byName[entry.Name]; ok {
			return nil, errors.InvalidData(errors.PhaseSchema, []string{entry.Name},
				"event declared more than once")
		}

		params := make([]Parameter, 0, len(entry.Keys)+len(entry.Data))
		params = append(params, entry.Keys...)
		params = append(params, entry.Data...)
		args, err := ParseArguments(params)
		if err != nil {
			return nil, err
		}
		if err := checkUniqueNames(args, entry.Name); err != nil {
			return nil, err
		}
		for _, a := range args {
			if err := structs.checkResolved(a.Type); err != nil {
				return nil, err
			}
		}

		def := &EventDef{
			Name:     entry.Name,
			Selector: Selector(entry.Name),
			Args:     args,
		}
		r.bySelector[def.Selector.String()] = def
		r.byName[entry.Name] = def
	}

	return r, nil
}

// HasSelector reports whether the selector belongs to a declared event.
func (r *EventRegistry) HasSelector(selector *big.Int) bool {
	_, ok := r.bySelector[selector.String()]
	return ok
}

// BySelector returns the definition registered under the selector.
func (r *EventRegistry) BySelector(selector *big.Int) (*EventDef, error) {
	def, ok := r.bySelector[selector.String()]
	if !ok {
		return nil, errors.UnknownEvent("with selector " + selector.String())
	}
	return def, nil
}

// ByName returns the definition for the declared event name.
func (r *EventRegistry) ByName(name string) (*EventDef, error) {
	def, ok := r.byName[name]
	if !ok {
		return nil, errors.UnknownEvent(fmt.Sprintf("%q", name))
	}
	return def, nil
}

// SelectorFor returns the selector derived from the declared event name.
func (r *EventRegistry) SelectorFor(name string) (*big.Int, error) {
	def, err := r.ByName(name)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(def.Selector), nil
}

// Names returns the declared event names in sorted order.
func (r *EventRegistry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
