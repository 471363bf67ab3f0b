package abi

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/dewi-tim/cairo-lang/errors"
)

// Entry type tags as they appear in ABI JSON.
const (
	EntryFunction    = "function"
	EntryConstructor = "constructor"
	EntryL1Handler   = "l1_handler"
	EntryEvent       = "event"
	EntryStruct      = "struct"
)

// Parameter is one named, typed slot in a function, event or struct
// description. Type carries the textual Cairo signature.
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Member is a struct member with its word offset inside the struct.
type Member struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Offset int    `json:"offset"`
}

// Entry is one declaration in an interface description.
type Entry struct {
	Type    string      `json:"type"`
	Name    string      `json:"name"`
	Inputs  []Parameter `json:"inputs,omitempty"`
	Outputs []Parameter `json:"outputs,omitempty"`
	Keys    []Parameter `json:"keys,omitempty"`
	Data    []Parameter `json:"data,omitempty"`
	Members []Member    `json:"members,omitempty"`
	Size    int         `json:"size,omitempty"`
}

// ABI is an ordered interface description.
type ABI []Entry

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parse decodes an ABI JSON document and shape-checks its entries.
func Parse(data []byte) (ABI, error) {
	var a ABI
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, errors.ParseFailed("ABI JSON", err)
	}
	for i, entry := range a {
		switch entry.Type {
		case EntryFunction, EntryConstructor, EntryL1Handler, EntryEvent, EntryStruct:
		default:
			return nil, errors.InvalidData(errors.PhaseParse, []string{entry.Name},
				"unknown ABI entry type "+entry.Type)
		}
		if entry.Name == "" {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Detail("ABI entry %d has no name", i).
				Build()
		}
	}
	return a, nil
}

// IsCallable reports whether the entry describes an invocable function.
func (e Entry) IsCallable() bool {
	switch e.Type {
	case EntryFunction, EntryConstructor, EntryL1Handler:
		return true
	}
	return false
}

// Functions returns the callable entries keyed by name, in declaration order.
func (a ABI) Functions() []Entry {
	var out []Entry
	for _, entry := range a {
		if entry.IsCallable() {
			out = append(out, entry)
		}
	}
	return out
}

// Function looks up a callable entry by name.
func (a ABI) Function(name string) (Entry, error) {
	for _, entry := range a {
		if entry.IsCallable() && entry.Name == name {
			return entry, nil
		}
	}
	return Entry{}, errors.NotFound(errors.PhaseSchema, "function", name)
}
