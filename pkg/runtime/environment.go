package runtime

import "sort"

// Environment is the single global namespace of a session plus the slot
// that backs the pronoun "it".
type Environment struct {
	values map[string]Value
	last   Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define binds name, replacing any earlier binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Lookup retrieves a binding.
func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Has reports whether name is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// SetLast records the value "it" refers to.
func (e *Environment) SetLast(value Value) {
	e.last = value
}

// Last returns the value "it" refers to, if any has been recorded.
func (e *Environment) Last() (Value, bool) {
	return e.last, e.last != nil
}
