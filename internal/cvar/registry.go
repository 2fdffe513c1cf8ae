// Package cvar holds the engine's configuration variables. Drivers bind
// pointers to their settings here so the console can read and change them.
package cvar

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

var (
	ErrUnknownVariable = errors.New("unknown variable")
	ErrInvalidValue    = errors.New("invalid value")
)

type kind int

const (
	kindInt kind = iota
	kindString
)

type binding struct {
	kind kind
	i    *int
	s    *string
}

// Registry maps variable names to bound locations. Bound values must only
// be read and written through the registry once bound.
type Registry struct {
	mu   sync.RWMutex
	vars map[string]binding
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{vars: make(map[string]binding)}
}

// BindInt binds an integer variable. Rebinding a name replaces it.
func (r *Registry) BindInt(name string, v *int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vars[name] = binding{kind: kindInt, i: v}
}

// BindString binds a string variable. Rebinding a name replaces it.
func (r *Registry) BindString(name string, v *string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vars[name] = binding{kind: kindString, s: v}
}

// Get returns the current value of a variable formatted as text
func (r *Registry) Get(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.vars[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrUnknownVariable)
	}
	if b.kind == kindInt {
		return strconv.Itoa(*b.i), nil
	}
	return *b.s, nil
}

// Set parses value and stores it in the bound location
func (r *Registry) Set(name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.vars[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownVariable)
	}
	switch b.kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", name, value, ErrInvalidValue)
		}
		*b.i = n
	case kindString:
		*b.s = value
	}
	return nil
}

// Int returns the value of an integer variable
func (r *Registry) Int(name string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.vars[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, ErrUnknownVariable)
	}
	if b.kind != kindInt {
		return 0, fmt.Errorf("%s is not an integer: %w", name, ErrInvalidValue)
	}
	return *b.i, nil
}

// SetInt stores v in an integer variable
func (r *Registry) SetInt(name string, v int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.vars[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownVariable)
	}
	if b.kind != kindInt {
		return fmt.Errorf("%s is not an integer: %w", name, ErrInvalidValue)
	}
	*b.i = v
	return nil
}

// Names returns all bound names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.vars))
	for name := range r.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound variables
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vars)
}
