// Package registry provides a small generic name registry with aliases.
//
// Names and aliases are matched case-insensitively. Registration order is
// preserved by List so callers can present items in a stable order.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/guess/pkg/errors"
)

// Registry stores items by canonical name and resolves aliases to them
type Registry[T any] struct {
	items   map[string]T
	aliases map[string]string
	order   []string
}

// New creates an empty Registry
func New[T any]() *Registry[T] {
	return &Registry[T]{
		items:   make(map[string]T),
		aliases: make(map[string]string),
	}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds an item under name, plus any aliases pointing at it
func (r *Registry[T]) Register(name string, item T, aliases ...string) error {
	k := key(name)
	if k == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}
	if r.Has(k) {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}
	for _, alias := range aliases {
		if r.Has(alias) {
			return errors.Newf(errors.ErrAlreadyExists, "alias '%s' is already registered", alias)
		}
	}

	r.items[k] = item
	r.order = append(r.order, k)
	for _, alias := range aliases {
		if a := key(alias); a != "" {
			r.aliases[a] = k
		}
	}
	return nil
}

// Get retrieves an item by name or alias
func (r *Registry[T]) Get(name string) (T, error) {
	k := key(name)
	if canonical, ok := r.aliases[k]; ok {
		k = canonical
	}

	item, exists := r.items[k]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	return item, nil
}

// Has checks if a name or alias is registered
func (r *Registry[T]) Has(name string) bool {
	k := key(name)
	if _, ok := r.aliases[k]; ok {
		return true
	}
	_, ok := r.items[k]
	return ok
}

// List returns canonical names in registration order
func (r *Registry[T]) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Aliases returns the sorted aliases registered for a canonical name
func (r *Registry[T]) Aliases(name string) []string {
	k := key(name)
	var out []string
	for alias, canonical := range r.aliases {
		if canonical == k {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// MustRegister registers an item and panics if registration fails
// This is useful for package-level tables where registration errors are programming errors
func MustRegister[T any](reg *Registry[T], name string, item T, aliases ...string) {
	if err := reg.Register(name, item, aliases...); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
