package urltype

import (
	"fmt"
	"sync"
)

// Entry is one registered type: the descriptor plus its installed codec.
type Entry struct {
	Descriptor Descriptor
	Type       *ParamType
}

// Registry holds the set of registered parameter types and installs
// their codecs into the host router. Registration happens once at
// startup; afterwards the registry is read-only.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	order    []string
	bindable map[string]struct{}
	host     ParamTypeRegistrar
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithHost attaches the host router's parameter-type registration API.
// Every successful Register installs the type's codec there.
func WithHost(h ParamTypeRegistrar) RegistryOption {
	return func(r *Registry) {
		r.host = h
	}
}

// NewRegistry creates an empty registry. Registries are explicit
// instances owned by the composition root, not package globals.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries:  make(map[string]*Entry),
		bindable: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register validates the descriptor, adds it to the registered set and
// installs its codec into the host's URL type system. A second
// descriptor under an existing name fails with *RegistrationError and
// leaves the first registration in place.
func (r *Registry) Register(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("urltype: invalid descriptor %q: %w", d.Name, err)
	}

	pattern, err := compileSegment(d.Pattern)
	if err != nil {
		return fmt.Errorf("urltype: descriptor %q: %w", d.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[d.Name]; exists {
		return &RegistrationError{Name: d.Name}
	}

	entry := &Entry{Descriptor: d, Type: newParamType(d, pattern)}
	if r.host != nil {
		if err := r.host.RegisterParamType(d.Name, entry.Type); err != nil {
			return fmt.Errorf("urltype: installing type %q: %w", d.Name, err)
		}
	}

	r.entries[d.Name] = entry
	r.order = append(r.order, d.Name)
	if d.Bindable {
		r.bindable[d.Name] = struct{}{}
	}
	return nil
}

// Lookup returns the entry registered under name. With bindableOnly set
// it consults only the bindable subset.
func (r *Registry) Lookup(name string, bindableOnly bool) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if bindableOnly {
		if _, ok := r.bindable[name]; !ok {
			return nil, false
		}
	}
	entry, ok := r.entries[name]
	return entry, ok
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// TypedParams walks every path node of a state and returns the declared
// parameters whose type is registered, in path order. With bindableOnly
// set only parameters of bindable types are returned.
func (r *Registry) TypedParams(s State, bindableOnly bool) []ParamDecl {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []ParamDecl
	for _, node := range s.PathNodes() {
		for _, p := range node.Params() {
			if _, ok := r.entries[p.Type()]; !ok {
				continue
			}
			if bindableOnly {
				if _, ok := r.bindable[p.Type()]; !ok {
					continue
				}
			}
			out = append(out, p)
		}
	}
	return out
}
