package driver

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/cases"
)

// Factory creates a new, unprobed driver instance.
type Factory func() Driver

// Descriptor is the immutable registry entry for one backend family.
type Descriptor struct {
	// Ident is the name the driver is registered and looked up under.
	Ident string

	// Type is the backend family tag.
	Type Type

	// HandlesTransform mirrors Driver.HandlesTransform so callers can
	// inspect capabilities without instantiating the driver.
	HandlesTransform bool

	// New creates the driver.
	New Factory
}

// Priority is the fixed order in which drivers are probed. Registered
// drivers missing from this list are probed afterwards, by name.
var Priority = []string{
	"gl", "gl1", "glcore", "vulkan", "metal",
	"d3d8", "d3d9", "d3d10", "d3d11", "d3d12",
	"vita2d", "ctr", "gx2", "gdi", "switch",
	"terminal", "software",
}

// Registry holds the known drivers.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{drivers: make(map[string]Descriptor)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry backend packages
// register themselves into.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a driver descriptor. A descriptor with the same ident
// (compared case-insensitively) is replaced.
func (r *Registry) Register(desc Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers[fold(desc.Ident)] = desc
}

// Unregister removes the driver with the given ident.
// This is useful for testing.
func (r *Registry) Unregister(ident string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drivers, fold(ident))
}

// Exists reports whether a driver named name is registered. The
// comparison ignores case.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.drivers[fold(name)]
	return ok
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.drivers[fold(name)]
	return desc, ok
}

// Available returns the registered descriptors in probe order.
func (r *Registry) Available() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.drivers))
	seen := make(map[string]bool, len(r.drivers))
	for _, name := range Priority {
		if desc, ok := r.drivers[name]; ok {
			out = append(out, desc)
			seen[name] = true
		}
	}

	var rest []string
	for key := range r.drivers {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	slices.Sort(rest)
	for _, key := range rest {
		out = append(out, r.drivers[key])
	}
	return out
}

// New instantiates the driver registered under name without probing it.
func (r *Registry) New(name string) (Driver, error) {
	desc, ok := r.Lookup(name)
	if !ok || desc.New == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return desc.New(), nil
}

// InitFirst probes the registered drivers in priority order and returns
// the first one whose Probe succeeds. When none does, the returned error
// wraps ErrNoDriver together with every probe failure.
func (r *Registry) InitFirst(ctx ProbeContext) (Driver, error) {
	var errs []error
	for _, desc := range r.Available() {
		if desc.New == nil {
			continue
		}
		d := desc.New()
		if d == nil {
			continue
		}
		if err := d.Probe(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", desc.Ident, err))
			continue
		}
		return d, nil
	}
	return nil, errors.Join(append([]error{ErrNoDriver}, errs...)...)
}

// Register adds desc to the default registry. Backend packages call
// this from init.
func Register(desc Descriptor) { defaultRegistry.Register(desc) }

// Unregister removes ident from the default registry.
func Unregister(ident string) { defaultRegistry.Unregister(ident) }

// Exists reports whether name is registered in the default registry.
func Exists(name string) bool { return defaultRegistry.Exists(name) }

// Available returns the default registry's descriptors in probe order.
func Available() []Descriptor { return defaultRegistry.Available() }

// Lookup finds a driver in the default registry.
func Lookup(name string) (Descriptor, bool) { return defaultRegistry.Lookup(name) }

func fold(s string) string {
	return cases.Fold().String(s)
}

func equalFold(a, b string) bool {
	return fold(a) == fold(b)
}
