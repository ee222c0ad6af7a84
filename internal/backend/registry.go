package backend

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Binding is one registered backend: its kind, the concrete types bound to
// every contract slot, and its feature toggles.
type Binding struct {
	Kind     Kind
	Slots    TypeMap
	Features Features
}

// Backend registry. Bindings are registered from backend packages' init()
// functions and never change afterwards.
var (
	registryMu  sync.RWMutex
	bindings    = make(map[Kind]Binding)
	configKinds = make(map[reflect.Type]Kind)
)

// Register adds a binding to the registry. It rejects partial slot maps,
// duplicate kinds, and source-config types already claimed by another kind
// (the config type to kind relation must stay one-to-one).
func Register(b Binding) error {
	if err := b.Slots.Complete(); err != nil {
		return fmt.Errorf("backend %s: %w", b.Kind, err)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := bindings[b.Kind]; exists {
		return fmt.Errorf("backend %s: already registered", b.Kind)
	}
	if claimed, exists := configKinds[b.Slots.SourceConfig]; exists {
		return fmt.Errorf("backend %s: source config type %s already bound to %s",
			b.Kind, b.Slots.SourceConfig, claimed)
	}

	bindings[b.Kind] = b
	configKinds[b.Slots.SourceConfig] = b.Kind
	return nil
}

// MustRegister is Register for init() call sites, where a bad binding is a
// programmer error.
func MustRegister(b Binding) {
	if err := Register(b); err != nil {
		panic(err)
	}
}

// Get returns the binding for a kind.
func Get(k Kind) (Binding, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	b, ok := bindings[k]
	return b, ok
}

// Kinds returns all registered kinds in sorted order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Kind, 0, len(bindings))
	for k := range bindings {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// KindOfConfig resolves the backend kind from a source-config value or
// pointer to one. This is the inverse direction of the one-to-one relation
// enforced by Register.
func KindOfConfig(cfg any) (Kind, bool) {
	t := reflect.TypeOf(cfg)
	if t == nil {
		return 0, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	k, ok := configKinds[t]
	return k, ok
}
