package grafo

import (
	"fmt"
	"reflect"
	"sync"
)

// registry memoizes resolved descriptions and derived marshallers per
// record type for the lifetime of the process. Resolution runs outside
// the lock and the first stored result wins, so concurrent callers for
// the same type always observe a single shared value.
var registry = &typeCache{
	descriptions: make(map[reflect.Type]*Description),
	failures:     make(map[reflect.Type]error),
	marshallers:  make(map[reflect.Type]any),
}

type typeCache struct {
	mu           sync.RWMutex
	descriptions map[reflect.Type]*Description
	failures     map[reflect.Type]error
	marshallers  map[reflect.Type]any
}

// describeType returns the cached description of a record type,
// resolving and caching it on first use. Resolution failures are cached
// as well, so a broken declaration reports the same error every time.
func describeType(t reflect.Type) (*Description, error) {
	registry.mu.RLock()
	d, ok := registry.descriptions[t]
	err, failed := registry.failures[t]
	registry.mu.RUnlock()
	if ok {
		return d, nil
	}
	if failed {
		return nil, err
	}
	d, err = resolveDescription(t)
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if prev, ok := registry.descriptions[t]; ok {
		return prev, nil
	}
	if prev, ok := registry.failures[t]; ok {
		return nil, prev
	}
	if err != nil {
		registry.failures[t] = err
		return nil, err
	}
	registry.descriptions[t] = d
	return d, nil
}

// MarshallerFor returns the marshaller for the record type T, deriving
// one from its declared fields unless a marshaller was registered
// explicitly. The result is cached and shared across callers.
func MarshallerFor[T any]() (Marshaller[T], error) {
	t := typeFor[T]()
	registry.mu.RLock()
	m, ok := registry.marshallers[t]
	registry.mu.RUnlock()
	if ok {
		return m.(Marshaller[T]), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, NewUnsupportedTypeError(t)
	}
	d, err := describeType(t)
	if err != nil {
		return nil, err
	}
	dm := derived[T]{d: d}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if prev, ok := registry.marshallers[t]; ok {
		return prev.(Marshaller[T]), nil
	}
	registry.marshallers[t] = Marshaller[T](dm)
	return dm, nil
}

// Register installs a marshaller for the record type T, bypassing
// derivation. It is intended to be called from generated code during
// package initialization and panics when T already has a marshaller.
func Register[T any](m Marshaller[T]) {
	t := typeFor[T]()
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.marshallers[t]; ok {
		panic(fmt.Sprintf("grafo: marshaller already registered for type %s", t))
	}
	registry.marshallers[t] = m
}

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
