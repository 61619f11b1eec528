package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/carrot-e/killbill-client-go/errors"
)

var (
	mu     sync.RWMutex
	byName = make(map[string]*Descriptor)
	byType = make(map[reflect.Type]*Descriptor)
)

// Register associates a type name with a factory producing blank instances
// and builds the property table for the type. Registering the same name
// twice is an error.
func Register(name string, factory func() any) error {
	d, err := describe(name, factory)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := byName[name]; exists {
		return fmt.Errorf("registry: type %q already registered", name)
	}
	byName[name] = d
	byType[d.typ] = d
	return nil
}

// MustRegister is like Register but panics on error. Intended for package
// init functions.
func MustRegister(name string, factory func() any) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered under a type name.
func Lookup(name string) (*Descriptor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := byName[name]
	return d, ok
}

// IsInstantiable reports whether a concrete type by that name is known.
func IsInstantiable(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Instantiate constructs a blank instance of the named type. Unknown names
// yield an UnknownTypeError.
func Instantiate(name string) (any, error) {
	d, ok := Lookup(name)
	if !ok {
		return nil, &errors.UnknownTypeError{Type: name}
	}
	return d.New(), nil
}

// DescriptorOf returns the descriptor for a live instance, matching on its
// concrete type. Used by the encoder to recognize nested resources.
func DescriptorOf(instance any) (*Descriptor, bool) {
	if instance == nil {
		return nil, false
	}
	mu.RLock()
	defer mu.RUnlock()
	d, ok := byType[reflect.TypeOf(instance)]
	return d, ok
}

// Reset clears all registered types. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	byName = make(map[string]*Descriptor)
	byType = make(map[reflect.Type]*Descriptor)
}
