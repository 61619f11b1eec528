package registry

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/carrot-e/killbill-client-go/errors"
)

// Hinted is implemented by resource types whose properties decode into
// nested typed resources. The returned map associates a JSON property name
// with the registered type name of its value; properties absent from the
// map decode as plain values.
type Hinted interface {
	TypeHints() map[string]string
}

// property describes a single settable property of a registered type.
type property struct {
	name  string
	hint  string
	index []int
	typ   reflect.Type
}

// Descriptor holds the per-type tables built at registration: a factory for
// blank instances and a property table keyed by JSON property name.
type Descriptor struct {
	name    string
	typ     reflect.Type
	factory func() any
	props   map[string]*property
	order   []string
}

// Name returns the registered type name.
func (d *Descriptor) Name() string { return d.name }

// New constructs a blank instance of the described type.
func (d *Descriptor) New() any { return d.factory() }

// HasProperty reports whether the type has a settable property by that name.
func (d *Descriptor) HasProperty(name string) bool {
	_, ok := d.props[name]
	return ok
}

// HintFor returns the nested-type name declared for a property, if any.
func (d *Descriptor) HintFor(name string) (string, bool) {
	p, ok := d.props[name]
	if !ok || p.hint == "" {
		return "", false
	}
	return p.hint, true
}

// PropertyNames returns the property names in declaration order.
func (d *Descriptor) PropertyNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Get reads the current value of a property from an instance. The second
// return is false when the property does not exist or the instance is not
// of the described type.
func (d *Descriptor) Get(instance any, name string) (any, bool) {
	p, ok := d.props[name]
	if !ok {
		return nil, false
	}
	rv := reflect.ValueOf(instance)
	if rv.Type() != d.typ {
		return nil, false
	}
	return rv.Elem().FieldByIndex(p.index).Interface(), true
}

// Set writes a decoded value into a property of an instance, coercing
// numeric kinds and slice element types as needed. An unknown property name
// yields an UnknownPropertyError.
func (d *Descriptor) Set(instance any, name string, value any) error {
	p, ok := d.props[name]
	if !ok {
		return &errors.UnknownPropertyError{Type: d.name, Property: name}
	}
	rv := reflect.ValueOf(instance)
	if rv.Type() != d.typ {
		return fmt.Errorf("registry: %T is not an instance of %s", instance, d.name)
	}
	field := rv.Elem().FieldByIndex(p.index)
	if err := assign(field, value); err != nil {
		return fmt.Errorf("registry: property %q of %s: %w", name, d.name, err)
	}
	return nil
}

// describe builds a Descriptor from a prototype instance, which must be a
// pointer to struct.
func describe(name string, factory func() any) (*Descriptor, error) {
	proto := factory()
	rt := reflect.TypeOf(proto)
	if rt == nil || rt.Kind() != reflect.Pointer || rt.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("registry: prototype for %q must be a pointer to struct, got %T", name, proto)
	}

	var hints map[string]string
	if h, ok := proto.(Hinted); ok {
		hints = h.TypeHints()
	}

	d := &Descriptor{
		name:    name,
		typ:     rt,
		factory: factory,
		props:   make(map[string]*property),
	}
	collectProperties(d, rt.Elem(), nil, hints)
	return d, nil
}

// collectProperties walks the struct fields, flattening anonymous embedded
// structs, and fills the descriptor's property table.
func collectProperties(d *Descriptor, st reflect.Type, prefix []int, hints map[string]string) {
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		index := append(append([]int(nil), prefix...), i)

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectProperties(d, f.Type, index, hints)
			continue
		}
		if f.PkgPath != "" {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		if _, dup := d.props[name]; dup {
			continue
		}

		d.props[name] = &property{
			name:  name,
			hint:  hints[name],
			index: index,
			typ:   f.Type,
		}
		d.order = append(d.order, name)
	}
}

// assign sets a decoded JSON value into a struct field, converting between
// numeric kinds and rebuilding slices element by element.
func assign(field reflect.Value, value any) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	v := reflect.ValueOf(value)
	ft := field.Type()

	switch {
	case v.Type().AssignableTo(ft):
		field.Set(v)
	case numericKind(v.Kind()) && numericKind(ft.Kind()):
		field.Set(v.Convert(ft))
	case ft.Kind() == reflect.Slice && v.Kind() == reflect.Slice:
		out := reflect.MakeSlice(ft, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			if err := assign(out.Index(i), v.Index(i).Interface()); err != nil {
				return err
			}
		}
		field.Set(out)
	default:
		return fmt.Errorf("cannot assign %T to %s", value, ft)
	}
	return nil
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
