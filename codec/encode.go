package codec

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/carrot-e/killbill-client-go/errors"
	"github.com/carrot-e/killbill-client-go/registry"
)

// Encode converts a registered resource instance into an ordered mapping
// ready for JSON serialization. Nested registered resources are encoded in
// place, slices are encoded element-wise, scalars pass through unchanged
// and unset (zero) properties are omitted. Keys are sorted so the output
// is deterministic regardless of field declaration order.
func Encode(instance any) (*Document, error) {
	desc, ok := registry.DescriptorOf(instance)
	if !ok {
		return nil, &errors.UnknownTypeError{Type: fmt.Sprintf("%T", instance)}
	}

	doc := NewDocument()
	for _, name := range desc.PropertyNames() {
		v, _ := desc.Get(instance, name)
		if isZero(v) {
			continue
		}
		enc, err := encodeValue(v)
		if err != nil {
			return nil, err
		}
		doc.Set(name, enc)
	}
	doc.Sort()
	return doc, nil
}

// Serialize encodes an instance and JSON-encodes the resulting mapping.
func Serialize(instance any) (string, error) {
	doc, err := Encode(instance)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encodeValue(v any) (any, error) {
	if _, ok := registry.DescriptorOf(v); ok {
		return Encode(v)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			enc, err := encodeValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	}
	return v, nil
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
