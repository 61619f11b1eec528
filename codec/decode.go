package codec

import (
	"fmt"

	"github.com/carrot-e/killbill-client-go/errors"
	"github.com/carrot-e/killbill-client-go/registry"
)

// Kind discriminates the variants of a decode Result.
type Kind int

const (
	// KindNull is the result of decoding JSON null or an empty body.
	KindNull Kind = iota
	// KindString is a bare string payload, passed through unchanged.
	KindString
	// KindResource is a single typed instance.
	KindResource
	// KindList is an ordered sequence of decoded values.
	KindList
	// KindRaw is the fallback for response bodies that are not valid JSON.
	KindRaw
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindResource:
		return "resource"
	case KindList:
		return "list"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Raw carries the status code and body of a response whose body could not
// be parsed as JSON.
type Raw struct {
	StatusCode int
	Body       string
}

// Result is the outcome of a decode. Exactly one variant is populated,
// selected by Kind; the zero Result is null.
type Result struct {
	Kind     Kind
	Str      string
	Resource any
	List     []any
	Raw      *Raw
}

// IsNull reports whether the result is the null variant.
func (r Result) IsNull() bool { return r.Kind == KindNull }

// Value collapses the result into a plain value: nil, string, instance,
// []any or *Raw depending on the variant.
func (r Result) Value() any {
	switch r.Kind {
	case KindString:
		return r.Str
	case KindResource:
		return r.Resource
	case KindList:
		return r.List
	case KindRaw:
		return r.Raw
	default:
		return nil
	}
}

// RawResult builds the non-JSON fallback result.
func RawResult(statusCode int, body string) Result {
	return Result{Kind: KindRaw, Raw: &Raw{StatusCode: statusCode, Body: body}}
}

// Decode converts a parsed JSON value (as produced by Parse) into a typed
// result against the named target type.
//
// Arrays decode element-wise against the same target type with order
// preserved; an empty array yields an empty list, never null. Bare strings
// and null pass through without touching the registry. Objects are checked
// for the remote error envelope first, then instantiated and populated key
// by key in wire order, recursing into hinted properties. Any error aborts
// the whole decode with no partial result.
func Decode(typeName string, value any) (Result, error) {
	switch v := value.(type) {
	case nil:
		return Result{}, nil
	case string:
		return Result{Kind: KindString, Str: v}, nil
	case []any:
		list := make([]any, 0, len(v))
		for _, el := range v {
			res, err := Decode(typeName, el)
			if err != nil {
				return Result{}, err
			}
			list = append(list, res.Value())
		}
		return Result{Kind: KindList, List: list}, nil
	case *Document:
		return decodeObject(typeName, v)
	default:
		return Result{}, fmt.Errorf("codec: cannot decode %T into %s", value, typeName)
	}
}

func decodeObject(typeName string, doc *Document) (Result, error) {
	// The error envelope takes priority over normal decoding, even when
	// the target type would otherwise accept the keys.
	if doc.Has("className") && doc.Has("code") && doc.Has("message") {
		return Result{}, envelopeError(doc)
	}

	desc, ok := registry.Lookup(typeName)
	if !ok {
		return Result{}, &errors.UnknownTypeError{Type: typeName}
	}
	inst := desc.New()

	for _, key := range doc.Keys() {
		raw, _ := doc.Get(key)
		if hint, hinted := desc.HintFor(key); hinted {
			nested, err := Decode(hint, raw)
			if err != nil {
				return Result{}, err
			}
			raw = nested.Value()
		}
		if err := desc.Set(inst, key, raw); err != nil {
			return Result{}, err
		}
	}
	return Result{Kind: KindResource, Resource: inst}, nil
}

// envelopeError builds a BillingError from an error-envelope object.
func envelopeError(doc *Document) error {
	be := &errors.BillingError{}
	if v, _ := doc.Get("className"); v != nil {
		if s, ok := v.(string); ok {
			be.Class = s
		}
	}
	if v, _ := doc.Get("code"); v != nil {
		switch n := v.(type) {
		case float64:
			be.Code = int(n)
		case int:
			be.Code = n
		}
	}
	if v, _ := doc.Get("message"); v != nil {
		if s, ok := v.(string); ok {
			be.Message = s
		}
	}
	return be
}
