package codec

import (
	"reflect"
	"strings"
	"testing"

	"github.com/carrot-e/killbill-client-go/errors"
	"github.com/carrot-e/killbill-client-go/registry"
)

type payer struct {
	Name string `json:"name"`
}

type item struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type order struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
	Payer *payer  `json:"payer"`
	Items []*item `json:"items"`
	Notes any     `json:"notes"`
}

func (o *order) TypeHints() map[string]string {
	return map[string]string{"payer": "Payer", "items": "Item"}
}

func setup(t *testing.T) {
	t.Helper()
	registry.Reset()
	registry.MustRegister("Order", func() any { return &order{} })
	registry.MustRegister("Item", func() any { return &item{} })
	registry.MustRegister("Payer", func() any { return &payer{} })
	t.Cleanup(registry.Reset)
}

func TestDecodeNull(t *testing.T) {
	setup(t)

	// Null short-circuits before any registry lookup, so even an unknown
	// target type must not raise.
	res, err := Decode("NoSuchType", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsNull() {
		t.Errorf("expected null result, got %v", res.Kind)
	}
}

func TestDecodeBareString(t *testing.T) {
	setup(t)

	res, err := Decode("Order", "a1b2c3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != KindString || res.Str != "a1b2c3" {
		t.Errorf("expected string a1b2c3, got %+v", res)
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	setup(t)

	res, err := Decode("Order", []any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != KindList {
		t.Fatalf("expected list, got %v", res.Kind)
	}
	if res.List == nil || len(res.List) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", res.List)
	}
}

func TestDecodeObject(t *testing.T) {
	setup(t)

	v, err := Parse([]byte(`{"id":"o-1","total":42.5,"payer":{"name":"Alice"},"items":[{"amount":40,"description":"plan"},{"amount":2.5,"description":"tax"}],"notes":{"internal":true}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Decode("Order", v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	o, ok := res.Resource.(*order)
	if !ok {
		t.Fatalf("expected *order, got %T", res.Resource)
	}
	if o.ID != "o-1" || o.Total != 42.5 {
		t.Errorf("unexpected scalars: %+v", o)
	}
	if o.Payer == nil || o.Payer.Name != "Alice" {
		t.Errorf("expected hinted nested payer, got %+v", o.Payer)
	}
	if len(o.Items) != 2 || o.Items[1].Description != "tax" {
		t.Errorf("expected hinted item list in order, got %+v", o.Items)
	}
	// Unhinted objects pass through as raw mappings.
	if doc, ok := o.Notes.(*Document); !ok || !doc.Has("internal") {
		t.Errorf("expected raw document for notes, got %#v", o.Notes)
	}
}

func TestDecodeArrayOfObjects(t *testing.T) {
	setup(t)

	v, err := Parse([]byte(`[{"name":"A"},{"name":"B"},{"name":"C"}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Decode("Payer", v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.List) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(res.List))
	}
	for i, want := range []string{"A", "B", "C"} {
		if p := res.List[i].(*payer); p.Name != want {
			t.Errorf("element %d: expected %s, got %s", i, want, p.Name)
		}
	}
}

func TestDecodeErrorEnvelope(t *testing.T) {
	setup(t)

	v, _ := Parse([]byte(`{"className":"com.killbill.ApiException","code":500,"message":"boom"}`))
	_, err := Decode("Order", v)
	be, ok := errors.AsBilling(err)
	if !ok {
		t.Fatalf("expected BillingError, got %v", err)
	}
	if be.Code != 500 || be.Message != "boom" {
		t.Errorf("expected code 500 message boom, got %+v", be)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	setup(t)

	v, _ := Parse([]byte(`{"id":"x"}`))
	_, err := Decode("Mystery", v)
	if !errors.IsUnknownType(err) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
}

func TestDecodeUnknownProperty(t *testing.T) {
	setup(t)

	v, _ := Parse([]byte(`{"id":"o-1","bogus":"x"}`))
	_, err := Decode("Order", v)
	if !errors.IsUnknownProperty(err) {
		t.Fatalf("expected UnknownPropertyError, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "bogus") || !strings.Contains(msg, "Order") {
		t.Errorf("expected key and type in message, got %q", msg)
	}
}

func TestEncodeSortedKeys(t *testing.T) {
	setup(t)

	o := &order{ID: "o-9", Total: 10, Payer: &payer{Name: "Bob"}}
	doc, err := Encode(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := doc.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}

func TestEncodeSkipsUnset(t *testing.T) {
	setup(t)

	doc, err := Encode(&order{ID: "o-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Has("payer") || doc.Has("items") || doc.Has("total") {
		t.Errorf("expected unset properties to be omitted, got keys %v", doc.Keys())
	}
}

func TestEncodeUnregistered(t *testing.T) {
	setup(t)

	if _, err := Encode(struct{ X int }{1}); !errors.IsUnknownType(err) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
}

func TestSerializeNested(t *testing.T) {
	setup(t)

	o := &order{
		ID:    "o-3",
		Total: 12.5,
		Items: []*item{{Amount: 12.5, Description: "sub"}},
		Payer: &payer{Name: "Eve"},
	}
	s, err := Serialize(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":"o-3","items":[{"amount":12.5,"description":"sub"}],"payer":{"name":"Eve"},"total":12.5}`
	if s != want {
		t.Errorf("unexpected output:\n got %s\nwant %s", s, want)
	}
}

func TestRoundTripFlat(t *testing.T) {
	setup(t)

	in := &item{Amount: 3.25, Description: "round trip"}
	doc, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	res, err := Decode("Item", doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(res.Resource, in) {
		t.Errorf("round trip mismatch: %+v vs %+v", res.Resource, in)
	}
}
