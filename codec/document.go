package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Document is an ordered string-keyed mapping representing a JSON object.
// Unmarshaling preserves the key order of the wire payload; marshaling
// emits keys in stored order.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{values: make(map[string]any)}
}

// Set stores a value under a key, appending the key on first insert and
// keeping its position on overwrite.
func (d *Document) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under a key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether a key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Len returns the number of keys.
func (d *Document) Len() int { return len(d.keys) }

// Keys returns a copy of the keys in their current order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Sort orders the keys lexicographically.
func (d *Document) Sort() {
	sort.Strings(d.keys)
}

// MarshalJSON emits the document as a JSON object in stored key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object preserving wire key order.
func (d *Document) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("codec: expected JSON object, got %v", tok)
	}
	parsed, err := parseObject(dec)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// Parse reads an arbitrary JSON value into an ordered tree: objects become
// *Document, arrays []any, and scalars their Go equivalents (string,
// float64, bool, nil).
func Parse(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("codec: trailing data after JSON value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("codec: unexpected delimiter %q", delim.String())
		}
	}
	return tok, nil
}

func parseObject(dec *json.Decoder) (*Document, error) {
	doc := NewDocument()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("codec: object key is not a string: %v", keyTok)
		}
		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		doc.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return doc, nil
}

func parseArray(dec *json.Decoder) ([]any, error) {
	arr := make([]any, 0)
	for dec.More() {
		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return arr, nil
}
