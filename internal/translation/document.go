package translation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var (
	// ErrInvalidJSON is returned when a document is not valid JSON
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrNotObject is returned when a document is valid JSON but not an object
	ErrNotObject = errors.New("document is not a JSON object")
)

// encodeOptions produce 2-space indented output with keys left in document order
var encodeOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Document is an ordered key/value translation document. Values are kept as raw
// JSON so nested structures survive a merge untouched.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// Parse decodes a JSON object into a Document, preserving key order.
// Duplicate keys keep their first position and their last value.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: found %s", ErrNotObject, describe(parsed))
	}

	doc := NewDocument()
	parsed.ForEach(func(key, value gjson.Result) bool {
		doc.Set(key.String(), json.RawMessage(value.Raw))
		return true
	})

	return doc, nil
}

func describe(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "array"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	default:
		return "null"
	}
}

// Set stores a raw JSON value. An existing key keeps its position.
func (d *Document) Set(key string, value json.RawMessage) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// SetString stores a plain string value
func (d *Document) SetString(key, value string) {
	d.Set(key, json.RawMessage(encodeString(value)))
}

// Get returns the raw JSON value stored for key
func (d *Document) Get(key string) (json.RawMessage, bool) {
	v, ok := d.values[key]
	return v, ok
}

// String returns the value for key rendered as a string. Non-string values
// are returned as their JSON text.
func (d *Document) String(key string) (string, bool) {
	v, ok := d.values[key]
	if !ok {
		return "", false
	}
	return gjson.ParseBytes(v).String(), true
}

// Keys returns the keys in document order
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of keys
func (d *Document) Len() int {
	return len(d.keys)
}

// Merge shallow-merges src into d. Colliding keys take the value from src;
// nested objects are replaced wholesale, never combined.
func (d *Document) Merge(src *Document) {
	if src == nil {
		return
	}
	for _, key := range src.keys {
		d.Set(key, src.values[key])
	}
}

// MarshalJSON implements json.Marshaler with compact, order-preserving output
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeString(key))
		buf.WriteByte(':')
		buf.Write(d.values[key])
	}
	buf.WriteByte('}')

	if !gjson.ValidBytes(buf.Bytes()) {
		return nil, fmt.Errorf("encode document: %w", ErrInvalidJSON)
	}
	return buf.Bytes(), nil
}

// Encode renders the document with 2-space indentation and a trailing newline
func (d *Document) Encode() ([]byte, error) {
	raw, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(raw, encodeOptions), nil
}

// encodeString quotes s as a JSON string without HTML escaping
func encodeString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string never fails
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}
