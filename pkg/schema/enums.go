package schema

import (
	"encoding/binary"
	"iter"

	"github.com/fxamacker/cbor/v2"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/sai-challenger/sai-attrgen/pkg/catalog"
)

// EnumValues is an ordered mapping from enum value name to integer value.
// Setting an existing name replaces its value and keeps its position.
type EnumValues struct {
	m *orderedmap.OrderedMap[string, int64]
}

// NewEnumValues returns an empty mapping.
func NewEnumValues() *EnumValues {
	return &EnumValues{m: orderedmap.New[string, int64]()}
}

// ExtractEnumValues builds the mapping of def in declared order. A repeated
// name keeps the value of its last occurrence.
func ExtractEnumValues(def *catalog.EnumMetadata) *EnumValues {
	ev := NewEnumValues()
	for _, v := range def.Values {
		ev.Set(v.Name, v.Value)
	}
	return ev
}

// Set stores value under name.
func (e *EnumValues) Set(name string, value int64) {
	e.m.Set(name, value)
}

// Get returns the value stored under name.
func (e *EnumValues) Get(name string) (int64, bool) {
	return e.m.Get(name)
}

// Len returns the number of entries.
func (e *EnumValues) Len() int {
	if e == nil {
		return 0
	}
	return e.m.Len()
}

// All iterates the entries in order.
func (e *EnumValues) All() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		if e == nil {
			return
		}
		for p := e.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns the names in order.
func (e *EnumValues) Keys() []string {
	keys := make([]string, 0, e.Len())
	for k := range e.All() {
		keys = append(keys, k)
	}
	return keys
}

// MarshalJSON encodes the mapping as a JSON object in entry order.
func (e *EnumValues) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return e.m.MarshalJSON()
}

// MarshalCBOR encodes the mapping as a CBOR map in entry order.
func (e *EnumValues) MarshalCBOR() ([]byte, error) {
	if e == nil {
		return []byte{0xf6}, nil // null
	}
	buf := appendCBORHead(nil, 0xa0, uint64(e.Len()))
	for k, v := range e.All() {
		key, err := cbor.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := cbor.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, val...)
	}
	return buf, nil
}

// appendCBORHead appends a CBOR data item head for the given major type
// (already shifted into the high bits) and argument.
func appendCBORHead(b []byte, major byte, n uint64) []byte {
	switch {
	case n < 24:
		return append(b, major|byte(n))
	case n <= 0xff:
		return append(b, major|24, byte(n))
	case n <= 0xffff:
		return binary.BigEndian.AppendUint16(append(b, major|25), uint16(n))
	case n <= 0xffffffff:
		return binary.BigEndian.AppendUint32(append(b, major|26), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(b, major|27), n)
	}
}

// MarshalYAML encodes the mapping as a YAML mapping in entry order.
func (e *EnumValues) MarshalYAML() (any, error) {
	if e == nil {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	return e.m.MarshalYAML()
}

// JSONSchema describes the JSON form of the mapping.
func (EnumValues) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: &jsonschema.Schema{Type: "integer"},
	}
}
