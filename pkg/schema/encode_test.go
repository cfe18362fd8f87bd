package schema

import (
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func smallDocument() Document {
	portType := NewEnumValues()
	portType.Set("SAI_PORT_TYPE_LOGICAL", 0)
	portType.Set("SAI_PORT_TYPE_CPU", 1)

	return Document{{
		Name:        "SAI_OBJECT_TYPE_PORT",
		Description: "sai object type port.",
		Attributes: []AttributeSchema{
			{
				Name: "SAI_PORT_ATTR_TYPE",
				Properties: AttributeProperties{
					Description: "Port type",
					Flags:       []Flag{FlagReadOnly},
					Type:        "sai_int32_t",
					Values:      portType,
				},
			},
			{
				Name: "SAI_PORT_ATTR_INGRESS_ACL",
				Properties: AttributeProperties{
					Description: "ACL binding point",
					Flags:       []Flag{},
					Type:        "sai_object_id_t",
					Objects:     ObjectRefs{"SAI_OBJECT_TYPE_ACL_TABLE", "SAI_OBJECT_TYPE_ACL_TABLE_GROUP"},
				},
			},
			{
				Name: "SAI_PORT_ATTR_FIELD",
				Properties: AttributeProperties{
					Description: "<field>",
					Flags:       []Flag{FlagCreateOnly, FlagKey},
					Type:        "sai_acl_field_data_t",
					GenericType: "bool",
				},
			},
		},
	}}
}

// decoded mirrors the encoded layout for round trips through CBOR and YAML.
type decoded struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Attributes  []struct {
		Name       string `json:"name" yaml:"name"`
		Properties struct {
			Description string           `json:"description" yaml:"description"`
			Flags       []string         `json:"flags" yaml:"flags"`
			Type        string           `json:"type" yaml:"type"`
			GenericType string           `json:"genericType" yaml:"genericType"`
			Objects     []string         `json:"objects" yaml:"objects"`
			Values      map[string]int64 `json:"values" yaml:"values"`
		} `json:"properties" yaml:"properties"`
	} `json:"attributes" yaml:"attributes"`
}

func checkDecoded(t *testing.T, got []decoded) {
	t.Helper()
	require.Len(t, got, 1)
	assert.Equal(t, "SAI_OBJECT_TYPE_PORT", got[0].Name)
	assert.Equal(t, "sai object type port.", got[0].Description)
	require.Len(t, got[0].Attributes, 3)

	typ := got[0].Attributes[0].Properties
	assert.Equal(t, []string{"READ_ONLY"}, typ.Flags)
	assert.Equal(t, map[string]int64{"SAI_PORT_TYPE_LOGICAL": 0, "SAI_PORT_TYPE_CPU": 1}, typ.Values)

	acl := got[0].Attributes[1].Properties
	assert.Empty(t, acl.Flags)
	assert.Equal(t, []string{"SAI_OBJECT_TYPE_ACL_TABLE", "SAI_OBJECT_TYPE_ACL_TABLE_GROUP"}, acl.Objects)

	field := got[0].Attributes[2].Properties
	assert.Equal(t, "sai_acl_field_data_t", field.Type)
	assert.Equal(t, "bool", field.GenericType)
	assert.Equal(t, []string{"CREATE_ONLY", "KEY"}, field.Flags)
}

func TestMarshal_JSON(t *testing.T) {
	data, err := Marshal(smallDocument(), FormatJSON, false)
	require.NoError(t, err)

	want := `[{"name":"SAI_OBJECT_TYPE_PORT","description":"sai object type port.","attributes":[` +
		`{"name":"SAI_PORT_ATTR_TYPE","properties":{"description":"Port type","flags":["READ_ONLY"],"type":"sai_int32_t","values":{"SAI_PORT_TYPE_LOGICAL":0,"SAI_PORT_TYPE_CPU":1}}},` +
		`{"name":"SAI_PORT_ATTR_INGRESS_ACL","properties":{"description":"ACL binding point","flags":[],"type":"sai_object_id_t","objects":["SAI_OBJECT_TYPE_ACL_TABLE","SAI_OBJECT_TYPE_ACL_TABLE_GROUP"]}},` +
		`{"name":"SAI_PORT_ATTR_FIELD","properties":{"description":"\u003cfield\u003e","flags":["CREATE_ONLY","KEY"],"type":"sai_acl_field_data_t","genericType":"bool"}}` +
		"]}]\n"
	assert.Equal(t, want, string(data))
}

func TestMarshal_JSONIndent(t *testing.T) {
	data, err := Marshal(smallDocument(), FormatJSON, true)
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "[\n  {\n    \"name\": \"SAI_OBJECT_TYPE_PORT\","), s)
	assert.Contains(t, s, "\"values\": {\n")
	assert.Contains(t, s, "\"SAI_PORT_TYPE_LOGICAL\": 0,\n")
	assert.True(t, strings.HasSuffix(s, "]\n"))
}

func TestMarshal_NilDocument(t *testing.T) {
	data, err := Marshal(nil, FormatJSON, false)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	data, err = Marshal(nil, FormatYAML, false)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestMarshal_CBOR(t *testing.T) {
	data, err := Marshal(smallDocument(), FormatCBOR, false)
	require.NoError(t, err)

	// array(1) then map(3)
	assert.Equal(t, byte(0x81), data[0])
	assert.Equal(t, byte(0xa3), data[1])

	var got []decoded
	require.NoError(t, cbor.Unmarshal(data, &got))
	checkDecoded(t, got)
}

func TestMarshal_YAML(t *testing.T) {
	data, err := Marshal(smallDocument(), FormatYAML, false)
	require.NoError(t, err)

	var got []decoded
	require.NoError(t, yaml.Unmarshal(data, &got))
	checkDecoded(t, got)

	s := string(data)
	// enum values keep their declared order
	assert.Less(t, strings.Index(s, "SAI_PORT_TYPE_LOGICAL"), strings.Index(s, "SAI_PORT_TYPE_CPU"))
	assert.NotContains(t, s, "genericType: \"\"")
}

func TestMarshal_UnknownFormat(t *testing.T) {
	_, err := Marshal(smallDocument(), Format("xml"), false)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{" cbor ", FormatCBOR, false},
		{"Yaml", FormatYAML, false},
		{"yml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_Text(t *testing.T) {
	var f Format
	require.NoError(t, f.UnmarshalText([]byte("YAML")))
	assert.Equal(t, FormatYAML, f)

	text, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "yaml", string(text))

	assert.Error(t, f.UnmarshalText([]byte("toml")))
	assert.Equal(t, FormatYAML, f, "failed parse leaves the value unchanged")
}

func TestMarshal_JSONEscapesConsistently(t *testing.T) {
	values := NewEnumValues()
	values.Set("A<&>", 1)
	doc := Document{{
		Name:        "SAI_OBJECT_TYPE_X",
		Description: "<x> & y",
		Attributes:  []AttributeSchema{},
		Enums:       values,
	}}

	data, err := Marshal(doc, FormatJSON, false)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"description":"\u003cx\u003e \u0026 y"`)
	assert.Contains(t, s, `"enums":{"A\u003c\u0026\u003e":1}`)
	assert.NotContains(t, s, "<")
	assert.NotContains(t, s, "&")
}
