package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	jsval "github.com/santhosh-tekuri/jsonschema/v5"
)

// MetaSchemaURL identifies the meta-schema when compiling it.
const MetaSchemaURL = "https://sai-challenger.github.io/sai-attrgen/schema.json"

// MetaSchema returns the JSON Schema of an encoded Document.
func MetaSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference:             true,
		Anonymous:                  true,
		RequiredFromJSONSchemaTags: true,
	}

	item := r.Reflect(&ObjectTypeSchema{})
	item.Version = ""
	item.Title = "Object type"
	item.Description = "Attributes of one SAI object type."

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		ID:          jsonschema.ID(MetaSchemaURL),
		Title:       "SAI attribute schema",
		Description: "SAI object types and their attributes.",
		Type:        "array",
		Items:       item,
	}
}

// MetaSchemaJSON returns the indented JSON encoding of MetaSchema.
func MetaSchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(MetaSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding meta-schema: %w", err)
	}
	return append(data, '\n'), nil
}

// Validator checks encoded documents against the meta-schema.
type Validator struct {
	schema *jsval.Schema
}

// NewValidator compiles the meta-schema.
func NewValidator() (*Validator, error) {
	data, err := MetaSchemaJSON()
	if err != nil {
		return nil, err
	}

	compiler := jsval.NewCompiler()
	compiler.Draft = jsval.Draft2020
	if err := compiler.AddResource(MetaSchemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("adding meta-schema: %w", err)
	}
	s, err := compiler.Compile(MetaSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling meta-schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// ValidateJSON validates a JSON encoded document.
func (v *Validator) ValidateJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("document does not match meta-schema: %w", err)
	}
	return nil
}

// Validate validates the JSON encoding of doc, whatever format it will be
// written in.
func (v *Validator) Validate(doc Document) error {
	data, err := Marshal(doc, FormatJSON, false)
	if err != nil {
		return err
	}
	return v.ValidateJSON(data)
}
