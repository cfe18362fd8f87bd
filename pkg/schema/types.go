package schema

// Flag is an attribute property token.
type Flag string

const (
	FlagMandatoryOnCreate Flag = "MANDATORY_ON_CREATE"
	FlagCreateOnly        Flag = "CREATE_ONLY"
	FlagCreateAndSet      Flag = "CREATE_AND_SET"
	FlagReadOnly          Flag = "READ_ONLY"
	FlagKey               Flag = "KEY"
)

// ObjectRefs lists the object types a reference attribute may point to.
// A nil list is left out of the encoded record, an empty one is kept.
type ObjectRefs []string

// IsZero reports whether r is nil.
func (r ObjectRefs) IsZero() bool {
	return r == nil
}

// AttributeProperties is the body of an attribute record. Objects is set for
// object references only.
type AttributeProperties struct {
	Description string      `json:"description" yaml:"description" jsonschema:"required"`
	Flags       []Flag      `json:"flags" yaml:"flags" jsonschema:"required"`
	Type        string      `json:"type" yaml:"type" jsonschema:"required"`
	GenericType string      `json:"genericType,omitempty" yaml:"genericType,omitempty"`
	Objects     ObjectRefs  `json:"objects,omitzero" yaml:"objects,omitempty"`
	Values      *EnumValues `json:"values,omitempty" yaml:"values,omitempty"`
}

// AttributeSchema is the record of one attribute.
type AttributeSchema struct {
	Name       string              `json:"name" yaml:"name" jsonschema:"required"`
	Properties AttributeProperties `json:"properties" yaml:"properties" jsonschema:"required"`
}

// ObjectTypeSchema is the record of one object type. Enums is only set when
// the generator is asked for object type enums.
type ObjectTypeSchema struct {
	Name        string            `json:"name" yaml:"name" jsonschema:"required"`
	Description string            `json:"description" yaml:"description" jsonschema:"required"`
	Attributes  []AttributeSchema `json:"attributes" yaml:"attributes" jsonschema:"required"`
	Enums       *EnumValues       `json:"enums,omitempty" yaml:"enums,omitempty"`
}

// Document is the complete schema, one record per object type in catalog
// order.
type Document []ObjectTypeSchema
