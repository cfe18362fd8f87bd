package catalog

import "fmt"

// EnumValue is one named value of an enum definition.
type EnumValue struct {
	Name  string
	Value int64
}

// EnumMetadata is an ordered enum definition. Names are expected to be
// unique but this is not checked.
type EnumMetadata struct {
	Name   string
	Values []EnumValue
}

// AttrMetadata describes one attribute of an object type.
type AttrMetadata struct {
	IDName string
	Brief  string

	// ValueType indexes Catalog.ValueTypes.
	ValueType int

	MandatoryOnCreate bool
	CreateOnly        bool
	CreateAndSet      bool
	ReadOnly          bool
	Key               bool

	// AllowedObjectTypes indexes Catalog.ObjectTypes. Only meaningful for
	// object id and object list attributes.
	AllowedObjectTypes []int

	IsEnum     bool
	IsEnumList bool
	Enum       *EnumMetadata
}

// ObjectTypeInfo describes one object type and its attributes in declaration
// order.
type ObjectTypeInfo struct {
	Name       string
	Attributes []*AttrMetadata

	// Enum is the object type's attribute id enum (sai_port_attr_t for
	// SAI_OBJECT_TYPE_PORT), if the catalog carries one.
	Enum *EnumMetadata
}

// Catalog is the complete attribute metadata model.
//
// ObjectTypes[0] is the sentinel "no object type" entry. A nil entry ends the
// list early.
type Catalog struct {
	ValueTypes  []string
	ObjectTypes []*ObjectTypeInfo
	Enums       []*EnumMetadata
}

// New returns an empty catalog using the default SAI value types and the
// given sentinel name at index 0.
func New(sentinel string) *Catalog {
	return &Catalog{
		ValueTypes:  DefaultValueTypes(),
		ObjectTypes: []*ObjectTypeInfo{{Name: sentinel}},
	}
}

// ObjectTypeInfos returns the sized object type list, sentinel included.
func (c *Catalog) ObjectTypeInfos() []*ObjectTypeInfo {
	return c.ObjectTypes
}

// ObjectTypeName returns the name of the object type at index.
func (c *Catalog) ObjectTypeName(index int) (string, error) {
	if index < 0 || index >= len(c.ObjectTypes) || c.ObjectTypes[index] == nil {
		return "", &IntegrityError{Kind: ErrUnknownObjectType, Ref: fmt.Sprintf("index %d", index)}
	}
	return c.ObjectTypes[index].Name, nil
}

// ObjectTypeIndex returns the index of the named object type, or -1.
func (c *Catalog) ObjectTypeIndex(name string) int {
	for i, ot := range c.ObjectTypes {
		if ot == nil {
			break
		}
		if ot.Name == name {
			return i
		}
	}
	return -1
}

// EnumByName returns the named enum definition, or nil.
func (c *Catalog) EnumByName(name string) *EnumMetadata {
	for _, e := range c.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Add appends an object type and returns its index.
func (c *Catalog) Add(ot *ObjectTypeInfo) int {
	c.ObjectTypes = append(c.ObjectTypes, ot)
	return len(c.ObjectTypes) - 1
}
