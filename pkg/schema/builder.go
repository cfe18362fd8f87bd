package schema

import (
	"fmt"
	"strings"

	"github.com/sai-challenger/sai-attrgen/pkg/catalog"
)

// Builder builds attribute and object type records against one Source.
type Builder struct {
	src         Source
	types       *TypeResolver
	objectEnums bool
}

// NewBuilder returns a Builder resolving types with types. A nil resolver
// uses DefaultTypeTable.
func NewBuilder(src Source, types *TypeResolver) *Builder {
	if types == nil {
		types = NewTypeResolver(DefaultTypeTable())
	}
	return &Builder{src: src, types: types}
}

// Attribute builds the record of attr.
func (b *Builder) Attribute(attr *catalog.AttrMetadata) (AttributeSchema, error) {
	props := AttributeProperties{
		Description: attr.Brief,
		Flags:       ExtractFlags(attr),
	}

	rt := b.types.Resolve(b.src.ShortTypeName(attr.ValueType))
	props.Type = rt.Name
	props.GenericType = rt.GenericName()

	if rt.IsObjectReference() {
		objects, err := ResolveObjects(attr.AllowedObjectTypes, b.src)
		if err != nil {
			return AttributeSchema{}, fmt.Errorf("attribute %s: %w", attr.IDName, err)
		}
		props.Objects = ObjectRefs(objects)
	}

	if attr.IsEnum || attr.IsEnumList {
		if attr.Enum == nil {
			return AttributeSchema{}, &catalog.IntegrityError{Kind: catalog.ErrMissingEnum, Attribute: attr.IDName}
		}
		props.Values = ExtractEnumValues(attr.Enum)
	}

	return AttributeSchema{Name: attr.IDName, Properties: props}, nil
}

// ObjectType builds the record of ot with its attributes in catalog order.
func (b *Builder) ObjectType(ot *catalog.ObjectTypeInfo) (ObjectTypeSchema, error) {
	out := ObjectTypeSchema{
		Name:        ot.Name,
		Description: Description(ot.Name),
		Attributes:  make([]AttributeSchema, 0, len(ot.Attributes)),
	}
	for _, attr := range ot.Attributes {
		as, err := b.Attribute(attr)
		if err != nil {
			return ObjectTypeSchema{}, fmt.Errorf("object type %s: %w", ot.Name, err)
		}
		out.Attributes = append(out.Attributes, as)
	}
	if b.objectEnums && ot.Enum != nil {
		out.Enums = ExtractEnumValues(ot.Enum)
	}
	return out, nil
}

// Description derives an object type description from its name:
// "SAI_OBJECT_TYPE_PORT" becomes "sai object type port.".
func Description(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", " ")) + "."
}
