package schema

import "github.com/sai-challenger/sai-attrgen/pkg/catalog"

// Source is the catalog a document is generated from. *catalog.Catalog
// implements it.
type Source interface {
	ObjectNamer

	// ObjectTypeInfos returns the sized object type list. Index 0 is the
	// sentinel; a nil entry ends the list.
	ObjectTypeInfos() []*catalog.ObjectTypeInfo

	// ShortTypeName returns the short value-type tag for an attribute value
	// type index, or catalog.Undefined when the index is out of range.
	ShortTypeName(index int) string
}

var _ Source = (*catalog.Catalog)(nil)
