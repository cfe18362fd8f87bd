// Package catalog holds the SAI attribute metadata model consumed by the
// schema generator.
//
// # Layout
//
// A Catalog mirrors the shape of the SAI metadata tables:
//
//	Catalog
//	├── ValueTypes   short value-type names, indexed by attribute value type
//	├── Enums        enum definitions (sai_packet_action_t, sai_port_attr_t, ...)
//	└── ObjectTypes  object type infos, indexed by object type
//	    ├── [0]      sentinel (SAI_OBJECT_TYPE_NULL), never emitted
//	    ├── [1..n]   object types with their attribute metadata
//	    └── nil      optional terminator, anything after it is ignored
//
// Attribute metadata refers to other object types by index into ObjectTypes
// and to value types by index into ValueTypes. An index outside ValueTypes is
// not an error and reads as "undefined". An object-type index outside
// ObjectTypes is a catalog integrity error.
//
// # Sources
//
// Catalogs are either built in code, parsed from YAML with Parse or Load, or
// taken from the embedded SAI subset returned by Default.
package catalog
