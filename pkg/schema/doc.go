// Package schema turns a SAI attribute metadata catalog into a schema
// document: one record per object type, each listing its attributes with
// their canonical type, property flags, allowed object types and enum values.
//
// # Building a Document
//
// A Generator walks a Source (normally a *catalog.Catalog):
//
//	doc, err := schema.NewGenerator().Generate(cat)
//
// The first object type of the source is the "no object type" sentinel and is
// skipped. A nil entry ends the walk.
//
// # Type Names
//
// Attribute value types are reported by their short tag (OBJECT_ID,
// INT32_LIST, ACL_FIELD_DATA_UINT8, ...). TypeResolver maps a tag to the
// canonical C type name. ACL field and action data become
// sai_acl_field_data_t and sai_acl_action_data_t with the inner type reported
// as genericType. Tags missing from the table become sai_<tag>_t.
//
// # Output
//
// Marshal encodes a Document as JSON (default), CBOR or YAML. Enum values keep
// their declared order in every encoding. MetaSchema describes the JSON form
// and Validator checks encoded output against it.
package schema
