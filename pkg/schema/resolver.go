package schema

import (
	"maps"
	"strings"
	"sync"

	"github.com/sai-challenger/sai-attrgen/pkg/catalog"
)

// Canonical names of the object reference types.
const (
	TypeObjectID   = "sai_object_id_t"
	TypeObjectList = "sai_object_list_t"
)

// Compound ACL patterns, in match order.
const (
	PatternACLFieldData  = "acl_field_data"
	PatternACLActionData = "acl_action_data"
)

// TypeTable is the configuration of a TypeResolver. Exact maps lowercase tags
// to canonical names. Compound lists the substrings that mark a compound type.
type TypeTable struct {
	Exact    map[string]string
	Compound []string
}

// DefaultTypeTable returns the SAI type table.
func DefaultTypeTable() TypeTable {
	return TypeTable{
		Exact: map[string]string{
			"bool":            "bool",
			"macsec_sci":      "bool",
			"macsec_ssci":     "sai_uint32_t",
			"chardata":        "char",
			"int8_list":       "sai_s8_list_t",
			"uint8_list":      "sai_u8_list_t",
			"int16_list":      "sai_s16_list_t",
			"uint16_list":     "sai_u16_list_t",
			"int32_list":      "sai_s32_list_t",
			"uint32_list":     "sai_u32_list_t",
			"int32_range":     "sai_s32_range_t",
			"uint32_range":    "sai_u32_range_t",
			catalog.Undefined: catalog.Undefined,
		},
		Compound: []string{PatternACLFieldData, PatternACLActionData},
	}
}

// ResolvedType is a canonical type. Generic is set for compound types only
// and holds the resolved inner type.
type ResolvedType struct {
	Name    string
	Generic *ResolvedType
}

// IsCompound reports whether r wraps an inner type.
func (r ResolvedType) IsCompound() bool {
	return r.Generic != nil
}

// GenericName returns the inner type name, or "" for a scalar type.
func (r ResolvedType) GenericName() string {
	if r.Generic == nil {
		return ""
	}
	return r.Generic.Name
}

// IsObjectReference reports whether the type holds object ids.
func (r ResolvedType) IsObjectReference() bool {
	return r.Name == TypeObjectID || r.Name == TypeObjectList
}

// TypeResolver maps value-type tags to canonical type names. It is safe for
// concurrent use and memoises its results.
type TypeResolver struct {
	exact    map[string]string
	compound []string
	cache    sync.Map // lowercase tag -> ResolvedType
}

// NewTypeResolver returns a resolver for table. The table is copied.
func NewTypeResolver(table TypeTable) *TypeResolver {
	return &TypeResolver{
		exact:    maps.Clone(table.Exact),
		compound: append([]string(nil), table.Compound...),
	}
}

// Resolve returns the canonical type of tag. The tag is compared
// case-insensitively. Unknown tags resolve to sai_<tag>_t.
func (r *TypeResolver) Resolve(tag string) ResolvedType {
	norm := strings.ToLower(tag)
	if v, ok := r.cache.Load(norm); ok {
		return v.(ResolvedType)
	}
	rt := r.resolve(norm)
	r.cache.Store(norm, rt)
	return rt
}

func (r *TypeResolver) resolve(norm string) ResolvedType {
	if name, ok := r.exact[norm]; ok {
		return ResolvedType{Name: name}
	}

	for _, pattern := range r.compound {
		i := strings.Index(norm, pattern)
		if i < 0 {
			continue
		}
		rt := ResolvedType{Name: "sai_" + pattern + "_t"}
		// pattern is followed by a separator, then the inner tag
		sub := norm[i+len(pattern):]
		if len(sub) > 1 {
			inner := r.Resolve(sub[1:])
			rt.Generic = &inner
		}
		return rt
	}

	return ResolvedType{Name: "sai_" + norm + "_t"}
}
