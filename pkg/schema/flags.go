package schema

import "github.com/sai-challenger/sai-attrgen/pkg/catalog"

// ExtractFlags returns the property flags set on attr, always in the order
// MANDATORY_ON_CREATE, CREATE_ONLY, CREATE_AND_SET, READ_ONLY, KEY. The result
// is never nil.
func ExtractFlags(attr *catalog.AttrMetadata) []Flag {
	flags := make([]Flag, 0, 5)
	if attr.MandatoryOnCreate {
		flags = append(flags, FlagMandatoryOnCreate)
	}
	if attr.CreateOnly {
		flags = append(flags, FlagCreateOnly)
	}
	if attr.CreateAndSet {
		flags = append(flags, FlagCreateAndSet)
	}
	if attr.ReadOnly {
		flags = append(flags, FlagReadOnly)
	}
	if attr.Key {
		flags = append(flags, FlagKey)
	}
	return flags
}
