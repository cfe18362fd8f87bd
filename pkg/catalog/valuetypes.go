package catalog

import "strings"

// Undefined is the short type name reported for a value-type index the
// catalog does not define.
const Undefined = "undefined"

// defaultValueTypes lists the short names of sai_attr_value_type_t in
// declaration order, so the slice index is the attribute value type.
var defaultValueTypes = []string{
	"BOOL",
	"CHARDATA",
	"UINT8",
	"INT8",
	"UINT16",
	"INT16",
	"UINT32",
	"INT32",
	"UINT64",
	"INT64",
	"POINTER",
	"MAC",
	"IPV4",
	"IPV6",
	"IP_ADDRESS",
	"IP_PREFIX",
	"PRBS_RX_STATE",
	"OBJECT_ID",
	"OBJECT_LIST",
	"UINT8_LIST",
	"INT8_LIST",
	"UINT16_LIST",
	"INT16_LIST",
	"UINT32_LIST",
	"INT32_LIST",
	"UINT32_RANGE",
	"INT32_RANGE",
	"UINT16_RANGE_LIST",
	"VLAN_LIST",
	"QOS_MAP_LIST",
	"MAP_LIST",
	"ACL_FIELD_DATA_BOOL",
	"ACL_FIELD_DATA_UINT8",
	"ACL_FIELD_DATA_INT8",
	"ACL_FIELD_DATA_UINT16",
	"ACL_FIELD_DATA_INT16",
	"ACL_FIELD_DATA_UINT32",
	"ACL_FIELD_DATA_INT32",
	"ACL_FIELD_DATA_UINT64",
	"ACL_FIELD_DATA_MAC",
	"ACL_FIELD_DATA_IPV4",
	"ACL_FIELD_DATA_IPV6",
	"ACL_FIELD_DATA_MACSEC_SCI",
	"ACL_FIELD_DATA_OBJECT_ID",
	"ACL_FIELD_DATA_OBJECT_LIST",
	"ACL_FIELD_DATA_UINT8_LIST",
	"ACL_ACTION_DATA_BOOL",
	"ACL_ACTION_DATA_UINT8",
	"ACL_ACTION_DATA_INT8",
	"ACL_ACTION_DATA_UINT16",
	"ACL_ACTION_DATA_INT16",
	"ACL_ACTION_DATA_UINT32",
	"ACL_ACTION_DATA_INT32",
	"ACL_ACTION_DATA_MAC",
	"ACL_ACTION_DATA_IPV4",
	"ACL_ACTION_DATA_IPV6",
	"ACL_ACTION_DATA_MACSEC_SCI",
	"ACL_ACTION_DATA_IP_ADDRESS",
	"ACL_ACTION_DATA_OBJECT_ID",
	"ACL_ACTION_DATA_OBJECT_LIST",
	"ACL_CAPABILITY",
	"ACL_RESOURCE_LIST",
	"TLV_LIST",
	"SEGMENT_LIST",
	"IP_ADDRESS_LIST",
	"PORT_EYE_VALUES_LIST",
	"TIMESPEC",
	"NAT_ENTRY_DATA",
	"ENCRYPT_KEY",
	"AUTH_KEY",
	"MACSEC_SAK",
	"MACSEC_AUTH_KEY",
	"MACSEC_SALT",
	"MACSEC_SCI",
	"MACSEC_SSCI",
	"SYSTEM_PORT_CONFIG",
	"SYSTEM_PORT_CONFIG_LIST",
	"FABRIC_PORT_REACHABILITY",
	"PORT_ERR_STATUS_LIST",
	"LATCH_STATUS",
	"PORT_LANE_LATCH_STATUS_LIST",
}

// DefaultValueTypes returns a copy of the SAI value-type short names.
func DefaultValueTypes() []string {
	out := make([]string, len(defaultValueTypes))
	copy(out, defaultValueTypes)
	return out
}

// ValueTypeIndex returns the index of the short value-type name, compared
// case-insensitively, or -1 if the catalog does not define it.
func (c *Catalog) ValueTypeIndex(short string) int {
	for i, name := range c.ValueTypes {
		if strings.EqualFold(name, short) {
			return i
		}
	}
	return -1
}

// ShortTypeName returns the short value-type name at index, or Undefined when
// the index is outside the table.
func (c *Catalog) ShortTypeName(index int) string {
	if index < 0 || index >= len(c.ValueTypes) {
		return Undefined
	}
	return c.ValueTypes[index]
}
