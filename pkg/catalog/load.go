package catalog

import (
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// DefaultCatalogName is the embedded catalog returned by Default.
const DefaultCatalogName = "sai"

// RawCatalog is a catalog as written in YAML. References between entries are
// by name and are resolved to indices by Build.
type RawCatalog struct {
	ValueTypes  []string           `yaml:"valueTypes"`
	Enums       []RawEnumDef       `yaml:"enums"`
	ObjectTypes []RawObjectTypeDef `yaml:"objectTypes"`
}

// RawEnumDef is an enum definition.
type RawEnumDef struct {
	Name   string         `yaml:"name"`
	Values []RawEnumValue `yaml:"values"`
}

// RawEnumValue is a single enum value.
type RawEnumValue struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// RawObjectTypeDef is an object type. The first entry of a catalog is the
// sentinel and normally has no attributes.
type RawObjectTypeDef struct {
	Name       string            `yaml:"name"`
	Enum       string            `yaml:"enum"` // attribute id enum, e.g. sai_port_attr_t
	Attributes []RawAttributeDef `yaml:"attributes"`
}

// RawAttributeDef is an attribute of an object type.
type RawAttributeDef struct {
	Name              string   `yaml:"name"`
	Description       string   `yaml:"description"`
	ValueType         string   `yaml:"valueType"` // short name, e.g. "OBJECT_ID", "INT32_LIST"
	MandatoryOnCreate bool     `yaml:"mandatoryOnCreate"`
	CreateOnly        bool     `yaml:"createOnly"`
	CreateAndSet      bool     `yaml:"createAndSet"`
	ReadOnly          bool     `yaml:"readOnly"`
	Key               bool     `yaml:"key"`
	Objects           []string `yaml:"objects"` // allowed object type names
	Enum              string   `yaml:"enum"`    // enum name for enum and enum list attributes
}

// Option configures Parse, Load and Build.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for load warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse parses a catalog from YAML bytes.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	var raw RawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return Build(&raw, opts...)
}

// Load loads and parses a catalog from a YAML file.
func Load(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, opts...)
}

// Build resolves the name references of a raw catalog.
func Build(raw *RawCatalog, opts ...Option) (*Catalog, error) {
	o := newOptions(opts)

	if len(raw.ObjectTypes) == 0 {
		return nil, &IntegrityError{Kind: ErrEmptyCatalog}
	}

	c := &Catalog{ValueTypes: raw.ValueTypes}
	if len(c.ValueTypes) == 0 {
		c.ValueTypes = DefaultValueTypes()
	}

	for _, re := range raw.Enums {
		e := &EnumMetadata{Name: re.Name, Values: make([]EnumValue, 0, len(re.Values))}
		for _, v := range re.Values {
			e.Values = append(e.Values, EnumValue{Name: v.Name, Value: v.Value})
		}
		c.Enums = append(c.Enums, e)
	}

	// Object types first so attributes can refer forward.
	c.ObjectTypes = make([]*ObjectTypeInfo, len(raw.ObjectTypes))
	for i, rot := range raw.ObjectTypes {
		ot := &ObjectTypeInfo{Name: rot.Name}
		if rot.Enum != "" {
			ot.Enum = c.EnumByName(rot.Enum)
			if ot.Enum == nil {
				return nil, &IntegrityError{Kind: ErrUnknownEnum, Object: rot.Name, Ref: rot.Enum}
			}
		}
		c.ObjectTypes[i] = ot
	}

	for i, rot := range raw.ObjectTypes {
		ot := c.ObjectTypes[i]
		for _, ra := range rot.Attributes {
			attr, err := c.buildAttribute(rot.Name, ra, o)
			if err != nil {
				return nil, err
			}
			ot.Attributes = append(ot.Attributes, attr)
		}
	}

	return c, nil
}

func (c *Catalog) buildAttribute(object string, ra RawAttributeDef, o *options) (*AttrMetadata, error) {
	attr := &AttrMetadata{
		IDName:            ra.Name,
		Brief:             ra.Description,
		ValueType:         c.ValueTypeIndex(ra.ValueType),
		MandatoryOnCreate: ra.MandatoryOnCreate,
		CreateOnly:        ra.CreateOnly,
		CreateAndSet:      ra.CreateAndSet,
		ReadOnly:          ra.ReadOnly,
		Key:               ra.Key,
	}
	if attr.ValueType < 0 {
		o.logger.Warn("unknown value type, attribute will be undefined",
			slog.String("object", object),
			slog.String("attribute", ra.Name),
			slog.String("value_type", ra.ValueType))
	}

	for _, name := range ra.Objects {
		idx := c.ObjectTypeIndex(name)
		if idx < 0 {
			return nil, &IntegrityError{Kind: ErrUnknownObjectType, Object: object, Attribute: ra.Name, Ref: name}
		}
		attr.AllowedObjectTypes = append(attr.AllowedObjectTypes, idx)
	}

	if ra.Enum != "" {
		attr.Enum = c.EnumByName(ra.Enum)
		if attr.Enum == nil {
			return nil, &IntegrityError{Kind: ErrUnknownEnum, Object: object, Attribute: ra.Name, Ref: ra.Enum}
		}
		if strings.HasSuffix(strings.ToUpper(ra.ValueType), "_LIST") {
			attr.IsEnumList = true
		} else {
			attr.IsEnum = true
		}
	}

	return attr, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded SAI catalog. The result is shared and must not
// be modified.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Embedded(DefaultCatalogName)
	})
	return defaultCatalog, defaultErr
}

// Embedded parses the named embedded catalog.
func Embedded(name string, opts ...Option) (*Catalog, error) {
	data, err := catalogFS.ReadFile("catalogs/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("embedded catalog %q not found: %w", name, err)
	}
	return Parse(data, opts...)
}
