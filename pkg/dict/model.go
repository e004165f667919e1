package dict

import (
	"fmt"
	"reflect"

	"gorm.io/gorm/schema"
)

// Model is the resolved attribute-descriptor table of one registered type.
type Model struct {
	registry *Registry
	typ      reflect.Type
	attrs    []*Descriptor
	byName   map[string]*Descriptor
	byGoName map[string]*Descriptor
}

// Type returns the registered struct type.
func (m *Model) Type() reflect.Type {
	return m.typ
}

// Name returns the registered type's name.
func (m *Model) Name() string {
	return m.typ.Name()
}

// Attributes returns the model's descriptors in declaration order. Each
// Kind passed in exclude removes that whole category from the result.
func (m *Model) Attributes(exclude ...Kind) []*Descriptor {
	if len(exclude) == 0 {
		out := make([]*Descriptor, len(m.attrs))
		copy(out, m.attrs)
		return out
	}

	skip := map[Kind]bool{}
	for _, k := range exclude {
		skip[k] = true
	}
	var out []*Descriptor
	for _, d := range m.attrs {
		if skip[d.Kind] {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Exportable filters the attribute list by the two visibility flags. The
// default export policy is Exportable(true, false): readonly values are
// shown, protected ones are not.
func (m *Model) Exportable(includeReadOnly, includeProtected bool) []*Descriptor {
	var out []*Descriptor
	for _, d := range m.attrs {
		if (!includeProtected && d.Protected) || (!includeReadOnly && d.ReadOnly) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Importable returns the attributes an import call may assign: stored
// attributes and synonyms that are not readonly. Derived computed
// attributes are never importable.
func (m *Model) Importable() []*Descriptor {
	var out []*Descriptor
	for _, d := range m.attrs {
		if d.ReadOnly || d.Kind == KindComputed {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Attribute looks an attribute up by its snake_case name, falling back to
// the Go field name. Returns ErrUnknownAttribute when neither matches.
func (m *Model) Attribute(name string) (*Descriptor, error) {
	if d, ok := m.byName[name]; ok {
		return d, nil
	}
	if d, ok := m.byGoName[name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("dict: %w: %s.%s", ErrUnknownAttribute, m.typ.Name(), name)
}

// DictKey returns the mapping key used for a descriptor on the wire: the
// custom key when one was declared, otherwise the formatted attribute name.
func (m *Model) DictKey(d *Descriptor) string {
	if d.DictKey != "" {
		return d.DictKey
	}
	return m.registry.formatter.ExportKey(d.Name)
}

// ExportValue converts one attribute's native value to its wire shape,
// returning the export key alongside the converted value.
func (m *Model) ExportValue(name string, v any) (string, any, error) {
	d, err := m.Attribute(name)
	if err != nil {
		return "", nil, err
	}
	return m.registry.exportValue(m, d, v)
}

// ImportValue converts an external value to the native representation of
// the named attribute. Unknown native types pass through unmodified.
func (m *Model) ImportValue(name string, v any) (any, error) {
	d, err := m.Attribute(name)
	if err != nil {
		return nil, err
	}
	return m.registry.importValue(d, v)
}

// addFields walks the struct's declared fields in order, flattening
// anonymous embedded structs, and adds a descriptor per exposable field.
func (m *Model) addFields(t reflect.Type, index []int) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}

		tag := f.Tag.Get(TagKey)
		if tag == "-" {
			continue
		}

		path := make([]int, 0, len(index)+1)
		path = append(append(path, index...), i)

		if f.Anonymous && embeddable(f.Type) {
			if err := m.addFields(f.Type, path); err != nil {
				return err
			}
			continue
		}

		d, err := m.fieldDescriptor(f, path, tag)
		if err != nil {
			return err
		}
		if err := m.add(d); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) fieldDescriptor(f reflect.StructField, index []int, tag string) (*Descriptor, error) {
	d := &Descriptor{
		Name:   m.registry.namer.ColumnName("", f.Name),
		GoName: f.Name,
		index:  index,
		getter: -1,
		setter: -1,
	}

	if tag != "" {
		key, readOnly, protected, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("dict: field %s.%s: %w", m.typ.Name(), f.Name, err)
		}
		d.DictKey = key
		d.ReadOnly = readOnly
		d.Protected = protected
	}

	d.Kind, d.elem = classify(f.Type)
	if d.Kind == KindScalar {
		settings := schema.ParseTagSetting(f.Tag.Get("gorm"), ";")
		d.Type = valueTypeOf(f.Type, settings["TYPE"])
	}
	return d, nil
}

func (m *Model) add(d *Descriptor) error {
	if _, exists := m.byName[d.Name]; exists {
		return fmt.Errorf("dict: duplicate attribute %q on %s", d.Name, m.typ.Name())
	}
	m.attrs = append(m.attrs, d)
	m.byName[d.Name] = d
	m.byGoName[d.GoName] = d
	return nil
}

// parseTag splits a dict tag into its custom key and policy flags.
func parseTag(tag string) (key string, readOnly, protected bool, err error) {
	parts := splitTag(tag)
	key = parts[0]
	for _, flag := range parts[1:] {
		switch flag {
		case "readonly":
			readOnly = true
		case "protected":
			protected = true
		default:
			return "", false, false, fmt.Errorf("unknown dict tag option %q", flag)
		}
	}
	return key, readOnly, protected, nil
}

func splitTag(tag string) []string {
	var parts []string
	for {
		i := indexComma(tag)
		if i < 0 {
			return append(parts, tag)
		}
		parts = append(parts, tag[:i])
		tag = tag[i+1:]
	}
}

func indexComma(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			return i
		}
	}
	return -1
}

// embeddable reports whether an anonymous field should be flattened into
// the outer model rather than treated as an attribute of its own.
func embeddable(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		!isScalarStruct(t) &&
		!t.Implements(decomposableType)
}
