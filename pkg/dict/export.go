package dict

import (
	"fmt"
	"reflect"

	"gorm.io/gorm"
)

// Export renders a registered entity as a Mapping under the default
// visibility policy: readonly attributes included, protected ones omitted.
func (r *Registry) Export(entity any) (*Mapping, error) {
	m, rv, err := r.resolve(entity)
	if err != nil {
		return nil, err
	}
	return r.export(m, rv, m.Exportable(true, false))
}

// ExportAttrs renders an entity restricted to the named attributes,
// bypassing the protected flag. Names may be snake_case or Go names.
func (r *Registry) ExportAttrs(entity any, names ...string) (*Mapping, error) {
	m, rv, err := r.resolve(entity)
	if err != nil {
		return nil, err
	}

	attrs := make([]*Descriptor, 0, len(names))
	for _, name := range names {
		d, err := m.Attribute(name)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, d)
	}
	return r.export(m, rv, attrs)
}

// export fills a Mapping from the given attributes in order. When two
// attributes share an export key, the first one written wins; later writes
// to the same key are dropped.
func (r *Registry) export(m *Model, entity reflect.Value, attrs []*Descriptor) (*Mapping, error) {
	out := NewMapping()
	for _, d := range attrs {
		key, value, err := r.exportValue(m, d, d.value(entity))
		if err != nil {
			return nil, err
		}
		if _, exists := out.Get(key); exists {
			continue
		}
		out.Set(key, value)
	}
	return out, nil
}

// DumpSlice exports every element of a slice of registered entities.
func (r *Registry) DumpSlice(entities any) ([]*Mapping, error) {
	rv := reflect.ValueOf(entities)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return []*Mapping{}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("dict: cannot dump %T: not a slice", entities)
	}

	out := make([]*Mapping, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Ptr && elem.IsNil() {
			continue
		}
		mapped, err := r.Export(elem.Interface())
		if err != nil {
			return nil, err
		}
		out = append(out, mapped)
	}
	return out, nil
}

// DumpQuery runs a query whose Model is a registered type and exports every
// row it returns. The query carries its own conditions, ordering and limits;
// DumpQuery only adds the Find.
func (r *Registry) DumpQuery(query *gorm.DB) ([]*Mapping, error) {
	if query == nil || query.Statement == nil || query.Statement.Model == nil {
		return nil, fmt.Errorf("dict: query has no model")
	}

	t := deref(reflect.TypeOf(query.Statement.Model))
	if _, ok := r.lookup(t); !ok {
		return nil, fmt.Errorf("dict: %w: %s", ErrNotRegistered, t)
	}

	rows := reflect.New(reflect.SliceOf(t))
	if err := query.Find(rows.Interface()).Error; err != nil {
		return nil, fmt.Errorf("dict: query failed: %w", err)
	}
	return r.DumpSlice(rows.Interface())
}
