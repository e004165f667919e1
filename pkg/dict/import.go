package dict

import (
	"fmt"
	"reflect"
)

// Import applies the values in data to a registered entity. entity must be
// a non-nil pointer to a registered struct.
//
// Only keys present in data are touched; attributes absent from data keep
// their current value, while an explicit null clears its attribute to the
// zero value. Readonly and computed attributes are skipped even when a
// matching key is present, as are keys that match no attribute at all.
//
// Values are applied in attribute declaration order. On a conversion or
// assignment error the attributes already applied stay applied.
func (r *Registry) Import(entity any, data *Mapping) error {
	rv := reflect.ValueOf(entity)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("dict: import target must be a non-nil pointer, got %T", entity)
	}

	t := deref(rv.Type())
	m, ok := r.lookup(t)
	if !ok {
		return fmt.Errorf("dict: %w: %s", ErrNotRegistered, t)
	}
	for rv.Elem().Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	if data == nil {
		return nil
	}

	for _, d := range m.Importable() {
		raw, present := data.Get(m.DictKey(d))
		if !present {
			continue
		}

		value, err := r.importValue(d, raw)
		if err != nil {
			return fmt.Errorf("dict: import %s: %w", m.typ.Name(), err)
		}
		if err := d.assign(rv, value); err != nil {
			return fmt.Errorf("dict: import %s: %w", m.typ.Name(), err)
		}
	}
	return nil
}
