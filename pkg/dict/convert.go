package dict

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// exportValue converts one attribute value to its wire shape and pairs it
// with the attribute's export key.
func (r *Registry) exportValue(m *Model, d *Descriptor, v any) (string, any, error) {
	key := m.DictKey(d)

	switch d.Kind {
	case KindToMany:
		out, err := r.exportSlice(v)
		if err != nil {
			return "", nil, fmt.Errorf("attribute %q: %w", d.Name, err)
		}
		return key, out, nil

	case KindComposite:
		if isNil(v) {
			return key, nil, nil
		}
		dec, ok := v.(Decomposable)
		if !ok {
			return "", nil, fmt.Errorf("dict: attribute %q: %T has no composite values", d.Name, v)
		}
		return key, dec.CompositeValues(), nil
	}

	if isNil(v) {
		return key, nil, nil
	}
	v = indirect(v)

	switch d.Type {
	case TypeDateTime:
		if t, ok := asTime(v); ok {
			return key, r.formatter.ExportDateTime(t), nil
		}
	case TypeDate:
		if t, ok := asTime(v); ok {
			return key, r.formatter.ExportDate(t), nil
		}
	case TypeTime:
		if t, ok := asTime(v); ok {
			return key, r.formatter.ExportTime(t), nil
		}
	case TypeDecimal:
		if dec, ok := v.(decimal.Decimal); ok {
			return key, dec.String(), nil
		}
	}

	if dec, ok := v.(Decomposable); ok {
		return key, dec.CompositeValues(), nil
	}

	if d.Kind == KindToOne {
		out, err := r.exportNested(v)
		if err != nil {
			return "", nil, fmt.Errorf("attribute %q: %w", d.Name, err)
		}
		return key, out, nil
	}

	if exp, ok := v.(Exportable); ok {
		out, err := exp.ToDict()
		if err != nil {
			return "", nil, fmt.Errorf("attribute %q: %w", d.Name, err)
		}
		return key, out, nil
	}

	return key, v, nil
}

// exportSlice renders a to-many relationship as a slice of Mappings. A nil
// slice exports as an empty list rather than null.
func (r *Registry) exportSlice(v any) ([]*Mapping, error) {
	out := []*Mapping{}
	if isNil(v) {
		return out, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("dict: cannot export %T as a collection", v)
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Ptr && elem.IsNil() {
			continue
		}
		mapped, err := r.exportNested(elem.Interface())
		if err != nil {
			return nil, err
		}
		out = append(out, mapped)
	}
	return out, nil
}

// exportNested renders a related entity: registered models export through
// the registry, anything else must know its own wire shape.
func (r *Registry) exportNested(v any) (*Mapping, error) {
	if _, ok := r.lookup(deref(reflect.TypeOf(v))); ok {
		return r.Export(v)
	}
	if exp, ok := v.(Exportable); ok {
		return exp.ToDict()
	}
	return nil, fmt.Errorf("dict: %w: %T", ErrNotRegistered, v)
}

// importValue converts an external value to the attribute's native shape.
// nil stays nil; the caller decides whether nil means "clear" for the
// target attribute. Values of types the registry does not understand pass
// through untouched and are left to the assignment step.
func (r *Registry) importValue(d *Descriptor, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch d.Type {
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return strings.EqualFold(fmt.Sprint(v), "true"), nil

	case TypeDateTime:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("attribute %q: expected a datetime string, got %T", d.Name, v)
		}
		t, err := r.formatter.ImportDateTime(s)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", d.Name, err)
		}
		return t, nil

	case TypeDate:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("attribute %q: expected a date string, got %T", d.Name, v)
		}
		t, err := r.formatter.ImportDate(s)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", d.Name, err)
		}
		return t, nil

	case TypeTime:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("attribute %q: expected a time string, got %T", d.Name, v)
		}
		t, err := r.formatter.ImportTime(s)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", d.Name, err)
		}
		return t, nil

	case TypeDecimal:
		return importDecimal(d, v)
	}

	return v, nil
}

func importDecimal(d *Descriptor, v any) (any, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		dec, err := decimal.NewFromString(x)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", d.Name, err)
		}
		return dec, nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	default:
		return nil, fmt.Errorf("attribute %q: cannot read %T as a decimal", d.Name, v)
	}
}

func asTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// indirect peels pointers off a non-nil value.
func indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv.Interface()
}
