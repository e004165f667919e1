package dict

import (
	"fmt"
	"reflect"
)

// Descriptor describes one exposable attribute of a registered model. It is
// derived once at registration time and immutable afterwards.
type Descriptor struct {
	// Name is the snake_case attribute name derived from the declaration.
	Name string

	// GoName is the struct field or method the attribute resolves to.
	GoName string

	Kind Kind

	// Type is the native scalar type backing the attribute, when statically
	// knowable. TypeUnknown values pass through conversion unmodified.
	Type ValueType

	// DictKey is the custom export key. Empty means the key is derived from
	// Name by the registry's formatter.
	DictKey string

	// ReadOnly attributes are silently skipped on import.
	ReadOnly bool

	// Protected attributes are silently skipped on default-policy export.
	Protected bool

	index   []int        // field index path for stored attributes
	elem    reflect.Type // related model type for relationships
	backing *Descriptor  // synonym storage target
	getter  int          // pointer-method index, -1 when absent
	setter  int
}

// value reads the attribute's current value off entity, a pointer to a
// struct of the descriptor's model type.
func (d *Descriptor) value(entity reflect.Value) any {
	switch d.Kind {
	case KindComputed:
		return entity.Method(d.getter).Call(nil)[0].Interface()
	case KindSynonym:
		if d.getter >= 0 {
			return entity.Method(d.getter).Call(nil)[0].Interface()
		}
		return entity.Elem().FieldByIndex(d.backing.index).Interface()
	default:
		return entity.Elem().FieldByIndex(d.index).Interface()
	}
}

// assign writes v onto entity through the attribute's storage. Synonyms
// write through their Set<GoName> method when one exists, which is how a
// model routes an incoming value through a transforming accessor.
func (d *Descriptor) assign(entity reflect.Value, v any) error {
	if d.Kind == KindSynonym {
		if d.setter >= 0 {
			method := entity.Method(d.setter)
			arg, err := coerce(v, method.Type().In(0), d.Name)
			if err != nil {
				return err
			}
			method.Call([]reflect.Value{arg})
			return nil
		}
		return d.backing.assign(entity, v)
	}

	field := entity.Elem().FieldByIndex(d.index)
	value, err := coerce(v, field.Type(), d.Name)
	if err != nil {
		return err
	}
	field.Set(value)
	return nil
}

// coerce adapts v to the target type t. nil yields the zero value, pointer
// targets are allocated around the adapted element, and conversions are
// limited to same-kind and numeric-to-numeric changes so that no lossy
// cross-kind coercion happens silently.
func coerce(v any, t reflect.Type, attr string) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}

	if t.Kind() == reflect.Ptr {
		elem, err := coerce(v, t.Elem(), attr)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if rv.Type().ConvertibleTo(t) &&
		(rv.Kind() == t.Kind() || (isNumericKind(rv.Kind()) && isNumericKind(t.Kind()))) {
		return rv.Convert(t), nil
	}

	return reflect.Value{}, fmt.Errorf("dict: cannot assign %T to attribute %q", v, attr)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
