package dict

import (
	"reflect"

	"gorm.io/gorm"
)

// ExportAny renders an arbitrary result value for the wire:
//
//   - a *gorm.DB is treated as a prepared query and dumped row by row
//   - a registered entity, or anything Exportable, becomes a Mapping
//   - a slice of either becomes a slice of Mappings
//   - nil and anything else pass through unchanged
//
// The passthrough case lets handlers return values that already are
// JSON-safe, such as counts or plain strings.
func (r *Registry) ExportAny(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	if query, ok := v.(*gorm.DB); ok {
		return r.DumpQuery(query)
	}

	t := deref(reflect.TypeOf(v))
	if _, ok := r.lookup(t); ok {
		return r.Export(v)
	}
	if exp, ok := v.(Exportable); ok {
		return exp.ToDict()
	}

	if t.Kind() == reflect.Slice && r.exportableElem(t.Elem()) {
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Ptr {
			rv = rv.Elem()
		}
		out := make([]*Mapping, 0, rv.Len())
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

	return v, nil
}

func (r *Registry) exportableElem(t reflect.Type) bool {
	if _, ok := r.lookup(deref(t)); ok {
		return true
	}
	return t.Implements(exportableType)
}

// Expose wraps a function so its result is rendered through the default
// registry's ExportAny before being returned. A handler written against
// entities and queries becomes one that yields wire-shaped values:
//
//	getMember := dict.Expose(func(id int) (any, error) {
//		return store.FindMember(id)
//	})
func Expose[In any](fn func(In) (any, error)) func(In) (any, error) {
	return ExposeWith[In](defaultRegistry, fn)
}

// ExposeWith is Expose bound to an explicit registry.
func ExposeWith[In any](r *Registry, fn func(In) (any, error)) func(In) (any, error) {
	return func(in In) (any, error) {
		out, err := fn(in)
		if err != nil {
			return nil, err
		}
		return r.ExportAny(out)
	}
}
