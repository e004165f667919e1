package dict

import (
	"database/sql"
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/schema"

	"github.com/doodlesbykumbi/gorm-dict/pkg/formatter"
)

// TagKey is the struct tag consulted at registration time. The syntax
// mirrors encoding/json:
//
//	Field string `dict:"customKey"`
//	Field string `dict:",readonly"`
//	Field string `dict:",protected"`
//	Field string `dict:"-"`
const TagKey = "dict"

var (
	timeType         = reflect.TypeOf(time.Time{})
	decimalType      = reflect.TypeOf(decimal.Decimal{})
	scannerType      = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
	unmarshalerType  = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	decomposableType = reflect.TypeOf((*Decomposable)(nil)).Elem()
	exportableType   = reflect.TypeOf((*Exportable)(nil)).Elem()
)

// Registry holds the attribute-descriptor tables of registered model types.
// Registration happens at program startup; a resolved Model is immutable
// and looked up by type identity afterwards, so concurrent exports and
// imports need no locking beyond the registry's own map guard.
type Registry struct {
	mu        sync.RWMutex
	models    map[reflect.Type]*Model
	formatter formatter.Formatter
	namer     schema.Namer
}

// RegistryOption configures a Registry at construction time.
type RegistryOption func(*Registry)

// WithFormatter binds a formatter strategy to the registry. The default is
// formatter.Default{} with the NaiveAsUTC policy.
func WithFormatter(f formatter.Formatter) RegistryOption {
	return func(r *Registry) {
		r.formatter = f
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		models:    map[reflect.Type]*Model{},
		formatter: formatter.Default{},
		namer:     schema.NamingStrategy{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Formatter returns the formatter strategy bound to the registry.
func (r *Registry) Formatter() formatter.Formatter {
	return r.formatter
}

// Register builds the attribute-descriptor table for a model type from its
// struct declaration and the given options. Registering the same type twice
// returns the already-resolved model.
func (r *Registry) Register(model any, opts ...ModelOption) (*Model, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dict: cannot register %T: not a struct type", model)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.models[t]; ok {
		return m, nil
	}

	m := &Model{
		registry: r,
		typ:      t,
		byName:   map[string]*Descriptor{},
		byGoName: map[string]*Descriptor{},
	}
	if err := m.addFields(t, nil); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	r.models[t] = m
	return m, nil
}

// MustRegister is Register, panicking on error. Intended for model-package
// init functions.
func (r *Registry) MustRegister(model any, opts ...ModelOption) *Model {
	m, err := r.Register(model, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the resolved model for an entity value or type, or
// ErrNotRegistered.
func (r *Registry) Lookup(model any) (*Model, error) {
	t := deref(reflect.TypeOf(model))
	m, ok := r.lookup(t)
	if !ok {
		return nil, fmt.Errorf("dict: %w: %s", ErrNotRegistered, t)
	}
	return m, nil
}

func (r *Registry) lookup(t reflect.Type) (*Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[t]
	return m, ok
}

// resolve maps an entity value onto its model and a pointer-shaped
// reflect.Value, copying non-pointer values so pointer-receiver accessors
// stay callable.
func (r *Registry) resolve(entity any) (*Model, reflect.Value, error) {
	rv := reflect.ValueOf(entity)
	if !rv.IsValid() {
		return nil, reflect.Value{}, fmt.Errorf("dict: cannot export nil entity")
	}
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, reflect.Value{}, fmt.Errorf("dict: cannot export nil entity")
		}
		if rv.Elem().Kind() != reflect.Ptr {
			break
		}
		rv = rv.Elem()
	}

	t := rv.Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	m, ok := r.lookup(t)
	if !ok {
		return nil, reflect.Value{}, fmt.Errorf("dict: %w: %s", ErrNotRegistered, t)
	}

	if rv.Kind() != reflect.Ptr {
		ptr := reflect.New(t)
		ptr.Elem().Set(rv)
		rv = ptr
	}
	return m, rv, nil
}

// ModelOption declares additional attributes during registration.
type ModelOption func(*Model) error

// Synonym declares a proxy attribute over another attribute's storage.
// backing is the Go name of the stored attribute. The synonym inherits the
// backing attribute's key and policy flags unless its own options override
// them. Reads go through a <goName>() method when the model has one, writes
// through Set<goName>; otherwise the backing field is accessed directly.
func Synonym(goName, backing string, opts ...AttrOption) ModelOption {
	return func(m *Model) error {
		b, ok := m.byGoName[backing]
		if !ok {
			return fmt.Errorf("dict: synonym %s: %w: %q", goName, ErrUnknownAttribute, backing)
		}

		d := &Descriptor{
			Name:      m.registry.namer.ColumnName("", goName),
			GoName:    goName,
			Kind:      KindSynonym,
			Type:      b.Type,
			DictKey:   b.DictKey,
			ReadOnly:  b.ReadOnly,
			Protected: b.Protected,
			backing:   b,
			getter:    -1,
			setter:    -1,
		}
		applyAttrOptions(d, opts)

		ptr := reflect.PtrTo(m.typ)
		if method, ok := ptr.MethodByName(goName); ok &&
			method.Type.NumIn() == 1 && method.Type.NumOut() == 1 {
			d.getter = method.Index
		}
		if method, ok := ptr.MethodByName("Set" + goName); ok &&
			method.Type.NumIn() == 2 && method.Type.NumOut() == 0 {
			d.setter = method.Index
		}

		return m.add(d)
	}
}

// Computed declares a derived attribute resolved to the model's niladic
// method of the same Go name. Computed attributes are never importable.
func Computed(goName string, opts ...AttrOption) ModelOption {
	return func(m *Model) error {
		method, ok := reflect.PtrTo(m.typ).MethodByName(goName)
		if !ok || method.Type.NumIn() != 1 || method.Type.NumOut() != 1 {
			return fmt.Errorf("dict: computed %s: %s has no method %s() with a single result",
				goName, m.typ.Name(), goName)
		}

		d := &Descriptor{
			Name:   m.registry.namer.ColumnName("", goName),
			GoName: goName,
			Kind:   KindComputed,
			Type:   valueTypeOf(method.Type.Out(0), ""),
			getter: method.Index,
			setter: -1,
		}
		applyAttrOptions(d, opts)
		return m.add(d)
	}
}

// AttrOption adjusts a synonym or computed attribute's metadata.
type AttrOption func(*Descriptor)

// DictKey sets a custom export key.
func DictKey(key string) AttrOption {
	return func(d *Descriptor) { d.DictKey = key }
}

// ReadOnly marks (or unmarks) the attribute read-only.
func ReadOnly(readOnly bool) AttrOption {
	return func(d *Descriptor) { d.ReadOnly = readOnly }
}

// Protected marks (or unmarks) the attribute protected.
func Protected(protected bool) AttrOption {
	return func(d *Descriptor) { d.Protected = protected }
}

func applyAttrOptions(d *Descriptor, opts []AttrOption) {
	for _, opt := range opts {
		opt(d)
	}
}

// classify derives the attribute kind from a declared field type. The
// related model type is returned for relationships.
func classify(t reflect.Type) (Kind, reflect.Type) {
	if t.Implements(decomposableType) {
		return KindComposite, nil
	}

	base := deref(t)
	switch base.Kind() {
	case reflect.Slice:
		elem := deref(base.Elem())
		if elem.Kind() == reflect.Struct && !isScalarStruct(elem) {
			return KindToMany, elem
		}
	case reflect.Struct:
		if !isScalarStruct(base) {
			return KindToOne, base
		}
	}
	return KindScalar, nil
}

// isScalarStruct reports struct types that hold a single logical value:
// temporal and decimal types, plus anything with database or text codec
// methods of its own.
func isScalarStruct(t reflect.Type) bool {
	return t == timeType || t == decimalType ||
		reflect.PtrTo(t).Implements(scannerType) ||
		reflect.PtrTo(t).Implements(unmarshalerType)
}

// valueTypeOf derives the wire-relevant native type. gormType is the type
// setting from the field's gorm tag, which distinguishes DATE and TIME
// columns from plain timestamps.
func valueTypeOf(t reflect.Type, gormType string) ValueType {
	t = deref(t)

	if t == timeType {
		switch columnType(gormType) {
		case "date":
			return TypeDate
		case "time":
			return TypeTime
		default:
			return TypeDateTime
		}
	}
	if t == decimalType {
		return TypeDecimal
	}

	switch t.Kind() {
	case reflect.Bool:
		return TypeBool
	case reflect.String:
		return TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInt
	case reflect.Float32, reflect.Float64:
		return TypeFloat
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return TypeBytes
		}
	}
	return TypeUnknown
}

// columnType reduces a gorm type setting like "time without time zone" or
// "time(6)" to its leading keyword.
func columnType(gormType string) string {
	s := strings.ToLower(gormType)
	if i := strings.IndexAny(s, " ("); i >= 0 {
		s = s[:i]
	}
	return s
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
