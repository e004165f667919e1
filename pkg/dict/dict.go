package dict

import (
	"errors"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Mapping is the exported representation of an entity: an ordered,
// string-keyed collection of JSON-safe values. Nested entities appear as
// nested Mappings, to-many relationships as slices of Mappings. A Mapping
// marshals to JSON in insertion order.
type Mapping = orderedmap.OrderedMap

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return orderedmap.New()
}

// Exportable is implemented by values that can render themselves as a
// Mapping. Registered models do not need to implement it; the registry
// exports them directly. It exists for values outside the registry that
// still know their own wire shape.
type Exportable interface {
	ToDict() (*Mapping, error)
}

// Decomposable is implemented by composite value objects. CompositeValues
// returns the constituent values in the composite's declared field order.
type Decomposable interface {
	CompositeValues() []any
}

var (
	// ErrNotRegistered is returned when an operation receives an entity
	// whose type was never registered.
	ErrNotRegistered = errors.New("model is not registered")

	// ErrUnknownAttribute is returned by lookups of attribute names that do
	// not exist on the model.
	ErrUnknownAttribute = errors.New("unknown attribute")
)
