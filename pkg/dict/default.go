package dict

import "gorm.io/gorm"

// defaultRegistry backs the package-level API. Most programs register all
// their models against it from init functions.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry backing the package-level API.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register registers a model type with the default registry.
func Register(model any, opts ...ModelOption) (*Model, error) {
	return defaultRegistry.Register(model, opts...)
}

// MustRegister registers a model type with the default registry, panicking
// on error.
func MustRegister(model any, opts ...ModelOption) *Model {
	return defaultRegistry.MustRegister(model, opts...)
}

// Lookup resolves a model in the default registry.
func Lookup(model any) (*Model, error) {
	return defaultRegistry.Lookup(model)
}

// Export renders an entity through the default registry.
func Export(entity any) (*Mapping, error) {
	return defaultRegistry.Export(entity)
}

// ExportAttrs renders an entity restricted to the named attributes.
func ExportAttrs(entity any, names ...string) (*Mapping, error) {
	return defaultRegistry.ExportAttrs(entity, names...)
}

// Import applies a Mapping to an entity through the default registry.
func Import(entity any, data *Mapping) error {
	return defaultRegistry.Import(entity, data)
}

// DumpSlice exports a slice of entities through the default registry.
func DumpSlice(entities any) ([]*Mapping, error) {
	return defaultRegistry.DumpSlice(entities)
}

// DumpQuery runs and exports a query through the default registry.
func DumpQuery(query *gorm.DB) ([]*Mapping, error) {
	return defaultRegistry.DumpQuery(query)
}

// ExportAny renders an arbitrary result through the default registry.
func ExportAny(v any) (any, error) {
	return defaultRegistry.ExportAny(v)
}
