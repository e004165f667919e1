// Package dict renders GORM models as ordered dictionaries and applies
// dictionaries back onto them.
//
// A model type is registered once, usually from an init function; the
// registry derives an attribute descriptor per struct field and the
// `dict` tag adjusts the defaults:
//
//	type Member struct {
//	    ID           int
//	    FirstName    string
//	    PasswordHash string `dict:",protected"`
//	    Internal     string `dict:"-"`
//	}
//
//	func init() {
//	    dict.MustRegister(Member{},
//	        dict.Synonym("Password", "PasswordHash", dict.Protected(true)),
//	        dict.Computed("DisplayName"),
//	    )
//	}
//
// # Export
//
// Export walks the model's attributes in declaration order and builds a
// Mapping, an ordered string-keyed collection that marshals to JSON in
// insertion order. Keys are camelCase by default; temporal values become
// ISO-8601 strings, decimals become strings, relationships become nested
// Mappings or lists of them. Protected attributes are omitted, readonly
// ones included. When two attributes resolve to the same key the first
// write wins.
//
// # Import
//
// Import applies only the keys present in the incoming Mapping: absent
// keys leave their attributes untouched, an explicit null clears the
// attribute. Readonly and computed attributes never accept a value, and
// unknown keys are ignored. Synonyms with a Set<Name> method route the
// incoming value through it, which is how a password field hashes on the
// way in.
//
// # Attribute kinds
//
//   - scalar: plain columns, including temporal and decimal values
//   - to-one, to-many: relationships to other registered models
//   - composite: value objects implementing Decomposable
//   - synonym: a proxy over another attribute's storage
//   - computed: a derived, read-only method value
//
// # Queries
//
// DumpQuery runs a prepared *gorm.DB query and exports every row. ExportAny
// and the Expose wrapper dispatch on the result shape, so a handler can
// return an entity, a slice, a query or a plain value and always hand
// wire-shaped data to the encoder.
package dict
