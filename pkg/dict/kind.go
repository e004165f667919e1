package dict

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform lower -output kind_enumer.go
//go:generate go run github.com/dmarkham/enumer -type ValueType -trimprefix Type -transform lower -output valuetype_enumer.go

// Kind classifies an attribute by the shape of its value.
type Kind int

const (
	// KindScalar is a plain column-backed value.
	KindScalar Kind = iota
	// KindToOne is a single related entity.
	KindToOne
	// KindToMany is an ordered collection of related entities.
	KindToMany
	// KindComposite is a value object spanning several columns, decomposable
	// into an ordered sequence of its constituents.
	KindComposite
	// KindSynonym is an alias over another attribute's storage.
	KindSynonym
	// KindComputed is a derived, non-stored value. Never importable.
	KindComputed
)

// ValueType is the native scalar type backing an attribute, when statically
// knowable. TypeUnknown marks opaque values that pass through conversion
// unmodified.
type ValueType int

const (
	TypeUnknown ValueType = iota
	TypeBool
	TypeString
	TypeInt
	TypeFloat
	TypeDecimal
	TypeBytes
	TypeDateTime
	TypeDate
	TypeTime
)
