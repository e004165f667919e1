// Package formatter defines the naming and temporal-value codec used by
// exported mappings.
//
// Attribute names use snake_case in model declarations and camelCase on the
// wire. Temporal values travel as ISO-8601 strings:
//
//	datetime  YYYY-MM-DDThh:mm:ss[.fraction][Z|±HH:MM]
//	date      YYYY-MM-DD
//	time      HH:MM:SS
//
// Import functions are strict: anything that does not match the grammar
// above fails with ErrInvalidDateTime, ErrInvalidDate or ErrInvalidTime.
//
// # Naive datetimes
//
// A datetime string with no zone suffix is "naive". The Default formatter
// resolves naive values through a NaivePolicy: NaiveAsUTC (the default)
// normalizes them to UTC, NaiveAsLocal keeps them in time.Local and renders
// them back without a suffix.
package formatter
