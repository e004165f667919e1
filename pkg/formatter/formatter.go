package formatter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Wire layouts shared by import and export.
const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
)

// dateTimePattern matches YYYY-MM-DDThh:mm:ss with an optional fractional
// part (possibly empty) and an optional zone suffix.
var dateTimePattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})(?:\.(\d*))?(Z|[+-]\d{2}:\d{2})?$`,
)

// Format errors reported by the import functions. Callers can match them
// with errors.Is even when they arrive wrapped.
var (
	ErrInvalidDateTime = errors.New("invalid datetime format")
	ErrInvalidDate     = errors.New("invalid date format")
	ErrInvalidTime     = errors.New("invalid time format")
)

// Formatter converts attribute names and temporal values between their
// in-memory representation and the wire representation used in exported
// mappings. A Formatter is bound to a registry once, at construction time.
type Formatter interface {
	// ExportKey derives the mapping key for a snake_case attribute name.
	ExportKey(name string) string

	ExportDateTime(t time.Time) string
	ExportDate(t time.Time) string
	ExportTime(t time.Time) string

	ImportDateTime(value string) (time.Time, error)
	ImportDate(value string) (time.Time, error)
	ImportTime(value string) (time.Time, error)
}

// NaivePolicy selects how datetime strings without a zone suffix are
// interpreted. Two legacy behaviors exist in the wild; the policy makes the
// choice explicit instead of silently following either one.
type NaivePolicy int

const (
	// NaiveAsUTC interprets suffix-less datetimes as UTC. Such values
	// re-export with a trailing "Z". This is the default.
	NaiveAsUTC NaivePolicy = iota

	// NaiveAsLocal interprets suffix-less datetimes in time.Local. Values
	// carrying time.Local re-export with no suffix at all.
	NaiveAsLocal
)

// Default is the stock Formatter: camelCase mapping keys and ISO-8601
// temporal values. The zero value uses the NaiveAsUTC policy.
type Default struct {
	// Naive controls the interpretation of datetimes with no zone suffix.
	Naive NaivePolicy
}

var _ Formatter = Default{}

// ExportKey converts an underscore-separated identifier into camelCase.
// The first segment stays lowercase; underscores are removed and each
// following segment is capitalized. Pure and total.
func (Default) ExportKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExportDateTime renders an ISO-8601 datetime. The fractional part appears
// only when the value carries sub-second precision. Values in time.Local
// render with no zone suffix, a zero offset renders "Z", any other fixed
// offset renders "+HH:MM"/"-HH:MM".
func (f Default) ExportDateTime(t time.Time) string {
	s := t.Format(dateTimeLayout)
	if us := t.Nanosecond() / int(time.Microsecond); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s + zoneSuffix(t)
}

// ExportDate renders YYYY-MM-DD. Dates never carry a zone suffix.
func (Default) ExportDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ExportTime renders HH:MM:SS with the same fractional and zone-suffix
// rules as ExportDateTime.
func (f Default) ExportTime(t time.Time) string {
	s := t.Format(timeLayout)
	if us := t.Nanosecond() / int(time.Microsecond); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s + zoneSuffix(t)
}

// ImportDateTime parses YYYY-MM-DDThh:mm:ss[.fraction][Z|±HH:MM]. The
// fraction digits are read as an integer count of microseconds; a trailing
// dot with no digits means zero. A missing suffix is resolved through the
// Naive policy. Returns ErrInvalidDateTime when the shape or the calendar
// values are invalid.
func (f Default) ImportDateTime(value string) (time.Time, error) {
	m := dateTimePattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, ErrInvalidDateTime
	}

	loc := time.UTC
	switch suffix := m[3]; {
	case suffix == "":
		if f.Naive == NaiveAsLocal {
			loc = time.Local
		}
	case suffix == "Z":
		loc = time.UTC
	default:
		sign := 1
		if suffix[0] == '-' {
			sign = -1
		}
		hours, _ := strconv.Atoi(suffix[1:3])
		minutes, _ := strconv.Atoi(suffix[4:6])
		loc = time.FixedZone("", sign*(hours*3600+minutes*60))
	}

	t, err := time.ParseInLocation(dateTimeLayout, m[1], loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}

	if m[2] != "" {
		us, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, ErrInvalidDateTime
		}
		t = t.Add(time.Duration(us) * time.Microsecond)
	}
	return t, nil
}

// ImportDate parses exactly YYYY-MM-DD. The result lives in time.Local so
// a parsed date re-exports byte-identically.
func (Default) ImportDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ImportTime parses exactly HH:MM:SS. The result lives in time.Local so a
// parsed time-of-day re-exports byte-identically.
func (Default) ImportTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return t, nil
}

// zoneSuffix renders the zone part of a datetime or time value. time.Local
// is the "no offset" representation and renders empty.
func zoneSuffix(t time.Time) string {
	if t.Location() == time.Local {
		return ""
	}
	_, offset := t.Zone()
	if offset == 0 {
		return "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, offset%3600/60)
}
