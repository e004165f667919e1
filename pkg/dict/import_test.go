package dict_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/gorm-dict/pkg/dict"
	"github.com/doodlesbykumbi/gorm-dict/pkg/formatter"
)

func mapping(pairs ...any) *dict.Mapping {
	out := dict.NewMapping()
	for i := 0; i < len(pairs); i += 2 {
		out.Set(pairs[i].(string), pairs[i+1])
	}
	return out
}

func TestImportScalars(t *testing.T) {
	r := newTestRegistry(t)
	member := &Member{}

	err := r.Import(member, mapping(
		"firstName", "Grace",
		"familyName", "Hopper",
		"weight", "62.1",
	))
	require.NoError(t, err)

	assert.Equal(t, "Grace", member.FirstName)
	assert.Equal(t, "Hopper", member.LastName)
	assert.True(t, member.Weight.Equal(decimal.RequireFromString("62.1")))
}

func TestImportBooleans(t *testing.T) {
	r := newTestRegistry(t)

	testCases := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "native true", value: true, expected: true},
		{name: "native false", value: false, expected: false},
		{name: "string true", value: "true", expected: true},
		{name: "string mixed case", value: "True", expected: true},
		{name: "string false", value: "false", expected: false},
		{name: "arbitrary string", value: "yes", expected: false},
		{name: "number", value: 1, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			member := &Member{}
			err := r.Import(member, mapping("visible", tc.value))
			require.NoError(t, err)
			require.NotNil(t, member.Visible)
			assert.Equal(t, tc.expected, *member.Visible)
		})
	}
}

func TestImportNullVersusAbsent(t *testing.T) {
	r := newTestRegistry(t)
	member := newMember()

	// absent keys leave their attributes alone
	err := r.Import(member, mapping("firstName", "Grace"))
	require.NoError(t, err)
	assert.Equal(t, "Grace", member.FirstName)
	assert.Equal(t, "Lovelace", member.LastName)
	assert.NotNil(t, member.Visible)

	// an explicit null clears the attribute
	err = r.Import(member, mapping("visible", nil, "lastSeenAt", nil))
	require.NoError(t, err)
	assert.Nil(t, member.Visible)
	assert.Nil(t, member.LastSeenAt)
}

func TestImportTemporal(t *testing.T) {
	r := newTestRegistry(t)
	member := &Member{}

	err := r.Import(member, mapping(
		"birth", "1906-12-09",
		"breakfastTime", "07:45:00",
		"lastSeenAt", "2017-10-10T10:10:00.4546Z",
	))
	require.NoError(t, err)

	assert.Equal(t, time.Date(1906, 12, 9, 0, 0, 0, 0, time.Local), member.Birth)
	require.NotNil(t, member.BreakfastTime)
	assert.Equal(t, time.Date(0, 1, 1, 7, 45, 0, 0, time.Local), *member.BreakfastTime)
	require.NotNil(t, member.LastSeenAt)
	assert.Equal(t, time.Date(2017, 10, 10, 10, 10, 0, 4546000, time.UTC), *member.LastSeenAt)
}

func TestImportTemporalErrors(t *testing.T) {
	r := newTestRegistry(t)

	testCases := []struct {
		name     string
		key      string
		value    any
		expected error
	}{
		{name: "malformed datetime", key: "lastSeenAt", value: "10pm last tuesday", expected: formatter.ErrInvalidDateTime},
		{name: "date in datetime attr", key: "lastSeenAt", value: "2017-10-10", expected: formatter.ErrInvalidDateTime},
		{name: "malformed date", key: "birth", value: "1906-13-09", expected: formatter.ErrInvalidDate},
		{name: "malformed time", key: "breakfastTime", value: "7:45", expected: formatter.ErrInvalidTime},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			member := &Member{}
			err := r.Import(member, mapping(tc.key, tc.value))
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestImportAppliesUpToError(t *testing.T) {
	r := newTestRegistry(t)
	member := &Member{}

	// firstName is declared before lastSeenAt, so it lands before the
	// conversion failure stops the import
	err := r.Import(member, mapping(
		"firstName", "Grace",
		"lastSeenAt", "garbage",
	))
	require.Error(t, err)
	assert.Equal(t, "Grace", member.FirstName)
	assert.Nil(t, member.LastSeenAt)
}

func TestImportSynonymSetter(t *testing.T) {
	r := newTestRegistry(t)
	member := &Member{}

	err := r.Import(member, mapping("password", "s3cret"))
	require.NoError(t, err)
	assert.Equal(t, "hashed:s3cret", member.PasswordHash)
}

func TestImportSkipsReadonlyComputedAndUnknown(t *testing.T) {
	r := newTestRegistry(t)
	member := newMember()
	wasActive := member.IsActive

	err := r.Import(member, mapping(
		"isActive", false,
		"coverImage", "https://img.example/other.png",
		"isVisible", false,
		"noSuchKey", "ignored",
	))
	require.NoError(t, err)

	assert.Equal(t, wasActive, member.IsActive)
	assert.Equal(t, "https://img.example/cover.png", member.CoverURL)
	assert.True(t, member.IsVisible())
}

func TestImportRelationshipValues(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("native collections assign directly", func(t *testing.T) {
		member := &Member{}
		err := r.Import(member, mapping(
			"visibleKeywords", []Keyword{{ID: 9, Word: "punched-cards"}},
		))
		require.NoError(t, err)
		require.Len(t, member.VisibleKeywords, 1)
		assert.Equal(t, "punched-cards", member.VisibleKeywords[0].Word)
	})

	t.Run("nested mappings are rejected", func(t *testing.T) {
		member := &Member{}
		err := r.Import(member, mapping(
			"visibleKeywords", []*dict.Mapping{dict.NewMapping()},
		))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot assign")
	})
}

func TestImportTargetMustBePointer(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Import(Member{}, mapping("firstName", "x"))
	assert.Error(t, err)

	var member *Member
	err = r.Import(member, mapping("firstName", "x"))
	assert.Error(t, err)

	err = r.Import(&struct{ Name string }{}, mapping("name", "x"))
	assert.ErrorIs(t, err, dict.ErrNotRegistered)
}

func TestImportNilMapping(t *testing.T) {
	r := newTestRegistry(t)
	member := newMember()

	err := r.Import(member, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", member.FirstName)
}

func TestExportImportRoundTrip(t *testing.T) {
	r := newTestRegistry(t)
	original := newMember()

	out, err := r.Export(original)
	require.NoError(t, err)

	// Relationships export as nested mappings, which cannot be assigned
	// back onto entity collections.
	out.Delete("visibleKeywords")

	restored := &Member{}
	require.NoError(t, r.Import(restored, out))

	assert.Equal(t, original.FirstName, restored.FirstName)
	assert.Equal(t, original.LastName, restored.LastName)
	assert.True(t, original.Weight.Equal(restored.Weight))
	require.NotNil(t, restored.LastSeenAt)
	assert.True(t, original.LastSeenAt.Equal(*restored.LastSeenAt))
	assert.Equal(t, original.Birth, restored.Birth)
	require.NotNil(t, restored.BreakfastTime)
	assert.Equal(t, *original.BreakfastTime, *restored.BreakfastTime)
}
