package dict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/gorm-dict/pkg/dict"
)

func TestExportKeysAndOrder(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Export(newMember())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"id",
		"firstName",
		"familyName",
		"fullName",
		"isActive",
		"visible",
		"birth",
		"breakfastTime",
		"lastSeenAt",
		"weight",
		"meta",
		"visibleKeywords",
		"assigner",
		"avatar",
		"coverImage",
		"isVisible",
	}, out.Keys())
}

func TestExportToOne(t *testing.T) {
	r := newTestRegistry(t)

	member := newMember()
	assigner := newMember()
	assigner.ID = 2
	assigner.FirstName = "Charles"
	member.Assigner = assigner

	out, err := r.Export(member)
	require.NoError(t, err)

	value, ok := out.Get("assigner")
	require.True(t, ok)
	nested, ok := value.(*dict.Mapping)
	require.True(t, ok)

	id, _ := nested.Get("id")
	assert.Equal(t, 2, id)
	first, _ := nested.Get("firstName")
	assert.Equal(t, "Charles", first)
	inner, _ := nested.Get("assigner")
	assert.Nil(t, inner)
}

func TestExportValues(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Export(newMember())
	require.NoError(t, err)

	testCases := []struct {
		key      string
		expected any
	}{
		{key: "id", expected: 1},
		{key: "firstName", expected: "Ada"}, // first write wins over the colliding nickname
		{key: "familyName", expected: "Lovelace"},
		{key: "fullName", expected: []any{"Ada", "Lovelace"}},
		{key: "isActive", expected: true},
		{key: "visible", expected: true},
		{key: "birth", expected: "1815-12-10"},
		{key: "breakfastTime", expected: "08:30:00"},
		{key: "lastSeenAt", expected: "2017-10-10T10:10:00.004546Z"},
		{key: "weight", expected: "57.5"},
		{key: "avatar", expected: "https://img.example/avatar.png"},
		{key: "coverImage", expected: "https://img.example/cover.png"},
		{key: "isVisible", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			value, ok := out.Get(tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestExportOmitsProtectedAndHidden(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Export(newMember())
	require.NoError(t, err)

	for _, key := range []string{"passwordHash", "password", "avatarUrl", "coverUrl", "keywords", "internal"} {
		_, ok := out.Get(key)
		assert.False(t, ok, "key %q should not be exported", key)
	}
}

func TestExportToMany(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.Export(newMember())
	require.NoError(t, err)

	value, ok := out.Get("visibleKeywords")
	require.True(t, ok)
	keywords, ok := value.([]*dict.Mapping)
	require.True(t, ok)
	require.Len(t, keywords, 1)

	assert.Equal(t, []string{"id", "word", "memberId"}, keywords[0].Keys())
	word, _ := keywords[0].Get("word")
	assert.Equal(t, "notes", word)
}

func TestExportNilToManyIsEmptyList(t *testing.T) {
	r := newTestRegistry(t)

	member := newMember()
	member.VisibleKeywords = nil
	out, err := r.Export(member)
	require.NoError(t, err)

	value, ok := out.Get("visibleKeywords")
	require.True(t, ok)
	assert.Equal(t, []*dict.Mapping{}, value)
}

func TestExportNilScalars(t *testing.T) {
	r := newTestRegistry(t)

	member := newMember()
	member.Visible = nil
	member.LastSeenAt = nil
	member.BreakfastTime = nil

	out, err := r.Export(member)
	require.NoError(t, err)

	for _, key := range []string{"visible", "lastSeenAt", "breakfastTime"} {
		value, ok := out.Get(key)
		require.True(t, ok)
		assert.Nil(t, value, "key %q", key)
	}

	// a nil Visible also flips the derived attribute
	visible, _ := out.Get("isVisible")
	assert.Equal(t, false, visible)
}

func TestExportIsIdempotent(t *testing.T) {
	r := newTestRegistry(t)
	member := newMember()

	first, err := r.Export(member)
	require.NoError(t, err)
	second, err := r.Export(member)
	require.NoError(t, err)

	assert.Equal(t, first.Keys(), second.Keys())
	for _, key := range first.Keys() {
		a, _ := first.Get(key)
		b, _ := second.Get(key)
		assert.Equal(t, a, b, "key %q", key)
	}
}

func TestExportAcceptsValueAndPointer(t *testing.T) {
	r := newTestRegistry(t)
	member := newMember()

	fromPointer, err := r.Export(member)
	require.NoError(t, err)
	fromValue, err := r.Export(*member)
	require.NoError(t, err)

	assert.Equal(t, fromPointer.Keys(), fromValue.Keys())
}

func TestExportAttrs(t *testing.T) {
	r := newTestRegistry(t)

	out, err := r.ExportAttrs(newMember(), "first_name", "PasswordHash")
	require.NoError(t, err)

	assert.Equal(t, []string{"firstName", "passwordHash"}, out.Keys())
	hash, _ := out.Get("passwordHash")
	assert.Equal(t, "hashed:initial", hash)

	_, err = r.ExportAttrs(newMember(), "no_such_attr")
	assert.ErrorIs(t, err, dict.ErrUnknownAttribute)
}

func TestExportUnregistered(t *testing.T) {
	r := newTestRegistry(t)

	type stranger struct{ Name string }
	_, err := r.Export(stranger{Name: "x"})
	assert.ErrorIs(t, err, dict.ErrNotRegistered)
}

func TestDumpSlice(t *testing.T) {
	r := newTestRegistry(t)

	keywords := []Keyword{
		{ID: 1, Word: "a"},
		{ID: 2, Word: "b"},
	}
	out, err := r.DumpSlice(keywords)
	require.NoError(t, err)
	require.Len(t, out, 2)

	word, _ := out[1].Get("word")
	assert.Equal(t, "b", word)

	out, err = r.DumpSlice([]*Keyword{{ID: 3, Word: "c"}, nil})
	require.NoError(t, err)
	require.Len(t, out, 1)
}
