package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportKey(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "single word",
			in:       "title",
			expected: "title",
		},
		{
			name:     "two words",
			in:       "first_name",
			expected: "firstName",
		},
		{
			name:     "three words",
			in:       "last_login_time",
			expected: "lastLoginTime",
		},
		{
			name:     "leading underscore capitalizes",
			in:       "_password",
			expected: "Password",
		},
		{
			name:     "empty",
			in:       "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Default{}.ExportKey(tt.in))
		})
	}
}

func TestImportDateTime(t *testing.T) {
	f := Default{}

	tests := []struct {
		name     string
		in       string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "plain",
			in:       "2017-10-10T10:10:00",
			expected: time.Date(2017, 10, 10, 10, 10, 0, 0, time.UTC),
		},
		{
			name:     "trailing dot with no digits",
			in:       "2017-10-10T10:10:00.",
			expected: time.Date(2017, 10, 10, 10, 10, 0, 0, time.UTC),
		},
		{
			name:     "fraction digits are microseconds",
			in:       "2017-10-10T10:10:00.4546",
			expected: time.Date(2017, 10, 10, 10, 10, 0, 4546000, time.UTC),
		},
		{
			name:     "zulu suffix",
			in:       "2017-10-10T10:10:00.4546Z",
			expected: time.Date(2017, 10, 10, 10, 10, 0, 4546000, time.UTC),
		},
		{
			name:     "positive offset",
			in:       "2017-10-10T10:10:00+03:00",
			expected: time.Date(2017, 10, 10, 10, 10, 0, 0, time.FixedZone("", 3*3600)),
		},
		{
			name:     "negative offset",
			in:       "2017-10-10T10:10:00-04:30",
			expected: time.Date(2017, 10, 10, 10, 10, 0, 0, time.FixedZone("", -(4*3600 + 30*60))),
		},
		{
			name:    "invalid month",
			in:      "2017-13-10T10:10:00",
			wantErr: true,
		},
		{
			name:    "not a date",
			in:      "InvalidDatetime",
			wantErr: true,
		},
		{
			name:    "missing time part",
			in:      "2017-10-10",
			wantErr: true,
		},
		{
			name:    "space separator",
			in:      "2017-10-10 10:10:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.ImportDateTime(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDateTime)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "expected %v, got %v", tt.expected, result)
		})
	}
}

func TestImportDateTimeNaivePolicy(t *testing.T) {
	const naive = "2017-10-10T10:10:00"

	utc, err := Default{Naive: NaiveAsUTC}.ImportDateTime(naive)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, utc.Location())

	local, err := Default{Naive: NaiveAsLocal}.ImportDateTime(naive)
	require.NoError(t, err)
	assert.Equal(t, time.Local, local.Location())
}

func TestExportDateTime(t *testing.T) {
	f := Default{}

	tests := []struct {
		name     string
		in       time.Time
		expected string
	}{
		{
			name:     "utc renders Z",
			in:       time.Date(2012, 2, 22, 12, 52, 29, 0, time.UTC),
			expected: "2012-02-22T12:52:29Z",
		},
		{
			name:     "zero fixed offset renders Z",
			in:       time.Date(2012, 2, 22, 12, 52, 29, 0, time.FixedZone("", 0)),
			expected: "2012-02-22T12:52:29Z",
		},
		{
			name:     "non-zero offset",
			in:       time.Date(2012, 2, 22, 12, 52, 29, 0, time.FixedZone("", 30*60)),
			expected: "2012-02-22T12:52:29+00:30",
		},
		{
			name:     "negative offset",
			in:       time.Date(2012, 2, 22, 12, 52, 29, 0, time.FixedZone("", -(5*3600 + 45*60))),
			expected: "2012-02-22T12:52:29-05:45",
		},
		{
			name:     "local renders no suffix",
			in:       time.Date(2012, 2, 22, 12, 52, 29, 0, time.Local),
			expected: "2012-02-22T12:52:29",
		},
		{
			name:     "microseconds zero padded",
			in:       time.Date(2017, 10, 10, 10, 10, 0, 4546000, time.UTC),
			expected: "2017-10-10T10:10:00.004546Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.ExportDateTime(tt.in))
		})
	}
}

func TestExportTime(t *testing.T) {
	f := Default{}

	tests := []struct {
		name     string
		in       time.Time
		expected string
	}{
		{
			name:     "utc renders Z",
			in:       time.Date(0, 1, 1, 12, 52, 29, 0, time.UTC),
			expected: "12:52:29Z",
		},
		{
			name:     "non-zero offset",
			in:       time.Date(0, 1, 1, 12, 52, 29, 0, time.FixedZone("", 30*60)),
			expected: "12:52:29+00:30",
		},
		{
			name:     "local renders no suffix",
			in:       time.Date(0, 1, 1, 12, 52, 29, 0, time.Local),
			expected: "12:52:29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.ExportTime(tt.in))
		})
	}
}

func TestImportDate(t *testing.T) {
	f := Default{}

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{
			name: "iso date",
			in:   "2001-01-01",
		},
		{
			name:    "two digit year",
			in:      "01-01-01",
			wantErr: true,
		},
		{
			name:    "slash separators",
			in:      "2001/01/01",
			wantErr: true,
		},
		{
			name:    "datetime is not a date",
			in:      "2001-01-01T00:00:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.ImportDate(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, f.ExportDate(result))
		})
	}
}

func TestImportTime(t *testing.T) {
	f := Default{}

	result, err := f.ImportTime("08:08:08")
	require.NoError(t, err)
	assert.Equal(t, "08:08:08", f.ExportTime(result))

	_, err = f.ImportTime("08-08-08")
	require.ErrorIs(t, err, ErrInvalidTime)

	_, err = f.ImportTime("8:08")
	require.ErrorIs(t, err, ErrInvalidTime)
}

func TestDateTimeRoundTrip(t *testing.T) {
	f := Default{}

	imported, err := f.ImportDateTime("2017-10-10T10:10:00.4546")
	require.NoError(t, err)

	// Naive input is normalized to UTC under the default policy; the
	// calendar components must survive the round trip.
	assert.Equal(t, "2017-10-10T10:10:00.004546Z", f.ExportDateTime(imported))
}
