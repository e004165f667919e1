package dict_test

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/gorm-dict/pkg/dict"
)

// FullName is a composite value object spanning two columns.
type FullName struct {
	First string
	Last  string
}

func (n FullName) CompositeValues() []any {
	return []any{n.First, n.Last}
}

// JSONMap is an opaque column type with its own database codec. The
// registry treats it as an unknown scalar and passes values through.
type JSONMap map[string]any

func (m *JSONMap) Scan(v any) error {
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into JSONMap", v)
	}
	return json.Unmarshal(b, m)
}

func (m JSONMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

type Keyword struct {
	ID       int
	Word     string
	MemberID int
}

type Member struct {
	ID              int
	FirstName       string
	NickName        string `dict:"firstName"`
	LastName        string `dict:"familyName"`
	FullName        FullName `gorm:"-" dict:",readonly"`
	PasswordHash    string   `dict:",protected"`
	AvatarURL       string   `dict:",protected"`
	CoverURL        string   `dict:",protected"`
	IsActive        bool     `dict:",readonly"`
	Visible         *bool
	Birth           time.Time  `gorm:"type:date"`
	BreakfastTime   *time.Time `gorm:"type:time"`
	LastSeenAt      *time.Time
	Weight          decimal.Decimal
	Meta            JSONMap
	Keywords        []Keyword `dict:",protected"`
	VisibleKeywords []Keyword
	Assigner        *Member
	Internal        string `dict:"-"`
}

// Avatar exposes the protected avatar column under its own attribute.
func (m *Member) Avatar() string {
	return m.AvatarURL
}

// SetPassword hashes an incoming password before it reaches storage.
func (m *Member) SetPassword(password string) {
	m.PasswordHash = "hashed:" + password
}

// IsVisible derives the effective visibility.
func (m *Member) IsVisible() bool {
	return m.Visible != nil && *m.Visible
}

func newTestRegistry(t *testing.T) *dict.Registry {
	t.Helper()

	r := dict.NewRegistry()
	_, err := r.Register(Keyword{})
	require.NoError(t, err)
	_, err = r.Register(Member{},
		dict.Synonym("Password", "PasswordHash"),
		dict.Synonym("Avatar", "AvatarURL", dict.Protected(false)),
		dict.Synonym("Cover", "CoverURL", dict.DictKey("coverImage"), dict.Protected(false), dict.ReadOnly(true)),
		dict.Computed("IsVisible"),
	)
	require.NoError(t, err)
	return r
}

func newMember() *Member {
	visible := true
	seen := time.Date(2017, 10, 10, 10, 10, 0, 4546000, time.UTC)
	breakfast := time.Date(0, 1, 1, 8, 30, 0, 0, time.Local)
	return &Member{
		ID:           1,
		FirstName:    "Ada",
		NickName:     "The Countess",
		LastName:     "Lovelace",
		FullName:     FullName{First: "Ada", Last: "Lovelace"},
		PasswordHash: "hashed:initial",
		AvatarURL:    "https://img.example/avatar.png",
		CoverURL:     "https://img.example/cover.png",
		IsActive:     true,
		Visible:      &visible,
		Birth:        time.Date(1815, 12, 10, 0, 0, 0, 0, time.Local),
		BreakfastTime: &breakfast,
		LastSeenAt:    &seen,
		Weight:        decimal.RequireFromString("57.5"),
		Meta:          JSONMap{"title": "mathematician"},
		Keywords: []Keyword{
			{ID: 1, Word: "analytical", MemberID: 1},
			{ID: 2, Word: "engine", MemberID: 1},
		},
		VisibleKeywords: []Keyword{
			{ID: 3, Word: "notes", MemberID: 1},
		},
		Internal: "do not expose",
	}
}
