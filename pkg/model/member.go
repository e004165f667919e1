package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/doodlesbykumbi/gorm-dict/pkg/dict"
)

// Member represents a registered member of the organization
type Member struct {
	ID            int             `gorm:"column:id;primaryKey"`
	Email         string          `gorm:"column:email;uniqueIndex"`
	Title         string          `gorm:"column:title;index"`
	FirstName     string          `gorm:"column:first_name;index"`
	LastName      string          `gorm:"column:last_name"`
	PasswordHash  string          `gorm:"column:password" dict:",protected"`
	IsActive      *bool           `gorm:"column:is_active" dict:",readonly"`
	Visible       *bool           `gorm:"column:visible"`
	Birth         time.Time       `gorm:"column:birth;type:date"`
	BreakfastTime *time.Time      `gorm:"column:breakfast_time;type:time"`
	LastLoginTime time.Time       `gorm:"column:last_login_time"`
	Weight        decimal.Decimal `gorm:"column:weight;type:numeric"`
	Role          string          `gorm:"column:role"`
	Meta          JSONMap         `gorm:"column:meta;type:jsonb"`
	AssignerID    *int            `gorm:"column:assigner_id" dict:"-"`
	Assigner      *Member         `gorm:"foreignKey:AssignerID"`
	Keywords      []Keyword       `gorm:"many2many:member_keywords;joinForeignKey:member_id;joinReferences:keyword_id" dict:",protected"`
}

func (Member) TableName() string {
	return "members"
}

// SetPassword hashes an incoming plain-text password. Incoming "password"
// values are routed through here during import.
func (m *Member) SetPassword(password string) {
	m.PasswordHash = hashPassword(password)
}

// IsVisible derives the effective visibility of the member.
func (m *Member) IsVisible() bool {
	return m.Visible != nil && *m.Visible
}

func init() {
	dict.MustRegister(Member{},
		dict.Synonym("Password", "PasswordHash"),
		dict.Computed("IsVisible"),
	)
}
