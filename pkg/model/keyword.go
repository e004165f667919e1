package model

import "github.com/doodlesbykumbi/gorm-dict/pkg/dict"

// Keyword represents a tag attached to members
type Keyword struct {
	ID   int    `gorm:"column:id;primaryKey"`
	Word string `gorm:"column:word;uniqueIndex"`
}

func (Keyword) TableName() string {
	return "keywords"
}

func init() {
	dict.MustRegister(Keyword{})
}
