package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Title     string `json:"title"`
	Detail    string `json:"detail"`
	Note      string `json:"note"`
	IsDefault bool   `json:"isDefault"`
}
