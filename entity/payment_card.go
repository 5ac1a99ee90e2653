package entity

import (
	"gorm.io/gorm"
)

// PaymentCard keeps only what checkout needs to identify a saved card.
// The full PAN is never stored.
type PaymentCard struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	HolderName string `json:"holderName"`
	LastFour   string `json:"lastFour"`
	Brand      string `json:"brand"`
	ExpMonth   int    `json:"expMonth"`
	ExpYear    int    `json:"expYear"`
	IsDefault  bool   `json:"isDefault"`
}
