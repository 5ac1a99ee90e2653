package entity

import (
	"gorm.io/gorm"
)

// MenuItem is a sellable catalog item. Price is in minor currency
// units (e.g. cents). Toppings never change the price; side options
// carry their own delta.
type MenuItem struct {
	gorm.Model
	Name       string `json:"name"`
	Detail     string `json:"detail"`
	Price      int64  `json:"price"`
	Picture    string `json:"picture"`
	CategoryID uint   `json:"categoryId"`

	// display-only metadata
	Rating      float64 `json:"rating"`
	PrepMinutes int     `json:"prepMinutes"`

	Toppings    []Topping    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"toppings"`
	SideOptions []SideOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sideOptions"`
}

type Topping struct {
	gorm.Model
	MenuItemID uint   `gorm:"index" json:"menuItemId"`
	Name       string `json:"name"`
	Picture    string `json:"picture"`
}

type SideOption struct {
	gorm.Model
	MenuItemID uint   `gorm:"index" json:"menuItemId"`
	Name       string `json:"name"`
	Picture    string `json:"picture"`
	Price      int64  `json:"price"`
}

type Category struct {
	gorm.Model
	Name string `json:"name"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
