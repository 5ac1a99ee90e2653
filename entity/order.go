package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order is immutable after checkout except for Status. Monetary
// fields and the delivery address are snapshots frozen at checkout;
// they are never recomputed from live catalog or address data.
type Order struct {
	gorm.Model
	Number    string    `gorm:"uniqueIndex" json:"number"`
	UserID    uint      `gorm:"index" json:"userId"`
	User      User      `json:"-"`
	OrderDate time.Time `json:"orderDate"`

	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	DeliveryFee int64 `json:"deliveryFee"`
	TotalAmount int64 `json:"totalAmount"`

	Status OrderStatus `gorm:"type:text;not null" json:"status"`

	DeliveryAddress       string `json:"deliveryAddress"`
	EstimatedDeliveryTime string `json:"estimatedDeliveryTime"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
