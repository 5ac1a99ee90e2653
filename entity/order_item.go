package entity

import (
	"strings"

	"gorm.io/gorm"
)

// OrderItem snapshots one cart line at checkout. Product fields are
// copied, not referenced, so later catalog edits leave past orders
// untouched. Selections are stored comma-joined.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ProductID    uint   `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`

	Quantity   int     `json:"quantity"`
	Price      int64   `json:"price"`
	Total      int64   `json:"total"`
	SpicyLevel float64 `json:"spicyLevel"`

	SelectedToppings string `json:"selectedToppings"`
	SelectedSides    string `json:"selectedSides"`
}

// JoinSelections encodes selection names for storage.
func JoinSelections(names []string) string {
	return strings.Join(names, ",")
}

// SplitSelections decodes a stored selection list, filtering empties
// so a blank column reads back as no selections rather than [""].
func SplitSelections(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
