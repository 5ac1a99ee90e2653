package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodiehub/cart"
	"foodiehub/pkg/pricing"
	"foodiehub/repository"
)

// ErrItemNotFound is returned when an add references a catalog item
// that does not exist.
var ErrItemNotFound = errors.New("menu item not found")

// CartService glues the per-user cart stores to the catalog and the
// pricing engine. The stores themselves are in-memory; nothing here
// touches durable storage.
type CartService struct {
	Carts   *cart.Manager
	Catalog *repository.CatalogRepository
	Pricing pricing.Config
	Log     *zap.Logger
}

func NewCartService(carts *cart.Manager, catalog *repository.CatalogRepository, cfg pricing.Config, log *zap.Logger) *CartService {
	return &CartService{Carts: carts, Catalog: catalog, Pricing: cfg, Log: log}
}

type AddToCartIn struct {
	ItemID     uint    `json:"itemId" binding:"required"`
	Qty        int     `json:"qty" binding:"min=0"`
	ToppingIDs []uint  `json:"toppingIds"`
	SideIDs    []uint  `json:"sideIds"`
	SpicyLevel float64 `json:"spicyLevel"`
}

// CartView is what the UI renders: the snapshot plus the live
// pricing breakdown.
type CartView struct {
	Cart    cart.Snapshot   `json:"cart"`
	Summary pricing.Summary `json:"summary"`
}

func (s *CartService) view(snap cart.Snapshot) CartView {
	return CartView{Cart: snap, Summary: s.Pricing.Summarize(snap.Subtotal)}
}

func (s *CartService) Get(userID uint) CartView {
	return s.view(s.Carts.For(userID).Snapshot())
}

func (s *CartService) Add(userID uint, in *AddToCartIn) (CartView, error) {
	item, err := s.Catalog.GetItemByID(in.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartView{}, ErrItemNotFound
		}
		return CartView{}, err
	}

	store := s.Carts.For(userID)
	line := store.Add(item, in.Qty, in.ToppingIDs, in.SideIDs, in.SpicyLevel)
	s.Log.Debug("cart add",
		zap.Uint("userId", userID),
		zap.Uint("itemId", item.ID),
		zap.String("lineId", line.LineID),
		zap.Int("qty", line.Quantity))
	return s.view(store.Snapshot()), nil
}

func (s *CartService) UpdateQty(userID uint, lineID string, qty int) CartView {
	store := s.Carts.For(userID)
	store.UpdateQuantity(lineID, qty)
	return s.view(store.Snapshot())
}

func (s *CartService) Remove(userID uint, lineID string) CartView {
	store := s.Carts.For(userID)
	store.Remove(lineID)
	return s.view(store.Snapshot())
}

func (s *CartService) Clear(userID uint) CartView {
	store := s.Carts.For(userID)
	store.Clear()
	return s.view(store.Snapshot())
}
