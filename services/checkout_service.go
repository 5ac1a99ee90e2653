package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodiehub/cart"
	"foodiehub/entity"
	"foodiehub/pkg/pricing"
)

// Typed declines. Each names the precondition that failed; none of
// them leaves any state behind.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoAddress       = errors.New("no delivery address selected")
	ErrNoCard          = errors.New("no payment method selected")
)

// OrderInserter is the slice of the order store checkout depends on.
// The gorm repository implements it; tests substitute a failing one.
type OrderInserter interface {
	InsertOrderWithItems(o *entity.Order, items []entity.OrderItem) error
}

// AddressSource and CardSource are the registry operations the
// assembler needs: resolve an explicit selection or fall back to the
// user's default.
type AddressSource interface {
	GetForUser(userID, id uint) (*entity.Address, error)
	GetDefault(userID uint) (*entity.Address, error)
}

type CardSource interface {
	GetForUser(userID, id uint) (*entity.PaymentCard, error)
	GetDefault(userID uint) (*entity.PaymentCard, error)
}

// CheckoutService is the one place the cart, the registries and the
// order store meet. It turns the live cart into an immutable order.
type CheckoutService struct {
	Carts     *cart.Manager
	Orders    OrderInserter
	Addresses AddressSource
	Cards     CardSource
	Pricing   pricing.Config
	Log       *zap.Logger
}

func NewCheckoutService(carts *cart.Manager, orders OrderInserter, addrs AddressSource, cards CardSource, cfg pricing.Config, log *zap.Logger) *CheckoutService {
	return &CheckoutService{Carts: carts, Orders: orders, Addresses: addrs, Cards: cards, Pricing: cfg, Log: log}
}

type CheckoutIn struct {
	AddressID uint `json:"addressId"` // 0 = use default
	CardID    uint `json:"cardId"`    // 0 = use default
}

// Checkout runs the strict sequence: snapshot cart, resolve address
// and card, price, persist order+items atomically, then clear the
// cart. Any failure before the commit leaves both the cart and the
// order store untouched.
func (s *CheckoutService) Checkout(userID uint, in *CheckoutIn) (*entity.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	store := s.Carts.For(userID)
	snap := store.Snapshot()
	if snap.Empty() {
		return nil, ErrEmptyCart
	}

	addr, err := s.resolveAddress(userID, in.AddressID)
	if err != nil {
		return nil, err
	}
	card, err := s.resolveCard(userID, in.CardID)
	if err != nil {
		return nil, err
	}

	summary := s.Pricing.Summarize(snap.Subtotal)

	order := &entity.Order{
		Number:                uuid.NewString(),
		UserID:                userID,
		OrderDate:             time.Now(),
		Subtotal:              summary.Subtotal,
		Tax:                   summary.Tax,
		DeliveryFee:           summary.DeliveryFee,
		TotalAmount:           summary.Total,
		Status:                entity.StatusPending,
		DeliveryAddress:       formatAddress(addr),
		EstimatedDeliveryTime: summary.EstimatedDelivery,
	}

	items := make([]entity.OrderItem, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		items = append(items, entity.OrderItem{
			ProductID:        l.ItemID,
			ProductName:      l.ItemName,
			ProductImage:     l.ItemImage,
			Quantity:         l.Quantity,
			Price:            l.PerUnit(),
			Total:            l.Total(),
			SpicyLevel:       l.SpicyLevel,
			SelectedToppings: entity.JoinSelections(selectionNames(l.Toppings)),
			SelectedSides:    entity.JoinSelections(selectionNames(l.Sides)),
		})
	}

	if err := s.Orders.InsertOrderWithItems(order, items); err != nil {
		s.Log.Error("checkout persist failed",
			zap.Uint("userId", userID),
			zap.Error(err))
		return nil, fmt.Errorf("persist order: %w", err)
	}

	// Only after the commit; a failed persist must keep the cart so
	// the user can retry.
	store.Clear()

	s.Log.Info("order placed",
		zap.Uint("userId", userID),
		zap.Uint("orderId", order.ID),
		zap.String("number", order.Number),
		zap.Int64("total", order.TotalAmount),
		zap.String("card", card.LastFour))
	return order, nil
}

func (s *CheckoutService) resolveAddress(userID, id uint) (*entity.Address, error) {
	var (
		a   *entity.Address
		err error
	)
	if id != 0 {
		a, err = s.Addresses.GetForUser(userID, id)
	} else {
		a, err = s.Addresses.GetDefault(userID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoAddress
	}
	return a, err
}

func (s *CheckoutService) resolveCard(userID, id uint) (*entity.PaymentCard, error) {
	var (
		c   *entity.PaymentCard
		err error
	)
	if id != 0 {
		c, err = s.Cards.GetForUser(userID, id)
	} else {
		c, err = s.Cards.GetDefault(userID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoCard
	}
	return c, err
}

// formatAddress builds the string snapshot frozen onto the order.
func formatAddress(a *entity.Address) string {
	parts := []string{a.Title, a.Detail}
	if a.Note != "" {
		parts = append(parts, a.Note)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func selectionNames(sel []cart.Selection) []string {
	names := make([]string, 0, len(sel))
	for _, s := range sel {
		names = append(names, s.Name)
	}
	return names
}
