package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodiehub/cart"
	"foodiehub/entity"
	"foodiehub/pkg/pricing"
)

type stubOrders struct {
	failWith error
	orders   []*entity.Order
	items    [][]entity.OrderItem
}

func (s *stubOrders) InsertOrderWithItems(o *entity.Order, items []entity.OrderItem) error {
	if s.failWith != nil {
		return s.failWith
	}
	o.ID = uint(len(s.orders) + 1)
	s.orders = append(s.orders, o)
	s.items = append(s.items, items)
	return nil
}

type stubAddresses struct {
	addr *entity.Address
}

func (s *stubAddresses) GetForUser(userID, id uint) (*entity.Address, error) {
	if s.addr != nil && s.addr.ID == id && s.addr.UserID == userID {
		return s.addr, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAddresses) GetDefault(userID uint) (*entity.Address, error) {
	if s.addr != nil && s.addr.UserID == userID && s.addr.IsDefault {
		return s.addr, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCards struct {
	card *entity.PaymentCard
}

func (s *stubCards) GetForUser(userID, id uint) (*entity.PaymentCard, error) {
	if s.card != nil && s.card.ID == id && s.card.UserID == userID {
		return s.card, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCards) GetDefault(userID uint) (*entity.PaymentCard, error) {
	if s.card != nil && s.card.UserID == userID && s.card.IsDefault {
		return s.card, nil
	}
	return nil, gorm.ErrRecordNotFound
}

var testPricing = pricing.Config{TaxRateBP: 200, DeliveryFee: 150, EstimatedDelivery: "30-45 min"}

func defaultAddress() *entity.Address {
	a := &entity.Address{UserID: 7, Title: "Home", Detail: "42 Elm Street", IsDefault: true}
	a.ID = 1
	return a
}

func defaultCard() *entity.PaymentCard {
	c := &entity.PaymentCard{UserID: 7, HolderName: "J Doe", LastFour: "4242", Brand: "visa", IsDefault: true}
	c.ID = 1
	return c
}

func fixture(orders *stubOrders, addr *entity.Address, card *entity.PaymentCard) (*CheckoutService, *cart.Manager) {
	carts := cart.NewManager()
	svc := NewCheckoutService(carts, orders, &stubAddresses{addr: addr}, &stubCards{card: card}, testPricing, zap.NewNop())
	return svc, carts
}

func pizzaItem() *entity.MenuItem {
	m := &entity.MenuItem{Name: "Pepperoni Pizza", Price: 1500, Picture: "pizza.png"}
	m.ID = 3
	m.Toppings = []entity.Topping{{Name: "Extra Cheese"}}
	m.Toppings[0].ID = 31
	m.SideOptions = []entity.SideOption{{Name: "Garlic Bread", Price: 300}}
	m.SideOptions[0].ID = 41
	return m
}

func TestCheckoutHappyPath(t *testing.T) {
	orders := &stubOrders{}
	svc, carts := fixture(orders, defaultAddress(), defaultCard())

	store := carts.For(7)
	store.Add(pizzaItem(), 2, []uint{31}, []uint{41}, 0.3)

	order, err := svc.Checkout(7, &CheckoutIn{})
	require.NoError(t, err)
	require.Len(t, orders.orders, 1)

	subtotal := int64((1500 + 300) * 2)
	assert.Equal(t, subtotal, order.Subtotal)
	assert.Equal(t, testPricing.Tax(subtotal), order.Tax)
	assert.Equal(t, int64(150), order.DeliveryFee)
	assert.Equal(t, subtotal+order.Tax+order.DeliveryFee, order.TotalAmount)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, "Home, 42 Elm Street", order.DeliveryAddress)
	assert.Equal(t, "30-45 min", order.EstimatedDeliveryTime)
	assert.NotEmpty(t, order.Number)
	assert.False(t, order.OrderDate.IsZero())

	require.Len(t, orders.items[0], 1)
	item := orders.items[0][0]
	assert.Equal(t, uint(3), item.ProductID)
	assert.Equal(t, "Pepperoni Pizza", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, int64(1800), item.Price)
	assert.Equal(t, "Extra Cheese", item.SelectedToppings)
	assert.Equal(t, "Garlic Bread", item.SelectedSides)
	assert.Equal(t, []string{"Garlic Bread"}, entity.SplitSelections(item.SelectedSides))

	// successful checkout clears the cart
	snap := store.Snapshot()
	assert.True(t, snap.Empty())
	assert.Zero(t, snap.Subtotal)
	assert.Zero(t, snap.ItemCount)
}

func TestCheckoutPersistFailureKeepsCart(t *testing.T) {
	orders := &stubOrders{failWith: errors.New("db unavailable")}
	svc, carts := fixture(orders, defaultAddress(), defaultCard())

	store := carts.For(7)
	store.Add(pizzaItem(), 3, nil, nil, 0)
	before := store.Snapshot()

	_, err := svc.Checkout(7, &CheckoutIn{})
	require.Error(t, err)
	assert.Empty(t, orders.orders, "no order may be recorded on failure")

	after := store.Snapshot()
	assert.Equal(t, before, after, "cart must survive a failed persist")
}

func TestCheckoutDeclines(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		svc, _ := fixture(&stubOrders{}, defaultAddress(), defaultCard())
		_, err := svc.Checkout(0, &CheckoutIn{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, _ := fixture(&stubOrders{}, defaultAddress(), defaultCard())
		_, err := svc.Checkout(7, &CheckoutIn{})
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("no address", func(t *testing.T) {
		orders := &stubOrders{}
		svc, carts := fixture(orders, nil, defaultCard())
		carts.For(7).Add(pizzaItem(), 1, nil, nil, 0)
		_, err := svc.Checkout(7, &CheckoutIn{})
		assert.ErrorIs(t, err, ErrNoAddress)
		assert.Empty(t, orders.orders)
		assert.False(t, carts.For(7).Snapshot().Empty(), "decline must not touch the cart")
	})

	t.Run("no card", func(t *testing.T) {
		svc, carts := fixture(&stubOrders{}, defaultAddress(), nil)
		carts.For(7).Add(pizzaItem(), 1, nil, nil, 0)
		_, err := svc.Checkout(7, &CheckoutIn{})
		assert.ErrorIs(t, err, ErrNoCard)
	})

	t.Run("foreign address rejected", func(t *testing.T) {
		addr := defaultAddress()
		addr.UserID = 99
		svc, carts := fixture(&stubOrders{}, addr, defaultCard())
		carts.For(7).Add(pizzaItem(), 1, nil, nil, 0)
		_, err := svc.Checkout(7, &CheckoutIn{AddressID: addr.ID})
		assert.ErrorIs(t, err, ErrNoAddress)
	})
}

func TestOrderSnapshotImmuneToAddressEdits(t *testing.T) {
	orders := &stubOrders{}
	addr := defaultAddress()
	svc, carts := fixture(orders, addr, defaultCard())
	carts.For(7).Add(pizzaItem(), 1, nil, nil, 0)

	order, err := svc.Checkout(7, &CheckoutIn{})
	require.NoError(t, err)
	frozen := order.DeliveryAddress

	addr.Detail = "relocated somewhere else"
	assert.Equal(t, frozen, orders.orders[0].DeliveryAddress)
}
