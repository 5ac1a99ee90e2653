package repository

import (
	"errors"

	"foodiehub/entity"

	"gorm.io/gorm"
)

// ErrStatusConflict means the order's status changed between the
// read and the guarded update; the caller may re-read and retry.
var ErrStatusConflict = errors.New("order status changed concurrently")

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// InsertOrderWithItems persists the order and all its items in one
// transaction: both commit or neither does.
func (r *OrderRepository) InsertOrderWithItems(o *entity.Order, items []entity.OrderItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListForUser returns the user's orders newest first, items resolved.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetByID(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetForUser returns the order only if it belongs to the user.
func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus moves the order to next if the transition is legal.
// The write is guarded on the status just read (WHERE status =
// current), so a concurrent change surfaces as ErrStatusConflict
// instead of being overwritten.
func (r *OrderRepository) UpdateStatus(orderID uint, next entity.OrderStatus) error {
	if !next.Valid() {
		return &entity.IllegalTransitionError{To: next}
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.Select("id, status").First(&o, orderID).Error; err != nil {
			return err
		}
		if !o.Status.CanTransition(next) {
			return &entity.IllegalTransitionError{From: o.Status, To: next}
		}
		res := tx.Model(&entity.Order{}).
			Where("id = ? AND status = ?", orderID, o.Status).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
}
