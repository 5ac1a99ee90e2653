package services

import (
	"go.uber.org/zap"

	"foodiehub/entity"
	"foodiehub/repository"
)

// OrderService covers everything after checkout: listing, detail and
// the status lifecycle. Status writes go through the repository's
// guarded update; this layer decides which transitions each caller
// may request.
type OrderService struct {
	Repo *repository.OrderRepository
	Log  *zap.Logger
}

func NewOrderService(repo *repository.OrderRepository, log *zap.Logger) *OrderService {
	return &OrderService{Repo: repo, Log: log}
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetForUser(userID, orderID)
}

// Cancel is the customer-facing transition. The repository rejects it
// once the order is delivered or already cancelled.
func (s *OrderService) Cancel(userID, orderID uint) error {
	if _, err := s.Repo.GetForUser(userID, orderID); err != nil {
		return err
	}
	if err := s.Repo.UpdateStatus(orderID, entity.StatusCancelled); err != nil {
		return err
	}
	s.Log.Info("order cancelled", zap.Uint("userId", userID), zap.Uint("orderId", orderID))
	return nil
}

// SetStatus is the back-office transition (admin endpoints).
func (s *OrderService) SetStatus(orderID uint, next entity.OrderStatus) error {
	if err := s.Repo.UpdateStatus(orderID, next); err != nil {
		return err
	}
	s.Log.Info("order status updated", zap.Uint("orderId", orderID), zap.String("status", string(next)))
	return nil
}
