package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
)

// Transitions are admin actions. Each one is a guarded UPDATE inside a
// transaction: zero affected rows means the order had already moved on, which
// keeps the Confirmed -> on-the-way -> delivered chain monotonic under
// concurrent requests.

// Dispatch moves a confirmed order onto the road.
func (s *OrderService) Dispatch(orderID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.StatusConfirmed, entity.StatusOnTheWay)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("order dispatched", zap.Uint("orderId", orderID))
	if s.Notify != nil {
		s.Notify.OrderStatusChanged(orderID, entity.StatusOnTheWay)
	}
	return nil
}

// Deliver finishes an order. The delivery agent's OTP must match the code
// generated at checkout before the terminal transition is applied.
func (s *OrderService) Deliver(orderID uint, otp string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.Get(orderID)
		if err != nil {
			return err
		}
		if o.OTP != otp {
			return ErrOTPMismatch
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.StatusOnTheWay, entity.StatusDelivered)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("order delivered", zap.Uint("orderId", orderID))
	if s.Notify != nil {
		s.Notify.OrderStatusChanged(orderID, entity.StatusDelivered)
	}
	return nil
}
