package service

import (
	"context"
	"time"

	apperrors "studycafe/pkg/errors"
	"studycafe/pkg/logger"
	"studycafe/pkg/model"

	"github.com/google/uuid"
)

type OrderService interface {
	Place(ctx context.Context, seat *model.SeatPass, locker *model.LockerPass) (*model.Receipt, error)
}

type orderService struct {
	log *logger.Logger
	now func() time.Time
}

// NewOrderService stamps receipts with now; a nil clock falls back to time.Now.
func NewOrderService(log *logger.Logger, now func() time.Time) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{
		log: log,
		now: now,
	}
}

func (s *orderService) Place(ctx context.Context, seat *model.SeatPass, locker *model.LockerPass) (*model.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Internal("Order was cancelled", err)
	}

	order, err := model.NewPassOrder(seat, locker)
	if err != nil {
		s.log.Error("Failed to build pass order", "error", err)
		return nil, apperrors.Internal("Failed to build pass order", err)
	}

	receipt := &model.Receipt{
		ID:       uuid.NewString(),
		Order:    order,
		IssuedAt: s.now(),
	}

	s.log.Info("Order placed",
		"order_id", receipt.ID,
		"pass", seat.Label(),
		"locker", locker != nil,
		"discount", order.DiscountPrice(),
		"total", order.TotalPrice(),
	)
	return receipt, nil
}
