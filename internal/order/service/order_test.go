package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "studycafe/pkg/errors"
	"studycafe/pkg/logger"
	"studycafe/pkg/model"

	"github.com/google/uuid"
)

func TestPlace(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	svc := NewOrderService(logger.Discard(), func() time.Time { return issuedAt })

	tests := []struct {
		name         string
		seat         *model.SeatPass
		locker       *model.LockerPass
		wantTotal    int
		wantDiscount int
	}{
		{
			name:         "hourly pass",
			seat:         &model.SeatPass{Type: model.PassTypeHourly, Duration: 2, Price: 4000},
			wantTotal:    4000,
			wantDiscount: 0,
		},
		{
			name:         "fixed pass with locker",
			seat:         &model.SeatPass{Type: model.PassTypeFixed, Duration: 4, Price: 250000, DiscountRate: 0.1},
			locker:       &model.LockerPass{Type: model.PassTypeFixed, Duration: 4, Price: 10000},
			wantTotal:    235000,
			wantDiscount: 25000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := svc.Place(context.Background(), tt.seat, tt.locker)
			if err != nil {
				t.Fatalf("Place() unexpected error: %v", err)
			}

			id, err := uuid.Parse(receipt.ID)
			if err != nil {
				t.Fatalf("receipt ID %q is not a UUID: %v", receipt.ID, err)
			}
			if id.Version() != 4 {
				t.Errorf("receipt ID version = %d, want 4", id.Version())
			}
			if !receipt.IssuedAt.Equal(issuedAt) {
				t.Errorf("IssuedAt = %v, want %v", receipt.IssuedAt, issuedAt)
			}
			if got := receipt.Order.TotalPrice(); got != tt.wantTotal {
				t.Errorf("TotalPrice() = %d, want %d", got, tt.wantTotal)
			}
			if got := receipt.Order.DiscountPrice(); got != tt.wantDiscount {
				t.Errorf("DiscountPrice() = %d, want %d", got, tt.wantDiscount)
			}
			if _, hasLocker := receipt.Order.LockerPass(); hasLocker != (tt.locker != nil) {
				t.Errorf("LockerPass() present = %v, want %v", hasLocker, tt.locker != nil)
			}
		})
	}
}

func TestPlace_UniqueIDs(t *testing.T) {
	svc := NewOrderService(logger.Discard(), nil)
	seat := &model.SeatPass{Type: model.PassTypeHourly, Duration: 2, Price: 4000}

	first, err := svc.Place(context.Background(), seat, nil)
	if err != nil {
		t.Fatalf("Place() unexpected error: %v", err)
	}
	second, err := svc.Place(context.Background(), seat, nil)
	if err != nil {
		t.Fatalf("Place() unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("two orders share receipt ID %s", first.ID)
	}
	if first.IssuedAt.IsZero() {
		t.Errorf("IssuedAt should default to the wall clock")
	}
}

func TestPlace_Errors(t *testing.T) {
	svc := NewOrderService(logger.Discard(), nil)

	t.Run("nil seat pass", func(t *testing.T) {
		_, err := svc.Place(context.Background(), nil, nil)
		if !apperrors.HasCode(err, apperrors.CodeInternal) {
			t.Fatalf("Place() error = %v, want %s", err, apperrors.CodeInternal)
		}
		if !errors.Is(err, model.ErrSeatPassRequired) {
			t.Errorf("error chain should contain ErrSeatPassRequired")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		seat := &model.SeatPass{Type: model.PassTypeHourly, Duration: 2, Price: 4000}
		_, err := svc.Place(ctx, seat, nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Place() error = %v, want context.Canceled in chain", err)
		}
	})
}
