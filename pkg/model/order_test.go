package model

import (
	"errors"
	"testing"
)

func TestNewPassOrder_RequiresSeatPass(t *testing.T) {
	order, err := NewPassOrder(nil, &LockerPass{Type: PassTypeFixed, Duration: 4, Price: 10000})

	if !errors.Is(err, ErrSeatPassRequired) {
		t.Errorf("NewPassOrder(nil, ...) error = %v, want %v", err, ErrSeatPassRequired)
	}
	if order != nil {
		t.Errorf("NewPassOrder(nil, ...) should not return an order")
	}
}

func TestPassOrder_Pricing(t *testing.T) {
	tests := []struct {
		name         string
		seat         SeatPass
		locker       *LockerPass
		wantTotal    int
		wantDiscount int
	}{
		{
			name:         "no locker no discount",
			seat:         SeatPass{Type: PassTypeHourly, Duration: 2, Price: 4000, DiscountRate: 0},
			wantTotal:    4000,
			wantDiscount: 0,
		},
		{
			name:         "locker without discount",
			seat:         SeatPass{Type: PassTypeHourly, Duration: 2, Price: 4000, DiscountRate: 0},
			locker:       &LockerPass{Type: PassTypeHourly, Duration: 2, Price: 2000},
			wantTotal:    6000,
			wantDiscount: 0,
		},
		{
			name:         "ten percent discount",
			seat:         SeatPass{Type: PassTypeWeekly, Duration: 2, Price: 100000, DiscountRate: 0.1},
			wantTotal:    90000,
			wantDiscount: 10000,
		},
		{
			name:         "discount never touches locker",
			seat:         SeatPass{Type: PassTypeFixed, Duration: 4, Price: 250000, DiscountRate: 0.1},
			locker:       &LockerPass{Type: PassTypeFixed, Duration: 4, Price: 20000},
			wantTotal:    245000,
			wantDiscount: 25000,
		},
		{
			name:         "five percent on twelve weeks",
			seat:         SeatPass{Type: PassTypeWeekly, Duration: 12, Price: 400000, DiscountRate: 0.05},
			wantTotal:    380000,
			wantDiscount: 20000,
		},
		{
			name:         "half rounds away from zero",
			seat:         SeatPass{Type: PassTypeHourly, Duration: 1, Price: 5, DiscountRate: 0.1},
			wantTotal:    5,
			wantDiscount: 0,
		},
		{
			name:         "rounds to nearest",
			seat:         SeatPass{Type: PassTypeHourly, Duration: 1, Price: 999, DiscountRate: 0.15},
			wantTotal:    849,
			wantDiscount: 150,
		},
		{
			name:         "free pass with locker",
			seat:         SeatPass{Type: PassTypeWeekly, Duration: 1, Price: 0, DiscountRate: 0.5},
			locker:       &LockerPass{Type: PassTypeWeekly, Duration: 1, Price: 3000},
			wantTotal:    3000,
			wantDiscount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seat := tt.seat
			order, err := NewPassOrder(&seat, tt.locker)
			if err != nil {
				t.Fatalf("NewPassOrder() unexpected error: %v", err)
			}

			if got := order.TotalPrice(); got != tt.wantTotal {
				t.Errorf("TotalPrice() = %d, want %d", got, tt.wantTotal)
			}
			if got := order.DiscountPrice(); got != tt.wantDiscount {
				t.Errorf("DiscountPrice() = %d, want %d", got, tt.wantDiscount)
			}
			if order.TotalPrice() != tt.wantTotal || order.DiscountPrice() != tt.wantDiscount {
				t.Errorf("pricing should be idempotent across calls")
			}
		})
	}
}

func TestPassOrder_LockerPass(t *testing.T) {
	seat := SeatPass{Type: PassTypeFixed, Duration: 4, Price: 250000, DiscountRate: 0.1}

	t.Run("absent", func(t *testing.T) {
		order, _ := NewPassOrder(&seat, nil)
		if _, ok := order.LockerPass(); ok {
			t.Errorf("LockerPass() should be absent when constructed without one")
		}
	})

	t.Run("present", func(t *testing.T) {
		locker := LockerPass{Type: PassTypeFixed, Duration: 4, Price: 20000}
		order, _ := NewPassOrder(&seat, &locker)
		got, ok := order.LockerPass()
		if !ok {
			t.Fatalf("LockerPass() should be present")
		}
		if got != locker {
			t.Errorf("LockerPass() = %+v, want %+v", got, locker)
		}
	})

	t.Run("seat pass accessor", func(t *testing.T) {
		order, _ := NewPassOrder(&seat, nil)
		if order.SeatPass() != seat {
			t.Errorf("SeatPass() = %+v, want %+v", order.SeatPass(), seat)
		}
	})
}
