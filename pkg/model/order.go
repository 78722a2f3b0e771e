package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrSeatPassRequired = errors.New("pass order requires a seat pass")

// PassOrder is one seat pass plus an optional locker. Only the seat price is
// discounted; the locker is always charged in full.
type PassOrder struct {
	seatPass   *SeatPass
	lockerPass *LockerPass
}

func NewPassOrder(seatPass *SeatPass, lockerPass *LockerPass) (*PassOrder, error) {
	if seatPass == nil {
		return nil, ErrSeatPassRequired
	}
	return &PassOrder{
		seatPass:   seatPass,
		lockerPass: lockerPass,
	}, nil
}

func (o *PassOrder) SeatPass() SeatPass {
	return *o.seatPass
}

func (o *PassOrder) LockerPass() (LockerPass, bool) {
	if o.lockerPass == nil {
		return LockerPass{}, false
	}
	return *o.lockerPass, true
}

func (o *PassOrder) TotalPrice() int {
	total := o.discountedSeatPrice()
	if o.lockerPass != nil {
		total += o.lockerPass.Price
	}
	return total
}

func (o *PassOrder) DiscountPrice() int {
	return o.seatPass.Price - o.discountedSeatPrice()
}

// discountedSeatPrice is round(price * (1 - rate)) evaluated in decimal
// arithmetic, rounding halves away from zero.
func (o *PassOrder) discountedSeatPrice() int {
	price := decimal.NewFromInt(int64(o.seatPass.Price))
	keep := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(o.seatPass.DiscountRate))
	return int(price.Mul(keep).Round(0).IntPart())
}

type Receipt struct {
	ID       string
	Order    *PassOrder
	IssuedAt time.Time
}
