package console

import (
	"fmt"
	"io"

	apperrors "studycafe/pkg/errors"
	"studycafe/pkg/model"
)

const (
	bannerLine       = "*** Welcome to the study cafe ***"
	unexpectedErrMsg = "something went wrong, please ask the staff for help"
)

// Presenter renders everything the customer sees. Write failures on the
// console are not recoverable, so they are ignored.
type Presenter struct {
	out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) Welcome() {
	p.println(bannerLine)
}

func (p *Presenter) PassTypeMenu() {
	p.println()
	p.println("Which pass would you like to buy?")
	for i, t := range model.PassTypes {
		p.printf("%d. %s\n", i+1, t.DisplayName())
	}
}

func (p *Presenter) PassList(passes []model.SeatPass) {
	p.println()
	p.println("Available passes:")
	for i, pass := range passes {
		p.printf("%d. %s - %d\n", i+1, pass.Label(), pass.Price)
	}
}

// LockerOffer shows the locker price when one is sold with the chosen pass.
func (p *Presenter) LockerOffer(locker *model.LockerPass) {
	p.println()
	if locker != nil {
		p.printf("A locker is available for %d (%s).\n", locker.Price, locker.Label())
	}
	p.println("Would you like to use a locker?")
	p.println("1. Yes")
	p.println("2. No")
}

func (p *Presenter) LockerUnavailable(seat model.SeatPass) {
	p.printf("No locker is sold with the %s; continuing without one.\n", seat.Label())
}

func (p *Presenter) Retry() {
	p.println("Please try again.")
}

func (p *Presenter) Receipt(r *model.Receipt) {
	order := r.Order
	seat := order.SeatPass()

	p.println()
	p.println("=== Order summary ===")
	p.printf("Order id: %s\n", r.ID)
	p.printf("Seat pass: %s\n", seat.Label())
	if locker, ok := order.LockerPass(); ok {
		p.printf("Locker: %s\n", locker.Label())
	}
	if discount := order.DiscountPrice(); discount > 0 {
		p.printf("Discount: %d\n", discount)
	}
	p.printf("Total: %d\n", order.TotalPrice())
	p.println()
}

// Error prints the customer-facing message of err. Causes stay in the logs.
func (p *Presenter) Error(err error) {
	if err == nil {
		return
	}
	message := unexpectedErrMsg
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInternal {
		message = appErr.Message
	}
	p.printf("[ERROR] %s\n", message)
}

func (p *Presenter) println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

func (p *Presenter) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}
