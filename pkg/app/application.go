package app

import (
	"context"
	"errors"
	"io"

	"studycafe/internal/catalog/repository"
	catalogservice "studycafe/internal/catalog/service"
	"studycafe/internal/catalog/validator"
	"studycafe/internal/console"
	orderservice "studycafe/internal/order/service"
	"studycafe/internal/selection"
	selectionerrors "studycafe/internal/selection/errors"
	"studycafe/pkg/config"
	apperrors "studycafe/pkg/errors"
	"studycafe/pkg/model"
)

type Application struct {
	cfg       *config.Config
	in        io.Reader
	presenter *console.Presenter
	catalogs  catalogservice.CatalogService
	orders    orderservice.OrderService
}

func NewApplication(cfg *config.Config, in io.Reader, out io.Writer) *Application {
	catalogs := catalogservice.NewCatalogService(
		repository.NewCSVSeatPassRepository(cfg.SeatPassCSVPath), cfg.SeatPassCSVPath,
		repository.NewCSVLockerPassRepository(cfg.LockerPassCSVPath), cfg.LockerPassCSVPath,
		validator.NewPassValidator(cfg.Log),
		cfg.Log,
	)

	return &Application{
		cfg:       cfg,
		in:        in,
		presenter: console.NewPresenter(out),
		catalogs:  catalogs,
		orders:    orderservice.NewOrderService(cfg.Log, nil),
	}
}

// Run serves one customer: load the catalogs, walk the selection states,
// place the order and print the receipt. Every failure is also shown on the
// console before it is returned.
func (a *Application) Run(ctx context.Context) error {
	a.presenter.Welcome()

	seats, err := a.catalogs.LoadPassCatalog(ctx)
	if err != nil {
		return a.fail(err)
	}
	lockers, err := a.catalogs.LoadLockerCatalog(ctx)
	if err != nil {
		return a.fail(err)
	}

	flow := selection.NewSelectionFlow(a.in, &prompter{presenter: a.presenter, lockers: lockers})
	steps := flow.Steps(seats)
	for i := range steps {
		steps[i] = a.withRetry(steps[i])
	}

	sel := &selection.Selection{}
	if err := selection.RunSteps(sel, steps...); err != nil {
		return a.fail(err)
	}

	seat := sel.SeatPass
	receipt, err := a.orders.Place(ctx, &seat, a.resolveLocker(sel, lockers))
	if err != nil {
		return a.fail(err)
	}

	a.presenter.Receipt(receipt)
	return nil
}

// resolveLocker returns nil when no locker was asked for or none is sold
// with the chosen pass; the order then goes ahead without one.
func (a *Application) resolveLocker(sel *selection.Selection, lockers *model.LockerCatalog) *model.LockerPass {
	if !sel.WantsLocker {
		return nil
	}
	locker, ok := lockers.FindFor(sel.SeatPass)
	if !ok {
		a.cfg.Log.Warn("No locker matches the selected pass",
			"type", sel.SeatPass.Type,
			"duration", sel.SeatPass.Duration,
		)
		a.presenter.LockerUnavailable(sel.SeatPass)
		return nil
	}
	return &locker
}

// withRetry re-runs a rejected state until SelectionMaxAttempts is spent.
// Exhausted or unreadable input is final.
func (a *Application) withRetry(step selection.Step) selection.Step {
	maxAttempts := max(a.cfg.SelectionMaxAttempts, 1)

	return selection.NewStep(step.Name, func(sel *selection.Selection) error {
		var err error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			if err = step.Execute(sel); err == nil {
				return nil
			}
			if !apperrors.HasCode(err, apperrors.CodeInvalidSelection) ||
				errors.Is(err, selectionerrors.ErrNoInput) ||
				errors.Is(err, selectionerrors.ErrReadFailure) {
				return err
			}

			a.cfg.Log.Warn("Selection rejected",
				"step", step.Name,
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"error", err,
			)
			if attempt < maxAttempts {
				a.presenter.Error(err)
				a.presenter.Retry()
			}
		}
		return err
	})
}

func (a *Application) fail(err error) error {
	a.presenter.Error(err)
	return err
}

// prompter shows the locker price alongside the locker question when the
// chosen pass has one.
type prompter struct {
	presenter *console.Presenter
	lockers   *model.LockerCatalog
}

func (p *prompter) PromptPassType() {
	p.presenter.PassTypeMenu()
}

func (p *prompter) PromptPass(passes []model.SeatPass) {
	p.presenter.PassList(passes)
}

func (p *prompter) PromptLocker(seat model.SeatPass) {
	if locker, ok := p.lockers.FindFor(seat); ok {
		p.presenter.LockerOffer(&locker)
		return
	}
	p.presenter.LockerOffer(nil)
}
