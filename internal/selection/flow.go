package selection

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	selectionerrors "studycafe/internal/selection/errors"
	apperrors "studycafe/pkg/errors"
	"studycafe/pkg/model"
	"studycafe/pkg/sanitizer"
)

const (
	lockerYes = 1
	lockerNo  = 2
)

// Prompter renders the prompt of each state before its line is read.
type Prompter interface {
	PromptPassType()
	PromptPass(passes []model.SeatPass)
	PromptLocker(seat model.SeatPass)
}

type noopPrompter struct{}

func (noopPrompter) PromptPassType() {}

func (noopPrompter) PromptPass(passes []model.SeatPass) {}

func (noopPrompter) PromptLocker(seat model.SeatPass) {}

// SelectionFlow reads one line per state. Every state is a single attempt:
// a rejected line is reported as INVALID_SELECTION and never re-read.
type SelectionFlow struct {
	reader   *bufio.Reader
	prompter Prompter
}

func NewSelectionFlow(in io.Reader, prompter Prompter) *SelectionFlow {
	if prompter == nil {
		prompter = noopPrompter{}
	}
	return &SelectionFlow{
		reader:   bufio.NewReader(in),
		prompter: prompter,
	}
}

func (f *SelectionFlow) SelectPassType() (model.PassType, error) {
	f.prompter.PromptPassType()

	choice, err := f.readChoice(StepSelectPassType, 1, len(model.PassTypes))
	if err != nil {
		return "", err
	}
	return model.PassTypes[choice-1], nil
}

func (f *SelectionFlow) SelectPass(passes []model.SeatPass) (model.SeatPass, error) {
	f.prompter.PromptPass(passes)

	choice, err := f.readChoice(StepSelectPass, 1, len(passes))
	if err != nil {
		return model.SeatPass{}, err
	}
	return passes[choice-1], nil
}

func (f *SelectionFlow) SelectLocker(seat model.SeatPass) (bool, error) {
	f.prompter.PromptLocker(seat)

	choice, err := f.readChoice(StepSelectLocker, lockerYes, lockerNo)
	if err != nil {
		return false, err
	}
	return choice == lockerYes, nil
}

// Steps returns the three states bound to catalog, ready for RunSteps.
func (f *SelectionFlow) Steps(catalog *model.PassCatalog) []Step {
	return []Step{
		NewStep(StepSelectPassType, func(sel *Selection) error {
			passType, err := f.SelectPassType()
			if err != nil {
				return err
			}
			sel.PassType = passType
			return nil
		}),
		NewStep(StepSelectPass, func(sel *Selection) error {
			pass, err := f.SelectPass(catalog.FindByType(sel.PassType))
			if err != nil {
				return err
			}
			sel.SeatPass = pass
			return nil
		}),
		NewStep(StepSelectLocker, func(sel *Selection) error {
			wants, err := f.SelectLocker(sel.SeatPass)
			if err != nil {
				return err
			}
			sel.WantsLocker = wants
			return nil
		}),
	}
}

func (f *SelectionFlow) Run(catalog *model.PassCatalog) (*Selection, error) {
	sel := &Selection{}
	if err := RunSteps(sel, f.Steps(catalog)...); err != nil {
		return nil, err
	}
	return sel, nil
}

// readChoice reads one line and accepts it only as an integer in [min, max].
func (f *SelectionFlow) readChoice(state string, min, max int) (int, error) {
	line, err := f.readLine()
	if err != nil {
		return 0, apperrors.InvalidSelection(selectionerrors.NewSelectionError(state, line, err))
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, apperrors.InvalidSelection(
			selectionerrors.NewSelectionError(state, line, errors.Join(selectionerrors.ErrNotANumber, err)),
		)
	}
	if choice < min || choice > max {
		return 0, apperrors.InvalidSelection(selectionerrors.NewSelectionError(state, line, selectionerrors.ErrOutOfRange))
	}
	return choice, nil
}

// readLine returns the next line without its terminator. A final line with
// no trailing newline still counts; EOF before any byte is ErrNoInput.
func (f *SelectionFlow) readLine() (string, error) {
	line, err := f.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Join(selectionerrors.ErrReadFailure, err)
		}
		if line == "" {
			return "", selectionerrors.ErrNoInput
		}
	}
	return sanitizer.SanitizeInputLine(line), nil
}
