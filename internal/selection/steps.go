package selection

import "studycafe/pkg/model"

const (
	StepSelectPassType = "select_pass_type"
	StepSelectPass     = "select_pass"
	StepSelectLocker   = "select_locker"
)

// Selection accumulates the outcome of each state as the pipeline advances.
type Selection struct {
	PassType    model.PassType
	SeatPass    model.SeatPass
	WantsLocker bool
}

type Step struct {
	Name    string
	Execute func(sel *Selection) error
}

func NewStep(name string, execute func(sel *Selection) error) Step {
	return Step{
		Name:    name,
		Execute: execute,
	}
}

// RunSteps executes steps in order and stops at the first failure. The
// failing step's error is returned as is.
func RunSteps(sel *Selection, steps ...Step) error {
	for _, step := range steps {
		if err := step.Execute(sel); err != nil {
			return err
		}
	}
	return nil
}
