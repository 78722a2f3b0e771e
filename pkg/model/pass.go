package model

import "fmt"

type PassType string

const (
	PassTypeHourly PassType = "HOURLY"
	PassTypeWeekly PassType = "WEEKLY"
	PassTypeFixed  PassType = "FIXED"
)

// PassTypes lists every pass type in menu order.
var PassTypes = []PassType{PassTypeHourly, PassTypeWeekly, PassTypeFixed}

// ParsePassType is case-sensitive: "hourly" is not a pass type.
func ParsePassType(s string) (PassType, error) {
	for _, t := range PassTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown pass type %q", s)
}

func (t PassType) DisplayName() string {
	switch t {
	case PassTypeHourly:
		return "Hourly pass"
	case PassTypeWeekly:
		return "Weekly pass"
	case PassTypeFixed:
		return "Fixed seat pass"
	default:
		return string(t)
	}
}

func (t PassType) DurationUnit() string {
	if t == PassTypeHourly {
		return "hour"
	}
	return "week"
}

type SeatPass struct {
	Type         PassType `validate:"required,pass_type"`
	Duration     int      `validate:"gt=0"`
	Price        int      `validate:"gte=0"`
	DiscountRate float64  `validate:"gte=0,lt=1"`
}

type LockerPass struct {
	Type     PassType `validate:"required,pass_type"`
	Duration int      `validate:"gt=0"`
	Price    int      `validate:"gte=0"`
}

// Label renders the pass the way it is offered to customers, e.g. "2 hour pass".
func (p SeatPass) Label() string {
	return durationLabel(p.Type, p.Duration)
}

func (p LockerPass) Label() string {
	return durationLabel(p.Type, p.Duration) + " locker"
}

func durationLabel(t PassType, duration int) string {
	return fmt.Sprintf("%d %s pass", duration, t.DurationUnit())
}
