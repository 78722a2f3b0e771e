package model

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	err := validate.RegisterValidation("pass_type", func(fl validator.FieldLevel) bool {
		_, err := ParsePassType(fl.Field().String())
		return err == nil
	})
	if err != nil {
		t.Fatalf("failed to register pass_type: %v", err)
	}
	return validate
}

func TestSeatPass_ValidationTags(t *testing.T) {
	validate := newValidate(t)

	tests := []struct {
		name        string
		pass        SeatPass
		expectValid bool
		description string
	}{
		{
			name:        "valid hourly pass",
			pass:        SeatPass{Type: PassTypeHourly, Duration: 2, Price: 4000, DiscountRate: 0},
			expectValid: true,
			description: "all fields within range",
		},
		{
			name:        "free pass",
			pass:        SeatPass{Type: PassTypeWeekly, Duration: 1, Price: 0, DiscountRate: 0},
			expectValid: true,
			description: "price may be zero",
		},
		{
			name:        "missing type",
			pass:        SeatPass{Duration: 2, Price: 4000},
			expectValid: false,
			description: "type is required",
		},
		{
			name:        "unknown type",
			pass:        SeatPass{Type: "DAILY", Duration: 2, Price: 4000},
			expectValid: false,
			description: "type must be one of the enumerated names",
		},
		{
			name:        "zero duration",
			pass:        SeatPass{Type: PassTypeHourly, Duration: 0, Price: 4000},
			expectValid: false,
			description: "duration must be positive",
		},
		{
			name:        "negative price",
			pass:        SeatPass{Type: PassTypeHourly, Duration: 2, Price: -1},
			expectValid: false,
			description: "price cannot be negative",
		},
		{
			name:        "full discount",
			pass:        SeatPass{Type: PassTypeFixed, Duration: 4, Price: 250000, DiscountRate: 1},
			expectValid: false,
			description: "discount rate must stay below 1",
		},
		{
			name:        "negative discount",
			pass:        SeatPass{Type: PassTypeFixed, Duration: 4, Price: 250000, DiscountRate: -0.1},
			expectValid: false,
			description: "discount rate cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.pass)
			if (err == nil) != tt.expectValid {
				t.Errorf("%s: Struct() error = %v, expectValid %v", tt.description, err, tt.expectValid)
			}
		})
	}
}

func TestLockerPass_ValidationTags(t *testing.T) {
	validate := newValidate(t)

	tests := []struct {
		name        string
		pass        LockerPass
		expectValid bool
	}{
		{name: "valid", pass: LockerPass{Type: PassTypeFixed, Duration: 4, Price: 10000}, expectValid: true},
		{name: "zero duration", pass: LockerPass{Type: PassTypeFixed, Duration: 0, Price: 10000}, expectValid: false},
		{name: "negative price", pass: LockerPass{Type: PassTypeFixed, Duration: 4, Price: -5}, expectValid: false},
		{name: "lowercase type", pass: LockerPass{Type: "fixed", Duration: 4, Price: 10000}, expectValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.pass)
			if (err == nil) != tt.expectValid {
				t.Errorf("Struct() error = %v, expectValid %v", err, tt.expectValid)
			}
		})
	}
}
