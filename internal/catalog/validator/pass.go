package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"studycafe/pkg/logger"
	"studycafe/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// PassValidator enforces the invariants of catalog rows once they have been
// parsed into typed values.
type PassValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewPassValidator(log *logger.Logger) *PassValidator {
	v := validator.New()

	if err := v.RegisterValidation("pass_type", validatePassType); err != nil {
		log.Fatal("Failed to register 'pass_type' validator", "error", err)
	}

	return &PassValidator{
		validate: v,
		logger:   log,
	}
}

func validatePassType(fl validator.FieldLevel) bool {
	_, err := model.ParsePassType(fl.Field().String())
	return err == nil
}

func (v *PassValidator) ValidateSeatPass(p model.SeatPass) error {
	return v.validateStruct(p)
}

func (v *PassValidator) ValidateLockerPass(p model.LockerPass) error {
	return v.validateStruct(p)
}

func (v *PassValidator) validateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		v.logger.Error("Unexpected validator failure", "error", err)
		return err
	}
	return nil
}

func (v *PassValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "pass_type":
			message = fmt.Sprintf("%s must be one of %v, got %v", err.Field(), model.PassTypes, err.Value())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s, got %v", err.Field(), err.Param(), err.Value())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s, got %v", err.Field(), err.Param(), err.Value())
		case "lt":
			message = fmt.Sprintf("%s must be less than %s, got %v", err.Field(), err.Param(), err.Value())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
