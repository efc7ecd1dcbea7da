package usecase

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var nonDigits = regexp.MustCompile(`\D`)

// Celular brasileiro: 10 dígitos (fixo) ou 11 (celular com nono dígito),
// com ou sem máscara.
func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 11
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if err := validate.Struct(input); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				errs = append(errs, ValidationError{
					Field:   fe.Field(),
					Message: fmt.Sprintf("failed on '%s' rule", fe.Tag()),
				})
			}
		} else {
			errs = append(errs, ValidationError{"input", err.Error()})
		}
	}

	if input.CelularPrimario != "" && !isValidPhoneNumber(input.CelularPrimario) {
		errs = append(errs, ValidationError{"celular_primario", "must be a valid phone number"})
	}
	if input.CelularSecundario != "" && !isValidPhoneNumber(input.CelularSecundario) {
		errs = append(errs, ValidationError{"celular_secundario", "must be a valid phone number"})
	}

	return errs
}

func validationFailed(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: msg,
	}
}
