package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

var validate = validator.New()

// Validate runs struct tag validation and converts failures into the
// VALIDATION_FAILED domain error with per-field details.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return apperrors.NewValidationError("invalid payload", details)
}
