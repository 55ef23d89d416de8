package service

import (
	"errors"

	apperrors "workforce-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validateStruct runs a request DTO through the shared validator and maps
// failures onto the application's validation error type so handlers render
// them as 400s.
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), "failed '"+fe.Tag()+"' validation")
	}
	return apperrors.NewValidationError("", err.Error())
}
