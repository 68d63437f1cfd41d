package serverutils

import (
	"github.com/go-playground/validator/v10"

	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and converts
// failures into the shared validation error shape.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}
