package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into req and runs struct validation.
// Failures come back as *ValidationError so the error handler maps them to
// a 400 without leaking parser internals.
func ValidateRequest(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return NewValidationError("invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return NewValidationError("invalid request")
		}
		first := validationErrors[0]
		return NewValidationError(fmt.Sprintf("field %s failed on the %s rule", first.Field(), first.Tag()))
	}

	return nil
}
