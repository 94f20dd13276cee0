package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures into a
// 400 the error handler middleware renders.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return fiber.NewError(fiber.StatusInternalServerError, "validation misconfigured")
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
