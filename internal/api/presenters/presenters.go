package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	return c.Status(code).JSON(Response{
		Status:  "error",
		Message: message,
		Error:   errorDetail(err),
	})
}

// errorDetail flattens validator errors to the first offending field path and
// a readable message; batches are rejected wholesale, so one field suffices.
func errorDetail(err error) interface{} {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return fiber.Map{
			"field":   first.Namespace(),
			"message": "failed on the '" + first.Tag() + "' rule",
		}
	}

	return err.Error()
}
