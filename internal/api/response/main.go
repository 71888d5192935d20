package response

import (
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CommonResponse is a struct for common API responses
type CommonResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// SendSuccess sends a success response with optional data
func SendSuccess(c *fiber.Ctx, data interface{}, message string) error {
	response := CommonResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
	return c.JSON(response)
}

// SendError sends an error response with a specified message
func SendError(c *fiber.Ctx, statusCode int, message string) error {
	response := CommonResponse{
		Success: false,
		Message: message,
	}
	return c.Status(statusCode).JSON(response)
}

// SendValidationErrors sends every failed field in one 400 response
func SendValidationErrors(c *fiber.Ctx, ve domain.ValidationErrors) error {
	response := CommonResponse{
		Success: false,
		Message: "validation failed",
		Errors:  ve,
	}
	return c.Status(fiber.StatusBadRequest).JSON(response)
}

// SendDomainError maps the typed failures of the engine onto wire statuses.
// ErrForbidden maps to 401 to keep the responses of the previous deployment.
func SendDomainError(c *fiber.Ctx, err error) error {
	var ve domain.ValidationErrors
	switch {
	case errors.As(err, &ve):
		return SendValidationErrors(c, ve)
	case errors.Is(err, domain.ErrUnauthenticated):
		return SendError(c, fiber.StatusUnauthorized, "token is not valid")
	case errors.Is(err, domain.ErrForbidden):
		return SendError(c, fiber.StatusUnauthorized, "not authorized")
	case errors.Is(err, domain.ErrNotFound):
		return SendError(c, fiber.StatusNotFound, "resource not found")
	default:
		logrus.Error(err)
		return SendError(c, fiber.StatusInternalServerError, "Server Error")
	}
}
