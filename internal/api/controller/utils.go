package controller

import (
	"errors"
	"strings"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func GetCallerFromReq(c *fiber.Ctx) (domain.Identity, error) {
	caller, ok := c.Locals("caller").(domain.Identity)
	if !ok {
		return caller, errors.New("unable to authenticate user")
	}
	return caller, nil
}

var validate = validator.New()

// validateStruct collects every failed field so the client sees all of them
// at once.
func validateStruct(s interface{}) domain.ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return domain.ValidationErrors{{Field: "", Message: err.Error()}}
	}

	out := make(domain.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		msg := "is invalid"
		if fe.Tag() == "required" {
			msg = "is required"
		}
		out = append(out, domain.FieldError{Field: strings.ToLower(fe.Field()), Message: msg})
	}
	return out
}
