package route

import (
	"time"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/api/response"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	AuthTokenHeader = "x-auth-token"
	AuthTokenCookie = "token"
)

func AuthenticateUser(aUc domain.AuthUC) fiber.Handler {
	// This function returns the middleware handler
	return func(c *fiber.Ctx) error {
		token := c.Get(AuthTokenHeader)
		if token == "" {
			token = c.Cookies(AuthTokenCookie)
		}
		if token == "" {
			return response.SendError(c, fiber.StatusUnauthorized, "no token, authorization denied")
		}

		caller, err := aUc.Verify(c.Context(), token)
		if err != nil {
			return response.SendError(c, fiber.StatusUnauthorized, "token is not valid")
		}

		c.Locals("caller", caller)
		return c.Next()
	}
}

// RequestLogger tags every request with an id and logs its outcome.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestId := uuid.NewString()
		c.Locals("requestId", requestId)

		start := time.Now()
		err := c.Next()

		logrus.WithFields(logrus.Fields{
			"requestId": requestId,
			"method":    c.Method(),
			"path":      c.Path(),
			"status":    c.Response().StatusCode(),
			"duration":  time.Since(start).String(),
		}).Info("request completed")

		return err
	}
}
