package route

import (
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/api/controller"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// RegisterProfileRoutes wires the profile surface; listing profiles and
// looking one up by user are public, everything else requires auth.
func RegisterProfileRoutes(app *fiber.App, pUc domain.ProfileUC, aUc domain.AuthUC) error {
	authMiddleware := AuthenticateUser(aUc)

	api := app.Group("/api/profile")
	profileC := controller.NewProfileController(pUc)
	api.Get("/me", authMiddleware, profileC.GetMyProfile)
	api.Post("/", authMiddleware, profileC.UpsertProfile)
	api.Get("/", profileC.ListProfiles)
	api.Get("/user/:userId", profileC.GetProfileByUser)
	api.Delete("/", authMiddleware, profileC.DeleteAccount)
	api.Put("/experience", authMiddleware, profileC.AddExperience)
	api.Delete("/experience/:expId", authMiddleware, profileC.RemoveExperience)
	return nil
}
