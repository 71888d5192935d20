package route

import (
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/api/controller"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/gofiber/fiber/v2"
)

func RegisterPostRoutes(app *fiber.App, pUc domain.PostUC, aUc domain.AuthUC) error {
	authMiddleware := AuthenticateUser(aUc)

	api := app.Group("/api/posts")
	postC := controller.NewPostController(pUc)
	api.Post("/", authMiddleware, postC.CreatePost)
	api.Get("/", authMiddleware, postC.GetPosts)
	api.Get("/:postId", authMiddleware, postC.GetPost)
	api.Delete("/:postId", authMiddleware, postC.DeletePost)
	api.Put("/like/:postId", authMiddleware, postC.LikePost)
	api.Put("/unlike/:postId", authMiddleware, postC.UnlikePost)
	api.Post("/comment/:postId", authMiddleware, postC.CommentPost)
	api.Delete("/comment/:postId/:commentId", authMiddleware, postC.DeleteComment)
	return nil
}
