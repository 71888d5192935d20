package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/api/response"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/api/route"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/build"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/cache"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/database"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/env"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/repository"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	// Log to stdout instead of stderr.
	logrus.SetOutput(os.Stdout)

	logrus.Infof("Build time: %s", build.Time)
	logrus.Infof("Go version: %s", build.GoVersion)

	// read environment variables from file
	env, err := env.NewEnv(".env")
	if err != nil {
		logrus.Fatal(err)
	}

	// log the environment app running on
	logrus.Infof("App started in %s environment", env.AppEnv)

	// Context for MongoDB connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	maxAttempts := 10
	retryInterval := 2 * time.Second
	// Connect to MongoDB with retries
	client, err := database.ConnectToMongoDB(ctx, env.MongoDbConnectionUrl, maxAttempts, retryInterval)
	if err != nil {
		logrus.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(env.DbName)
	if err := db.Client().Ping(ctx, nil); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Database pinged successfully!!!")

	redisCache := cache.New(&cache.Config{
		Host:     env.RedisHost,
		Port:     env.RedisPort,
		Password: env.RedisPassword,
	})
	defer redisCache.Close()

	// Setting up new fiber app
	app := fiber.New(fiber.Config{
		AppName: "sidekiq_network_service",
	})

	app.Use(route.RequestLogger())

	app.Use(func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				// Log the panic
				logrus.Error(r)

				// Return a 500 Internal Server Error response
				response.SendError(c, fiber.StatusInternalServerError, "Internal Server Error")
				return
			}
		}()

		// Continue to the next handler
		return c.Next()
	})

	authUC := usecase.NewAuthUC(env.JWTSecret)

	userRepo := repository.NewUserRepo(db, domain.CollectionUser)
	postRepo := repository.NewPostRepo(db, domain.CollectionPost)
	profileRepo := repository.NewProfileRepo(db, domain.CollectionProfile)

	postUC := usecase.NewPostUC(postRepo, userRepo, redisCache, 10*time.Second)
	profileUC := usecase.NewProfileUC(profileRepo, userRepo, 10*time.Second)

	// registering routes
	route.RegisterPostRoutes(app, postUC, authUC)
	route.RegisterProfileRoutes(app, profileUC, authUC)

	// spinning up app on port
	if err := app.Listen(fmt.Sprintf(":%s", env.AppPort)); err != nil {
		logrus.Fatal(err)
	}
}
