package router

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/tuguldure/newswire/app/controllers"
	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/internal/pkg/env"
	"github.com/tuguldure/newswire/internal/pkg/middleware"
)

// newRateLimiter builds the shared request limiter backed by redis so
// limits hold across instances.
func newRateLimiter() fiber.Handler {
	storage := redis.New(redis.Config{
		Host: env.GetEnv("CACHE_HOST", "localhost"),
		Port: atoiOr(env.GetEnv("CACHE_PORT", "6379"), 6379),
	})

	return limiter.New(limiter.Config{
		Max:        atoiOr(env.GetEnv("RATE_LIMIT_MAX", "120"), 120),
		Expiration: 1 * time.Minute,
		Storage:    storage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests",
			})
		},
	})
}

func atoiOr(s string, def int) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
		return def
	}
	return n
}

func setupApiRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Use(cors.New(cors.Config{
		AllowOrigins: env.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	api.Use(newRateLimiter())

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"status":  "ok",
		})
	})

	staffRoles := []string{models.ROLE_ADMIN, models.ROLE_EDITOR}
	moderatorOnly := middleware.RequireRoles(staffRoles...)
	adminOnly := middleware.RequireRoles(models.ROLE_ADMIN)

	// Auth
	authController := controllers.NewAuthController()
	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Get("/profile", middleware.RequireAuth(), authController.Profile)

	// Articles
	articleController := controllers.NewArticleController()
	commentController := controllers.NewCommentController()
	articles := api.Group("/articles")
	articles.Get("/", middleware.OptionalAuth(), articleController.List)
	articles.Get("/stats", middleware.RequireAuth(), articleController.Stats)
	articles.Get("/featured", articleController.Featured)
	articles.Get("/featured/check/:rank", middleware.RequireAuth(), articleController.FeaturedCheck)
	articles.Get("/breaking", articleController.Breaking)
	articles.Post("/", middleware.RequireAuth(), articleController.Create)
	articles.Put("/:id<int>", middleware.RequireAuth(), articleController.Update)
	articles.Delete("/:id<int>", middleware.RequireAuth(), articleController.Delete)
	articles.Post("/slug/:slug/increment-view", articleController.IncrementView)
	articles.Get("/:key", articleController.Get)

	// Comments
	comments := api.Group("/comments")
	comments.Get("/admin/all", middleware.RequireAuth(), moderatorOnly, commentController.ListAll)
	comments.Get("/article/:articleId<int>/tree", commentController.GetTree)
	comments.Get("/article/:articleId<int>", commentController.GetByArticle)
	comments.Post("/article/:articleId<int>", middleware.OptionalAuth(), commentController.Create)
	comments.Post("/:id<int>/like", commentController.Like)
	comments.Patch("/:id<int>/approve", middleware.RequireAuth(), moderatorOnly, commentController.Approve)
	comments.Delete("/:id<int>", middleware.RequireAuth(), moderatorOnly, commentController.Delete)

	// Categories
	categoryController := controllers.NewCategoryController()
	categories := api.Group("/categories")
	categories.Get("/", categoryController.List)
	categories.Post("/", middleware.RequireAuth(), moderatorOnly, categoryController.Create)
	categories.Put("/:id<int>", middleware.RequireAuth(), moderatorOnly, categoryController.Update)
	categories.Delete("/:id<int>", middleware.RequireAuth(), moderatorOnly, categoryController.Delete)
	categories.Get("/:key", categoryController.Get)

	// Users (admin)
	userController := controllers.NewUserController()
	users := api.Group("/users", middleware.RequireAuth(), adminOnly)
	users.Get("/", userController.List)
	users.Get("/stats/overview", userController.Stats)
	users.Post("/", userController.Create)
	users.Get("/:id<int>", userController.Get)
	users.Put("/:id<int>", userController.Update)
	users.Patch("/:id<int>/password", userController.UpdatePassword)
	users.Delete("/:id<int>", userController.Delete)

	// Banners
	bannerController := controllers.NewBannerController()
	banners := api.Group("/banners")
	banners.Get("/", bannerController.Active)
	banners.Get("/admin", middleware.RequireAuth(), adminOnly, bannerController.ListAll)
	banners.Post("/", middleware.RequireAuth(), adminOnly, bannerController.Create)
	banners.Put("/:id<int>", middleware.RequireAuth(), adminOnly, bannerController.Update)
	banners.Patch("/:id<int>/toggle", middleware.RequireAuth(), adminOnly, bannerController.Toggle)
	banners.Delete("/:id<int>", middleware.RequireAuth(), adminOnly, bannerController.Delete)

	// Search
	searchController := controllers.NewSearchController()
	search := api.Group("/search")
	search.Get("/", searchController.Search)
	search.Get("/suggestions", searchController.Suggestions)

	// Submissions
	submissionController := controllers.NewSubmissionController()
	submissions := api.Group("/submissions")
	submissions.Post("/", submissionController.Create)
	submissions.Get("/", middleware.RequireAuth(), moderatorOnly, submissionController.List)

	// Uploads
	uploadController := controllers.NewUploadController()
	uploads := api.Group("/upload", middleware.RequireAuth())
	uploads.Post("/image", uploadController.Image)
	uploads.Post("/video", uploadController.Video)
	uploads.Delete("/:filename", uploadController.Delete)
}
