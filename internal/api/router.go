package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Soruj24/e-Commarce-tsx-server/docs"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/api/handler"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/api/middleware"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/ports"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/service"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/infrastructure/config"
	mongorepo "github.com/Soruj24/e-Commarce-tsx-server/internal/infrastructure/db/mongo"
	redisinfra "github.com/Soruj24/e-Commarce-tsx-server/internal/infrastructure/db/redis"
)

// allowedImageTypes is the avatar MIME allow-list.
var allowedImageTypes = []string{"image/png", "image/jpeg", "image/jpg", "image/gif"}

// Dependencies bundles everything the router needs to wire the handlers.
type Dependencies struct {
	DB       *mongo.Database
	Redis    *redis.Client
	Uploader ports.ImageUploader
	Config   *config.Config
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.BodyLimit("8M"))
	e.Use(echoprometheus.NewMiddleware("userapi"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, deps.Config.IsDevelopment())

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(deps.DB)
	hasher := service.NewBcryptHasher(deps.Config.Hash.Cost)
	userService := service.NewUserService(userRepo, deps.Uploader, hasher, deps.Config.Upload.Required, deps.Logger)
	userHandler := handler.NewUserHandler(userService)

	uploadMiddleware := middleware.FileUpload(middleware.UploadConfig{
		MaxFileSize:  deps.Config.Upload.MaxFileSize,
		AllowedTypes: allowedImageTypes,
	})
	signupLimiter := redisinfra.NewRateLimiter(deps.Redis, deps.Config.RateLimit.SignupLimit, deps.Config.RateLimit.SignupWindow)
	rateLimitMiddleware := middleware.RateLimit(signupLimiter, deps.Logger)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/signup", userHandler.Signup, rateLimitMiddleware, uploadMiddleware)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
