package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blog-system/internal/api/flash"
	"github.com/inkwell/blog-system/internal/api/handler"
	"github.com/inkwell/blog-system/internal/api/middleware"
	"github.com/inkwell/blog-system/internal/core/service"
	"github.com/inkwell/blog-system/internal/infrastructure/config"
	mongodb "github.com/inkwell/blog-system/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/blog-system/internal/infrastructure/db/redis"
	"github.com/inkwell/blog-system/internal/infrastructure/storage"
	"github.com/inkwell/blog-system/internal/web"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, uploads *storage.LocalStore, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	flashes := flash.NewManager(redisdb.NewFlashStore(rdb), log)
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, flashes)

	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, codec, cfg.BcryptCost, log)
	postService := service.NewPostService(postRepo, userRepo, log)

	homeHandler := handler.NewHomeHandler(flashes)
	authHandler := handler.NewAuthHandler(authService, flashes, codec.TTL())
	postHandler := handler.NewPostHandler(postService, uploads, flashes)

	e.Use(middleware.CurrentUser(codec))
	loggedIn := middleware.RequireLogin(codec, flashes)

	// --- Public routes ---
	e.GET("/", homeHandler.Home)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Authenticated routes ---
	e.GET("/post/:username", postHandler.NewPostForm, loggedIn)
	e.POST("/post", postHandler.Create, loggedIn)
	e.GET("/blogs/:username", postHandler.Blogs, loggedIn)
	e.GET("/blog/:id", postHandler.Single, loggedIn)
	e.GET("/profile/:username", postHandler.Profile, loggedIn)

	// --- Static files ---
	e.Static("/uploads", uploads.Dir())
	e.Static("/assets", cfg.AssetsDir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
