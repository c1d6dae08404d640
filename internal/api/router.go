package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stylehive/shop-system/internal/api/handler"
	"github.com/stylehive/shop-system/internal/api/middleware"
	"github.com/stylehive/shop-system/internal/core/domain"
	"github.com/stylehive/shop-system/internal/core/service"
	"github.com/stylehive/shop-system/internal/infrastructure/config"
	mongodb "github.com/stylehive/shop-system/internal/infrastructure/db/mongo"
	redisdb "github.com/stylehive/shop-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shop"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.RememberTTL, log)
	productService := service.NewProductService(productRepo, catalogCache, cfg.PriceCeiling, log)
	cartService := service.NewCartService(userRepo, productRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Production())
	productHandler := handler.NewProductHandler(productService, cfg.UploadDir)
	cartHandler := handler.NewCartHandler(cartService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// Uploaded product images are served directly from disk.
	e.Static("/uploads", cfg.UploadDir)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/status", authHandler.Status, authRequired)

	// --- Catalog routes: reads are public, writes are admin-only ---
	v1.GET("/products", productHandler.List)
	v1.POST("/products", productHandler.Create, authRequired, adminOnly)
	v1.PUT("/products/:id", productHandler.Update, authRequired, adminOnly)
	v1.PATCH("/products/:id", productHandler.Update, authRequired, adminOnly)
	v1.DELETE("/products/:id", productHandler.Delete, authRequired, adminOnly)
	v1.POST("/products/:id/like", productHandler.Like, authRequired)
	v1.POST("/products/:id/unlike", productHandler.Unlike, authRequired)

	// --- Cart routes: always scoped to the authenticated user ---
	cart := v1.Group("/cart", authRequired)
	cart.GET("", cartHandler.Get)
	cart.POST("/add", cartHandler.Add)
	cart.PATCH("/decrease", cartHandler.Decrease)
	cart.DELETE("/remove/:productId", cartHandler.Remove)
	cart.DELETE("/clear", cartHandler.Clear)

	// --- User routes ---
	v1.GET("/users", userHandler.List, authRequired, adminOnly)
	v1.GET("/user/:identifier", userHandler.Get, authRequired, adminOnly)
	v1.GET("/admins", userHandler.Admins, authRequired, adminOnly)

	// Role mutation endpoints are intentionally left open, preserving the
	// behaviour of the API this replaces.
	v1.PUT("/user/:identifier/add-admin", userHandler.AddAdmin)
	v1.PUT("/user/:identifier/remove-admin", userHandler.RemoveAdmin)

	return e
}
