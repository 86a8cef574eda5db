package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/merqado/commerce-api/docs"
	"github.com/merqado/commerce-api/internal/api/handler"
	"github.com/merqado/commerce-api/internal/api/middleware"
	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
	"github.com/merqado/commerce-api/pkg/logger"
)

// Deps carries everything the router needs; services are wired in cmd/api.
type Deps struct {
	DB             *mongo.Database
	Redis          *redis.Client
	AuthService    ports.AuthService
	TokenIssuer    ports.TokenIssuer
	Users          ports.UserRepository
	ProductService ports.ProductService
	UserService    ports.UserService
	Companies      ports.CompanyRepository

	// LoginRateLimit is the number of login attempts allowed per IP per window.
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	productHandler := handler.NewProductHandler(d.ProductService)
	userHandler := handler.NewUserHandler(d.UserService)
	companyHandler := handler.NewCompanyHandler(d.Companies)

	authn := middleware.Authenticate(d.TokenIssuer, d.Users)
	loginLimiter := middleware.RateLimit(d.Redis, d.LoginRateLimit, d.LoginRateWindow)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup, loginLimiter)
	e.POST("/auth/login", authHandler.Login, loginLimiter)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authn)

	// --- Product catalog ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, authn, middleware.RequireAnyRole(domain.RoleDistributor))
	e.PUT("/products/:id", productHandler.Update, authn, middleware.RequireAnyRole(domain.RoleDistributor, domain.RoleAdmin))
	e.DELETE("/products/:id", productHandler.Delete, authn, middleware.RequireAnyRole(domain.RoleDistributor, domain.RoleAdmin))

	// --- Company reference data ---
	e.GET("/companies", companyHandler.List)
	e.GET("/companies/:id", companyHandler.Get)

	// --- User administration ---
	e.GET("/users/me", userHandler.Me, authn)
	e.GET("/users", userHandler.List, authn, middleware.RequireAnyRole(domain.RoleDistributor, domain.RoleAdmin))
	e.PUT("/users/:id", userHandler.Update, authn, middleware.RequireAnyRole(domain.RoleDistributor, domain.RoleAdmin))

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
