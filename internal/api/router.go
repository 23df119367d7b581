package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adoptme/pet-adoption-api/internal/api/handler"
	"github.com/adoptme/pet-adoption-api/internal/api/middleware"
	"github.com/adoptme/pet-adoption-api/internal/core/service"
	"github.com/adoptme/pet-adoption-api/internal/infrastructure/config"
	mongodb "github.com/adoptme/pet-adoption-api/internal/infrastructure/db/mongo"
	redisdb "github.com/adoptme/pet-adoption-api/internal/infrastructure/db/redis"
	"github.com/adoptme/pet-adoption-api/pkg/mocks"
)

// NewRouter builds the Echo instance with every dependency constructed and
// every route registered. rdb may be nil: the adoption workflow then runs
// without the reservation fence and the readiness probe reports redis as
// disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, !cfg.IsProduction())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("adoption_api"))

	// --- Repositories ---
	petRepo := mongodb.NewPetRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	adoptionRepo := mongodb.NewAdoptionRepository(db)

	// --- Services ---
	petService := service.NewPetService(petRepo, log)
	userService := service.NewUserService(userRepo, log)
	var reservation service.PetReservation
	if rdb != nil {
		reservation = redisdb.NewPetReservation(rdb)
	}
	adoptionService := service.NewAdoptionService(adoptionRepo, petRepo, userRepo, reservation, log)
	sessionService := service.NewSessionService(userRepo, cfg.JWTSecret, 24*time.Hour)

	// --- Handlers ---
	petHandler := handler.NewPetHandler(petService)
	userHandler := handler.NewUserHandler(userService)
	adoptionHandler := handler.NewAdoptionHandler(adoptionService)
	sessionHandler := handler.NewSessionHandler(sessionService, userService)
	mockHandler := handler.NewMockHandler(mocks.NewGenerator(0), petService, userService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewHealthDependenciesHandler(db, rdb)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC("admin")

	// --- Routes ---
	root := e.Group("/api")

	pets := root.Group("/pets")
	pets.POST("", petHandler.Create)
	pets.GET("", petHandler.List)
	pets.GET("/name/:name", petHandler.GetByName)
	pets.GET("/:id", petHandler.GetByID)
	pets.PUT("/:id", petHandler.Update)
	pets.DELETE("/:id", petHandler.Delete)

	users := root.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/email/:email", userHandler.GetByEmail)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	adoptions := root.Group("/adoptions")
	adoptions.POST("", adoptionHandler.Create)
	adoptions.GET("", adoptionHandler.List)
	adoptions.GET("/user/:userId", adoptionHandler.ListByUser)
	adoptions.GET("/:id", adoptionHandler.GetByID)
	adoptions.PUT("/:id", adoptionHandler.Update)
	adoptions.DELETE("/:id", adoptionHandler.Delete)

	sessions := root.Group("/sessions")
	sessions.POST("/login", sessionHandler.Login)
	sessions.GET("/current", sessionHandler.Current, authRequired)

	mocksGroup := root.Group("/mocks")
	mocksGroup.GET("/mockingpets", mockHandler.MockingPets)
	mocksGroup.GET("/mockingusers", mockHandler.MockingUsers)
	mocksGroup.POST("/generateData", mockHandler.GenerateData, authRequired, adminOnly)

	root.GET("/health", healthHandler.Liveness)
	root.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
