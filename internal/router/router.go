package router

import (
	"log"

	"github.com/anonto42/picture-pink/backend/internal/handlers"
	"github.com/anonto42/picture-pink/backend/internal/middleware"
	"github.com/anonto42/picture-pink/backend/internal/realtime"
	"github.com/anonto42/picture-pink/backend/internal/repositories"
	"github.com/anonto42/picture-pink/backend/internal/response"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = response.HTTPErrorHandler
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, hub *realtime.Hub, jwtSecret string) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Real-time event channel
	e.GET("/ws", hub.ServeWS)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	saveRepo := repositories.NewMongoSaveRepository(db)
	contactRepo := repositories.NewMongoContactRepository(db)

	// --- Access-control middleware ---
	auth := middleware.Auth(userRepo, jwtSecret)
	admin := middleware.AdminOnly()

	api := e.Group("/api")

	authHandler := handlers.NewAuthHandler(userRepo, hub, jwtSecret)
	authHandler.RegisterAuthRoutes(api.Group("/auth"))
	log.Println("Auth routes configured.")

	userHandler := handlers.NewUserHandler(userRepo, hub)
	userHandler.RegisterUserRoutes(api.Group("/users"), auth, admin)
	log.Println("User routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, userRepo, hub)
	postHandler.RegisterPostRoutes(api.Group("/posts"), auth)
	log.Println("Post routes configured.")

	saveHandler := handlers.NewSaveHandler(saveRepo, userRepo, postRepo, hub)
	saveHandler.RegisterSaveRoutes(api.Group("/saves"), auth)
	log.Println("Save routes configured.")

	contactHandler := handlers.NewContactHandler(contactRepo, hub)
	contactHandler.RegisterContactRoutes(api.Group("/contacts"), auth)
	log.Println("Contact routes configured.")

	log.Println("All routes configured.")
}
