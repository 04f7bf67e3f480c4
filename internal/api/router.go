package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wavepoint/social-system/internal/api/handler"
	"github.com/wavepoint/social-system/internal/api/middleware"
	"github.com/wavepoint/social-system/internal/core/ports"
	"github.com/wavepoint/social-system/internal/core/service"
	mongodb "github.com/wavepoint/social-system/internal/infrastructure/db/mongo"
	redisdb "github.com/wavepoint/social-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle is then disabled.
func NewRouter(db *mongo.Database, rdb *goredis.Client, tokens *service.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("social"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	friendshipRepo := mongodb.NewFriendshipRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	friendshipService := service.NewFriendshipService(friendshipRepo, userRepo, log)
	messageService := service.NewMessageService(messageRepo, friendshipRepo, log)
	userService := service.NewUserService(userRepo, postRepo, friendshipRepo, messageRepo, log)
	postService := service.NewPostService(postRepo, userRepo, log)

	// --- Handlers ---
	session := handler.NewSessionCookie()
	authHandler := handler.NewAuthHandler(authService, session)
	friendHandler := handler.NewFriendHandler(friendshipService)
	messageHandler := handler.NewMessageHandler(messageService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	// The middleware depends on the decode capability only, not on the
	// token service's concrete type.
	authed := middleware.Auth(tokens)

	// --- Public routes ---
	e.POST("/auth", authHandler.Login)
	e.GET("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/users", authHandler.Register)

	// --- Authenticated routes ---
	users := e.Group("/users", authed)
	users.GET("", userHandler.List)
	users.GET("/:userId", userHandler.Details)
	users.PATCH("", userHandler.Update)
	users.DELETE("", userHandler.Delete)

	friends := e.Group("/friends", authed)
	friends.POST("", friendHandler.Send)
	friends.PATCH("", friendHandler.Accept)
	friends.PATCH("/reject", friendHandler.Reject)
	friends.GET("/requests/:userId", friendHandler.Requests)
	friends.GET("/notfriends/:userId", friendHandler.Candidates)

	messages := e.Group("/messages", authed)
	messages.POST("", messageHandler.Send)
	messages.GET("", messageHandler.List)

	posts := e.Group("/posts", authed)
	posts.GET("", postHandler.Feed)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
