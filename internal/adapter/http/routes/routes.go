package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "puentes_admin/docs" // This will be auto-generated
	"puentes_admin/internal/adapter/http/handlers"
	"puentes_admin/internal/auth"
	"puentes_admin/internal/infrastructure/backend"
	"puentes_admin/internal/infrastructure/logging"
	"puentes_admin/internal/usecase"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	logger, err := logging.Init(logging.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)
	setSentry()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(logger *zap.Logger) {
	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		log.Fatal("BACKEND_BASE_URL is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ttl := 60 * time.Minute
	if v, err := strconv.Atoi(os.Getenv("SESSION_TTL_MINUTES")); err == nil && v > 0 {
		ttl = time.Duration(v) * time.Minute
	}

	timeout := backend.DefaultTimeout
	if v, err := strconv.Atoi(os.Getenv("BACKEND_TIMEOUT_SECONDS")); err == nil && v > 0 {
		timeout = time.Duration(v) * time.Second
	}

	client := backend.NewClient(baseURL, timeout, logger)
	userGateway := backend.NewUserGateway(client)
	estimationGateway := backend.NewEstimationGateway(client)
	requestGateway := backend.NewRequestGateway(client)
	authGateway := backend.NewAuthGateway(client)

	tokens := auth.NewTokenManager(secret, ttl)

	authUseCase := usecase.NewAuthUseCase(authGateway, userGateway, tokens, logger)
	estimationUseCase := usecase.NewEstimationUseCase(estimationGateway)
	changeRequestUseCase := usecase.NewChangeRequestUseCase(requestGateway, estimationGateway, logger)
	feedUseCase := usecase.NewRequestFeedUseCase(requestGateway, userGateway)
	userUseCase := usecase.NewUserUseCase(userGateway)

	authHandler := handlers.NewAuthHandler(authUseCase)
	estimationHandler := handlers.NewEstimationHandler(estimationUseCase, changeRequestUseCase)
	requestHandler := handlers.NewRequestHandler(feedUseCase, changeRequestUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/login", authHandler.Login)

	addDashboardRoutes(v1, tokens, estimationHandler, requestHandler, userHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func setSentry() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return
	}

	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		log.Printf("Sentry not configured: %v", err)
		return
	}
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
}
