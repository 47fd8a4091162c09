package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/trialdesk/participant-manager/api/audit"
	"github.com/trialdesk/participant-manager/api/config"
	"github.com/trialdesk/participant-manager/api/controller"
	"github.com/trialdesk/participant-manager/api/db"
	logger "github.com/trialdesk/participant-manager/api/logging"
	"github.com/trialdesk/participant-manager/api/router"
	"github.com/trialdesk/participant-manager/api/service"
	"github.com/trialdesk/participant-manager/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	if err := db.InitPostgres(); err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize shared utilities
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService()
	notificationService := util.NewNotificationService()
	pushClient := util.NewPushClient(config.GetString("push.url"), config.GetString("push.apiKey"))

	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository, config.GetString("app.version"))

	// Initialize services and controllers
	services := service.InitializeServices(
		db.DB,
		auditService,
		validationUtil,
		cacheService,
		notificationService,
		pushClient,
		eventBus,
	)
	controllers := controller.InitializeControllers(services, validationUtil)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, 100, time.Minute) // 100 requests per minute

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
