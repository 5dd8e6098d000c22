// File: tutorsched/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorsched/config"
	"tutorsched/cron"
	"tutorsched/database"
	meetingRepo "tutorsched/database/repository/meeting"
	"tutorsched/handlers"
	"tutorsched/middleware"
	"tutorsched/routes"
	"tutorsched/services/meeting"
	"tutorsched/services/tasks"
	"tutorsched/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	lockClient := utils.GetLockClient()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(rootCtx, lockClient, database.MongoClient, 60*time.Second)

	observationZone, err := time.LoadLocation(config.AppConfig.ObservationTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid OBSERVATION_TIMEZONE %q: %v", config.AppConfig.ObservationTimezone, err)
	}

	// repositories.
	meetings := meetingRepo.NewMongoMeetingRepo()

	// services.
	meetingService := &meeting.DefaultMeetingService{
		Repo:            meetings,
		Locker:          utils.NewRedisTutorLocker(lockClient, config.AppConfig.LockTTL(), config.AppConfig.LockWaitTimeout()),
		Logger:          logger.Named("meeting"),
		Now:             time.Now,
		ObservationZone: observationZone,
		MaxRecurrence:   config.AppConfig.MaxRecurrenceCount,
	}

	var (
		queueClient *asynq.Client
		inspector   *asynq.Inspector
		reminderSrv *asynq.Server
	)
	if config.AppConfig.RemindersEnabled {
		queueClient = asynq.NewClient(utils.QueueRedisOpt())
		inspector = asynq.NewInspector(utils.QueueRedisOpt())
		meetingService.Reminders = tasks.NewAsynqReminderScheduler(queueClient, inspector, config.AppConfig.ReminderLead())
		reminderSrv = cron.InitReminderWorker(meetings)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := handlers.NewMeetingBundle(handlers.NewMeetingHandler(meetingService, logger))
	handlerBundle.HealthHandler = handlers.HealthHandler
	handlerBundle.MetricsHandler = gin.WrapH(promhttp.Handler())

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if reminderSrv != nil {
		reminderSrv.Shutdown()
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
		if err := inspector.Close(); err != nil {
			logger.Warn("main: failed to close queue inspector", zap.Error(err))
		}
	}
	if err := lockClient.Close(); err != nil {
		logger.Warn("main: failed to close redis", zap.Error(err))
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect mongo", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
