// File: hireflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"hireflow/config"
	"hireflow/cron"
	"hireflow/database"
	candidateRepo "hireflow/database/repository/candidate"
	interviewRepo "hireflow/database/repository/interview"
	jobRepo "hireflow/database/repository/job"
	"hireflow/handlers"
	"hireflow/middleware"
	"hireflow/routes"
	"hireflow/services/interview"
	"hireflow/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ivRepo := interviewRepo.NewMongoInterviewRepo()
	candRepo := candidateRepo.NewMongoCandidateRepo()
	jRepo := jobRepo.NewMongoJobRepo()

	// Index setup failures are fatal to readiness; an index-already-exists
	// race from a concurrently starting instance is not.
	if err := ivRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure interview indexes: %v", err)
	}

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueue,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker(ivRepo, logger)

	// services.
	schedulingService := &interview.DefaultSchedulingService{
		Repo:       ivRepo,
		Candidates: candRepo,
		Jobs:       jRepo,
		Cache: interview.NewEnrichmentCache(
			utils.GetCacheClient(),
			time.Duration(config.AppConfig.EnrichmentCacheTTL)*time.Second,
		),
		Reminders: interview.NewAsynqReminderScheduler(asynqClient),
		Validator: interview.NewValidator(),
		Logger:    logger,
	}

	interviewHandler := handlers.NewInterviewHandler(schedulingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, interviewHandler)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
