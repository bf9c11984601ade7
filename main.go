// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FADHEEL1234/Online-Medical/apiclient"
	"github.com/FADHEEL1234/Online-Medical/config"
	"github.com/FADHEEL1234/Online-Medical/handlers"
	"github.com/FADHEEL1234/Online-Medical/middleware"
	"github.com/FADHEEL1234/Online-Medical/routes"
	"github.com/FADHEEL1234/Online-Medical/services"
	"github.com/FADHEEL1234/Online-Medical/session"
	"github.com/FADHEEL1234/Online-Medical/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Session store: Redis when configured, otherwise process-local.
	var store session.Store
	if config.AppConfig.RedisAddr != "" {
		client, err := session.NewRedisClient()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to connect session store: %v", err)
		}
		store = session.NewRedisStore(client, config.SessionTTL())
	} else {
		logger.Sugar().Warn("main: REDIS_ADDR empty, sessions held in process memory")
		store = session.NewMemoryStore()
	}

	api := apiclient.New(config.AppConfig.APIBaseURL, store)

	// services.
	authService := &services.AuthService{API: api, Sessions: store}
	doctorService := &services.DoctorService{API: api}
	appointmentService := &services.AppointmentService{API: api}

	monitor := services.NewBackendMonitor(api)
	if err := monitor.Start(config.AppConfig.HealthProbeSpec); err != nil {
		logger.Sugar().Fatalf("main: failed to start backend health monitor: %v", err)
	}
	defer monitor.Stop()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.LoadHTMLGlob("templates/*.tmpl")

	viewHandler := handlers.NewViewHandler(authService, doctorService, appointmentService, monitor)
	routes.RegisterRoutes(router, store, viewHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5173"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (backend %s)...", srv.Addr, config.AppConfig.APIBaseURL)
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
