package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbta228/app-preinscripcion/internal/config"
	"github.com/cbta228/app-preinscripcion/internal/handlers"
	"github.com/cbta228/app-preinscripcion/internal/logging"
	"github.com/cbta228/app-preinscripcion/internal/middleware"
	"github.com/cbta228/app-preinscripcion/internal/observability"
	"github.com/cbta228/app-preinscripcion/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/cbta228/app-preinscripcion/docs"
)

// @title           API de Preinscripción CBTA 228
// @version         1.0
// @description     API del sistema de preinscripción del CBTA 228. Recibe el formulario de aspirantes, guarda el registro y genera la ficha imprimible en PDF, con envío opcional por correo electrónico.

// @contact.name   Servicios Escolares CBTA 228
// @contact.email  servicios.escolares@cbta228.edu.mx

// @host      localhost:5000
// @BasePath  /

// @tag.name preinscripcion
// @tag.description Registro de aspirantes y generación de fichas

// @tag.name salud
// @tag.description Verificación del estado del servicio

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connection
	config.InitPostgres()

	// Initialize services
	services.InitFichaService()
	services.InitRegistrationService()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.New(cors.Config{
			AllowOrigins:     config.AppConfig.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", handlers.HealthCheck)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/ping", handlers.Ping)
		api.POST("/preinscripcion", handlers.CreatePreinscripcion)
		api.GET("/generar-ficha/:fichaId", handlers.GenerarFicha)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
