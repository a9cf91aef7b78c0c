package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/cbta228/app-preinscripcion/internal/config"
	"github.com/cbta228/app-preinscripcion/internal/observability"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Ping godoc
// @Summary Verificar que el servicio responde
// @Description Responde "pong" sin tocar la base de datos.
// @Tags salud
// @Produce plain
// @Success 200 {string} string "pong"
// @Router /api/ping [get]
func Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// HealthCheck godoc
// @Summary Estado del servicio y sus dependencias
// @Description Verifica la conexión con PostgreSQL y reporta el estado del servicio.
// @Tags salud
// @Produce json
// @Success 200 {object} map[string]string "Servicio saludable"
// @Failure 503 {object} map[string]string "Base de datos inaccesible"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := config.Postgres.PingContext(ctx); err != nil {
		observability.Logger().Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
