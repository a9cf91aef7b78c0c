package handlers

import (
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cbta228/app-preinscripcion/internal/config"
	"github.com/cbta228/app-preinscripcion/internal/ficha"
	"github.com/cbta228/app-preinscripcion/internal/logging"
	"github.com/cbta228/app-preinscripcion/internal/mailer"
	"github.com/cbta228/app-preinscripcion/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logging.InitLogger(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// setupTest wires sqlmock-backed service instances into the package globals
// the handlers read
func setupTest(t *testing.T) sqlmock.Sqlmock {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	config.Postgres = db

	fichas := services.NewFichaService(db, nil, ficha.LayoutSencilla, zap.NewNop())
	services.FichaServiceInstance = fichas
	services.RegistrationServiceInstance = services.NewRegistrationService(
		db, fichas, mailer.New(mailer.Config{}), zap.NewNop())

	return mock
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.GET("/health", HealthCheck)
	api := router.Group("/api")
	{
		api.GET("/ping", Ping)
		api.POST("/preinscripcion", CreatePreinscripcion)
		api.GET("/generar-ficha/:fichaId", GenerarFicha)
	}
	return router
}
