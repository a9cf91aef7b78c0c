package config

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/cbta228/app-preinscripcion/internal/logging"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var (
	// Postgres is the process-scoped connection pool
	Postgres *sql.DB
)

// InitPostgres initializes the PostgreSQL connection pool
func InitPostgres() {
	db, err := sql.Open("postgres", AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// Bounded pool: requests beyond MaxOpenConns queue for a free connection
	db.SetMaxOpenConns(AppConfig.DBMaxOpenConns)
	db.SetMaxIdleConns(AppConfig.DBMaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal(err)
	}

	Postgres = db

	if err := ensureSchema(ctx); err != nil {
		logging.Logger.Error("failed to ensure schema on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to PostgreSQL",
		zap.Int("max_open_conns", AppConfig.DBMaxOpenConns),
		zap.Int("max_idle_conns", AppConfig.DBMaxIdleConns),
	)
}

// ensureSchema creates the aspirantes table if it doesn't exist.
// Duplicates on (correo, curp) are filtered by the pre-insert check in the
// registration service; there is no unique index on those columns.
func ensureSchema(ctx context.Context) error {
	logger := zap.L().Named("database")

	const ddl = `
CREATE TABLE IF NOT EXISTS aspirantes (
	id                  BIGSERIAL PRIMARY KEY,
	correo              TEXT NOT NULL DEFAULT '',
	curp                TEXT NOT NULL DEFAULT '',
	nombre              TEXT NOT NULL DEFAULT '',
	apellidoPaterno     TEXT NOT NULL DEFAULT '',
	apellidoMaterno     TEXT NOT NULL DEFAULT '',
	genero              TEXT NOT NULL DEFAULT '',
	fechaNacimiento     TEXT NOT NULL DEFAULT '',
	carrera             TEXT NOT NULL DEFAULT '',
	calle               TEXT NOT NULL DEFAULT '',
	numeroExterior      TEXT NOT NULL DEFAULT '',
	numeroInterior      TEXT NOT NULL DEFAULT '',
	colonia             TEXT NOT NULL DEFAULT '',
	municipio           TEXT NOT NULL DEFAULT '',
	codigoPostal        TEXT NOT NULL DEFAULT '',
	estado              TEXT NOT NULL DEFAULT '',
	telefono            TEXT NOT NULL DEFAULT '',
	promedio            TEXT NOT NULL DEFAULT '',
	tipoSecundaria      TEXT NOT NULL DEFAULT '',
	sostenimiento       TEXT NOT NULL DEFAULT '',
	localidadSecundaria TEXT NOT NULL DEFAULT '',
	nombreSecundaria    TEXT NOT NULL DEFAULT '',
	nombreTutor         TEXT NOT NULL DEFAULT '',
	ocupacionTutor      TEXT NOT NULL DEFAULT '',
	telefonoTutor       TEXT NOT NULL DEFAULT ''
)`

	if _, err := Postgres.ExecContext(ctx, ddl); err != nil {
		logger.Error("failed to create aspirantes table", zap.Error(err))
		return err
	}

	logger.Info("aspirantes table verified")
	return nil
}
