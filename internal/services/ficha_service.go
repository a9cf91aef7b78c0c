package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbta228/app-preinscripcion/internal/config"
	"github.com/cbta228/app-preinscripcion/internal/ficha"
	"github.com/cbta228/app-preinscripcion/internal/models"
	"github.com/cbta228/app-preinscripcion/internal/observability"
	"go.uber.org/zap"
)

// aspiranteColumns is the stored column list in scan order
const aspiranteColumns = `id, correo, curp, nombre, apellidoPaterno, apellidoMaterno, genero, ` +
	`fechaNacimiento, carrera, calle, numeroExterior, numeroInterior, colonia, municipio, ` +
	`codigoPostal, estado, telefono, promedio, tipoSecundaria, sostenimiento, ` +
	`localidadSecundaria, nombreSecundaria, nombreTutor, ocupacionTutor, telefonoTutor`

// FichaService looks up stored records by folio and renders their slips
type FichaService struct {
	db     *sql.DB
	logos  *ficha.LogoFetcher
	layout ficha.Layout
	logger *zap.Logger
}

// NewFichaService creates a new ficha service instance
func NewFichaService(db *sql.DB, logos *ficha.LogoFetcher, layout ficha.Layout, logger *zap.Logger) *FichaService {
	return &FichaService{
		db:     db,
		logos:  logos,
		layout: layout,
		logger: logger,
	}
}

// Global ficha service instance
var FichaServiceInstance *FichaService

// InitFichaService initializes the global ficha service instance
func InitFichaService() {
	logger := zap.L().Named("ficha_service")

	var logos *ficha.LogoFetcher
	if config.AppConfig.LogoURL != "" {
		logos = ficha.NewLogoFetcher(config.AppConfig.LogoURL, config.AppConfig.LogoTimeout)
	}

	FichaServiceInstance = NewFichaService(
		config.Postgres,
		logos,
		ficha.ParseLayout(config.AppConfig.FichaLayout),
		logger,
	)

	logger.Info("ficha service initialized successfully",
		zap.String("layout", config.AppConfig.FichaLayout),
		zap.Bool("logo_enabled", logos != nil),
	)
}

// GetAspirante retrieves a stored record by its folio
func (s *FichaService) GetAspirante(ctx context.Context, folio int64) (*models.Aspirante, error) {
	var a models.Aspirante

	query := `SELECT ` + aspiranteColumns + ` FROM aspirantes WHERE id = $1`
	err := s.db.QueryRowContext(ctx, query, folio).Scan(
		&a.ID, &a.Correo, &a.CURP, &a.Nombre, &a.ApellidoPaterno, &a.ApellidoMaterno,
		&a.Genero, &a.FechaNacimiento, &a.Carrera, &a.Calle, &a.NumeroExterior,
		&a.NumeroInterior, &a.Colonia, &a.Municipio, &a.CodigoPostal, &a.Estado,
		&a.Telefono, &a.Promedio, &a.TipoSecundaria, &a.Sostenimiento,
		&a.LocalidadSecundaria, &a.NombreSecundaria, &a.NombreTutor,
		&a.OcupacionTutor, &a.TelefonoTutor,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrAspiranteNotFound
		}
		observability.DatabaseOperations.WithLabelValues("find", "error").Inc()
		s.logger.Error("failed to get aspirante by folio",
			zap.Int64("folio", folio),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get aspirante: %w", err)
	}

	observability.DatabaseOperations.WithLabelValues("find", "success").Inc()
	return &a, nil
}

// Render produces the PDF slip for a stored record. The logo fetch is best
// effort: a failed fetch only degrades the output, never the render.
func (s *FichaService) Render(ctx context.Context, a *models.Aspirante) ([]byte, error) {
	opts := ficha.Options{Layout: s.layout}

	if s.logos != nil && s.layout != ficha.LayoutCorte {
		logo, imageType, err := s.logos.Fetch(ctx)
		if err != nil {
			s.logger.Warn("logo fetch failed, rendering without logo", zap.Error(err))
		} else {
			opts.Logo = logo
			opts.LogoType = imageType
		}
	}

	pdfBytes, err := ficha.Render(a, a.ID, opts)
	if err != nil {
		observability.FichasRendered.WithLabelValues(string(s.layout), "error").Inc()
		s.logger.Error("failed to render ficha",
			zap.Int64("folio", a.ID),
			zap.Error(err))
		return nil, err
	}

	observability.FichasRendered.WithLabelValues(string(s.layout), "success").Inc()
	return pdfBytes, nil
}
