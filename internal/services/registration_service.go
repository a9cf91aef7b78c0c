package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbta228/app-preinscripcion/internal/config"
	"github.com/cbta228/app-preinscripcion/internal/mailer"
	"github.com/cbta228/app-preinscripcion/internal/models"
	"github.com/cbta228/app-preinscripcion/internal/observability"
	"go.uber.org/zap"
)

// RegistrationService handles new pre-registration submissions
type RegistrationService struct {
	db     *sql.DB
	fichas *FichaService
	mail   *mailer.Mailer
	logger *zap.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(db *sql.DB, fichas *FichaService, mail *mailer.Mailer, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		db:     db,
		fichas: fichas,
		mail:   mail,
		logger: logger,
	}
}

// Global registration service instance
var RegistrationServiceInstance *RegistrationService

// InitRegistrationService initializes the global registration service
// instance. InitFichaService must run first.
func InitRegistrationService() {
	logger := zap.L().Named("registration_service")

	mail := mailer.New(mailer.Config{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.SMTPFrom,
		UseTLS:   config.AppConfig.SMTPUseTLS,
	})

	RegistrationServiceInstance = NewRegistrationService(
		config.Postgres,
		FichaServiceInstance,
		mail,
		logger,
	)

	logger.Info("registration service initialized successfully",
		zap.Bool("email_enabled", mail.Enabled()))
}

// Register stores a new submission and, when email delivery is configured,
// sends the rendered slip to the applicant. A delivery failure does not undo
// the registration; it is reported through the result instead.
//
// The duplicate check and the insert are two separate statements without a
// unique constraint backing them, so two concurrent submissions with the
// same correo or curp can both pass the check and both be stored.
func (s *RegistrationService) Register(ctx context.Context, a *models.Aspirante) (*models.RegistrationResult, error) {
	var existingID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM aspirantes WHERE correo = $1 OR curp = $2`,
		a.Correo, a.CURP,
	).Scan(&existingID)
	if err == nil {
		observability.Registrations.WithLabelValues("duplicate").Inc()
		s.logger.Info("duplicate registration rejected",
			zap.String("correo", observability.MaskCorreo(a.Correo)),
			zap.String("curp", observability.MaskCURP(a.CURP)),
			zap.Int64("existing_folio", existingID))
		return nil, models.ErrAlreadyRegistered
	}
	if !errors.Is(err, sql.ErrNoRows) {
		observability.DatabaseOperations.WithLabelValues("duplicate_check", "error").Inc()
		observability.Registrations.WithLabelValues("error").Inc()
		s.logger.Error("duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	var fichaID int64
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO aspirantes (
			correo, curp, nombre, apellidoPaterno, apellidoMaterno, genero,
			fechaNacimiento, carrera, calle, numeroExterior, numeroInterior,
			colonia, municipio, codigoPostal, estado, telefono, promedio,
			tipoSecundaria, sostenimiento, localidadSecundaria, nombreSecundaria,
			nombreTutor, ocupacionTutor, telefonoTutor
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		) RETURNING id`,
		a.Correo, a.CURP, a.Nombre, a.ApellidoPaterno, a.ApellidoMaterno,
		a.Genero, a.FechaNacimiento, a.Carrera, a.Calle,
		a.NumeroExterior.String(), a.NumeroInterior.String(), a.Colonia,
		a.Municipio, a.CodigoPostal.String(), a.Estado, a.Telefono.String(),
		a.Promedio.String(), a.TipoSecundaria, a.Sostenimiento,
		a.LocalidadSecundaria, a.NombreSecundaria, a.NombreTutor,
		a.OcupacionTutor, a.TelefonoTutor.String(),
	).Scan(&fichaID)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		observability.Registrations.WithLabelValues("error").Inc()
		s.logger.Error("failed to insert registration",
			zap.String("correo", observability.MaskCorreo(a.Correo)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to insert registration: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()
	observability.Registrations.WithLabelValues("success").Inc()

	a.ID = fichaID
	result := &models.RegistrationResult{FichaID: fichaID}

	s.logger.Info("registration stored",
		zap.Int64("folio", fichaID),
		zap.String("correo", observability.MaskCorreo(a.Correo)),
		zap.String("curp", observability.MaskCURP(a.CURP)))

	if !s.mail.Enabled() {
		return result, nil
	}

	if err := s.notify(ctx, a); err != nil {
		observability.EmailsSent.WithLabelValues("error").Inc()
		s.logger.Warn("ficha email failed",
			zap.Int64("folio", fichaID),
			zap.String("correo", observability.MaskCorreo(a.Correo)),
			zap.Error(err))
		result.NotifyError = err.Error()
		return result, nil
	}

	observability.EmailsSent.WithLabelValues("success").Inc()
	result.Notified = true
	return result, nil
}

// notify renders the slip and mails it to the applicant
func (s *RegistrationService) notify(ctx context.Context, a *models.Aspirante) error {
	pdfBytes, err := s.fichas.Render(ctx, a)
	if err != nil {
		return fmt.Errorf("render ficha for email: %w", err)
	}
	return s.mail.SendFicha(ctx, a.Correo, a.Nombre, a.ID, pdfBytes)
}
