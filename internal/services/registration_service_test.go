package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cbta228/app-preinscripcion/internal/ficha"
	"github.com/cbta228/app-preinscripcion/internal/mailer"
	"github.com/cbta228/app-preinscripcion/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSubmission() *models.Aspirante {
	return &models.Aspirante{
		Correo:              "maria@example.com",
		CURP:                "GOMC040229HDFNRLA9",
		Nombre:              "María",
		ApellidoPaterno:     "González",
		ApellidoMaterno:     "Cruz",
		Genero:              "Femenino",
		FechaNacimiento:     "2004-02-29",
		Carrera:             "Ofimática",
		Telefono:            "4491234567",
		Calle:               "Av. Revolución",
		NumeroExterior:      "123",
		Colonia:             "Centro",
		Municipio:           "Pabellón de Arteaga",
		CodigoPostal:        "20660",
		Estado:              "Aguascalientes",
		Promedio:            "8.7",
		TipoSecundaria:      "General",
		Sostenimiento:       "Pública",
		LocalidadSecundaria: "Pabellón de Arteaga",
		NombreSecundaria:    "Secundaria Técnica 1",
		NombreTutor:         "José González",
		OcupacionTutor:      "Agricultor",
		TelefonoTutor:       "4497654321",
	}
}

func newTestRegistrationService(t *testing.T, mail *mailer.Mailer) (*RegistrationService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	fichas := NewFichaService(db, nil, ficha.LayoutSencilla, zap.NewNop())
	service := NewRegistrationService(db, fichas, mail, zap.NewNop())
	return service, mock
}

func expectDuplicateCheck(mock sqlmock.Sqlmock, a *models.Aspirante) *sqlmock.ExpectedQuery {
	return mock.ExpectQuery(`SELECT id FROM aspirantes WHERE correo = \$1 OR curp = \$2`).
		WithArgs(a.Correo, a.CURP)
}

func expectInsert(mock sqlmock.Sqlmock) *sqlmock.ExpectedQuery {
	return mock.ExpectQuery(`INSERT INTO aspirantes`)
}

func TestRegister_Success(t *testing.T) {
	service, mock := newTestRegistrationService(t, mailer.New(mailer.Config{}))
	a := testSubmission()

	expectDuplicateCheck(mock, a).WillReturnError(sql.ErrNoRows)
	expectInsert(mock).
		WithArgs(
			a.Correo, a.CURP, a.Nombre, a.ApellidoPaterno, a.ApellidoMaterno,
			a.Genero, a.FechaNacimiento, a.Carrera, a.Calle, "123", "", a.Colonia,
			a.Municipio, "20660", a.Estado, "4491234567", "8.7", a.TipoSecundaria,
			a.Sostenimiento, a.LocalidadSecundaria, a.NombreSecundaria,
			a.NombreTutor, a.OcupacionTutor, "4497654321",
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	result, err := service.Register(context.Background(), a)

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.FichaID)
	assert.Equal(t, int64(42), a.ID)
	assert.False(t, result.Notified)
	assert.Empty(t, result.NotifyError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Duplicate(t *testing.T) {
	service, mock := newTestRegistrationService(t, mailer.New(mailer.Config{}))
	a := testSubmission()

	expectDuplicateCheck(mock, a).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	_, err := service.Register(context.Background(), a)

	assert.ErrorIs(t, err, models.ErrAlreadyRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateCheckError(t *testing.T) {
	service, mock := newTestRegistrationService(t, mailer.New(mailer.Config{}))
	a := testSubmission()

	expectDuplicateCheck(mock, a).WillReturnError(errors.New("connection reset by peer"))

	_, err := service.Register(context.Background(), a)

	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrAlreadyRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_InsertError(t *testing.T) {
	service, mock := newTestRegistrationService(t, mailer.New(mailer.Config{}))
	a := testSubmission()

	expectDuplicateCheck(mock, a).WillReturnError(sql.ErrNoRows)
	expectInsert(mock).WillReturnError(errors.New("deadlock detected"))

	_, err := service.Register(context.Background(), a)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Two submissions with the same correo and curp can both pass the duplicate
// check before either insert lands. Nothing in the schema stops the second
// insert, so both get a folio.
func TestRegister_DuplicateWindowAdmitsBothInserts(t *testing.T) {
	service, mock := newTestRegistrationService(t, mailer.New(mailer.Config{}))
	a := testSubmission()
	b := testSubmission()

	expectDuplicateCheck(mock, a).WillReturnError(sql.ErrNoRows)
	expectInsert(mock).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	expectDuplicateCheck(mock, b).WillReturnError(sql.ErrNoRows)
	expectInsert(mock).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	first, err := service.Register(context.Background(), a)
	require.NoError(t, err)
	second, err := service.Register(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.FichaID)
	assert.Equal(t, int64(2), second.FichaID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An unreachable SMTP server must not undo a stored registration; the
// failure surfaces through the result instead.
func TestRegister_EmailFailureKeepsRegistration(t *testing.T) {
	mail := mailer.New(mailer.Config{
		Host: "127.0.0.1",
		Port: 1,
		From: "noreply@cbta228.edu.mx",
	})
	service, mock := newTestRegistrationService(t, mail)
	a := testSubmission()

	expectDuplicateCheck(mock, a).WillReturnError(sql.ErrNoRows)
	expectInsert(mock).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	result, err := service.Register(context.Background(), a)

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.FichaID)
	assert.False(t, result.Notified)
	assert.NotEmpty(t, result.NotifyError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
