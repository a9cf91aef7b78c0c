package ficha

import (
	"bytes"
	"testing"

	"github.com/cbta228/app-preinscripcion/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAspirante() *models.Aspirante {
	return &models.Aspirante{
		Correo:              "maria.gonzalez@example.com",
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
		NumeroInterior:      "B",
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

func TestParseLayout(t *testing.T) {
	assert.Equal(t, LayoutSencilla, ParseLayout(""))
	assert.Equal(t, LayoutSencilla, ParseLayout("sencilla"))
	assert.Equal(t, LayoutSencilla, ParseLayout("anything-else"))
	assert.Equal(t, LayoutCorte, ParseLayout("corte"))
	assert.Equal(t, LayoutCorte, ParseLayout("  CORTE "))
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "N/A", displayValue(""))
	assert.Equal(t, "N/A", displayValue("   "))
	assert.Equal(t, "Centro", displayValue(" Centro "))
}

func TestComposeNombreCompleto(t *testing.T) {
	assert.Equal(t, "María González Cruz", composeNombreCompleto("María", "González", "Cruz"))
	assert.Equal(t, "María Cruz", composeNombreCompleto("María", "", "Cruz"))
	assert.Equal(t, "", composeNombreCompleto("", "", ""))
}

func TestComposeDomicilio(t *testing.T) {
	assert.Equal(t, "Av. Revolución #123 Int. B", composeDomicilio("Av. Revolución", "123", "B"))
	assert.Equal(t, "Av. Revolución #123", composeDomicilio("Av. Revolución", "123", ""))
	assert.Equal(t, "Av. Revolución", composeDomicilio("Av. Revolución", "", ""))
	assert.Equal(t, "#123", composeDomicilio("", "123", ""))
	assert.Equal(t, "", composeDomicilio("", "", ""))
}

func TestComposePar(t *testing.T) {
	assert.Equal(t, "Pabellón, Aguascalientes", composePar("Pabellón", "Aguascalientes", ", "))
	assert.Equal(t, "Pabellón", composePar("Pabellón", "", ", "))
	assert.Equal(t, "Aguascalientes", composePar("", "Aguascalientes", ", "))
	assert.Equal(t, "General - Pública", composePar("General", "Pública", " - "))
}

func TestFormatFechaNacimiento(t *testing.T) {
	assert.Equal(t, "29/02/2004", formatFechaNacimiento("2004-02-29"))
	assert.Equal(t, "29/02/2004", formatFechaNacimiento("2004-02-29T00:00:00Z"))
	assert.Equal(t, "29/02/2004", formatFechaNacimiento("29/02/2004"))
	assert.Equal(t, "", formatFechaNacimiento("  "))
	// Unparseable input is passed through untouched
	assert.Equal(t, "hace veinte años", formatFechaNacimiento("hace veinte años"))
}

func TestBuildSections(t *testing.T) {
	secs := buildSections(testAspirante())

	require.Len(t, secs, 4)
	assert.Equal(t, "DATOS PERSONALES", secs[0].title)
	assert.Equal(t, "DOMICILIO", secs[1].title)
	assert.Equal(t, "DATOS ACADÉMICOS (SECUNDARIA)", secs[2].title)
	assert.Equal(t, "DATOS DEL TUTOR", secs[3].title)

	assert.Equal(t, row{"Nombre Completo:", "María González Cruz"}, secs[0].rows[0])
	assert.Equal(t, row{"Fecha de Nacimiento:", "29/02/2004"}, secs[0].rows[2])
	assert.Equal(t, row{"Calle y Número:", "Av. Revolución #123 Int. B"}, secs[1].rows[0])
	assert.Equal(t, row{"Municipio / Estado:", "Pabellón de Arteaga, Aguascalientes"}, secs[1].rows[2])
	assert.Equal(t, row{"Tipo / Sostenimiento:", "General - Pública"}, secs[2].rows[1])
	assert.Equal(t, row{"Teléfono del Tutor:", "4497654321"}, secs[3].rows[2])
}

func TestBuildSections_EmptyRecord(t *testing.T) {
	secs := buildSections(&models.Aspirante{})

	for _, sec := range secs {
		for _, r := range sec.rows {
			assert.Equal(t, "N/A", r.value, "row %q should fall back to the placeholder", r.label)
		}
	}
}

func TestRender_Sencilla(t *testing.T) {
	pdfBytes, err := Render(testAspirante(), 42, Options{Layout: LayoutSencilla})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(pdfBytes), 1000)
}

func TestRender_Corte(t *testing.T) {
	pdfBytes, err := Render(testAspirante(), 42, Options{Layout: LayoutCorte})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestRender_WithLogo(t *testing.T) {
	// Smallest valid 1x1 PNG
	logo := []byte{
		0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
		0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53, 0xde, 0x00, 0x00, 0x00,
		0x0c, 0x49, 0x44, 0x41, 0x54, 0x08, 0xd7, 0x63, 0xf8, 0xcf, 0xc0, 0x00,
		0x00, 0x00, 0x03, 0x00, 0x01, 0xfb, 0xb8, 0x7d, 0xdb, 0x00, 0x00, 0x00,
		0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
	}

	pdfBytes, err := Render(testAspirante(), 7, Options{Layout: LayoutSencilla, Logo: logo, LogoType: "png"})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestRender_NilAspirante(t *testing.T) {
	_, err := Render(nil, 1, Options{})
	assert.Error(t, err)
}
