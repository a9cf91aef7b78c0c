// Package ficha renders the printable pre-registration slip. The drawing
// core is pure: it takes a stored record plus its folio and produces PDF
// bytes, with no I/O of its own. The optional institutional logo is fetched
// separately (see logo.go) and handed in as bytes.
package ficha

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/cbta228/app-preinscripcion/internal/models"
	"github.com/go-pdf/fpdf"
)

// Layout selects the page arrangement of the ficha
type Layout string

const (
	// LayoutSencilla is a single slip with the logo and a photo box
	LayoutSencilla Layout = "sencilla"
	// LayoutCorte draws the slip twice with a dashed cut line at mid-page
	LayoutCorte Layout = "corte"
)

// ParseLayout maps a configuration value to a Layout, defaulting to sencilla
func ParseLayout(s string) Layout {
	if strings.EqualFold(strings.TrimSpace(s), string(LayoutCorte)) {
		return LayoutCorte
	}
	return LayoutSencilla
}

// Options controls a single render
type Options struct {
	Layout   Layout
	Logo     []byte // optional; omitted from the page when nil
	LogoType string // "png", "jpg" or "gif" when Logo is set
}

const (
	titulo      = "FICHA DE PRE-REGISTRO CBTA 228"
	pieDePagina = "Este documento es un comprobante de pre-registro. Presentarlo en servicios escolares."
	sinDato     = "N/A"

	pageWidth  = 612.0 // Letter, points
	pageHeight = 792.0
	xLabel     = 50.0
	xValue     = 200.0
)

// slipMetrics are the vertical-advance constants for one slip. The sencilla
// layout uses the full-page values; corte compresses them so two copies fit.
type slipMetrics struct {
	titleSize  float64
	folioSize  float64
	headerSize float64
	rowSize    float64
	titleDrop  float64 // distance from slip origin to the title baseline
	headerGap  float64 // extra gap before a section header
	headerDrop float64 // advance after a section header
	rowStep    float64 // advance per field row
}

var (
	metricsSencilla = slipMetrics{titleSize: 18, folioSize: 14, headerSize: 12, rowSize: 10, titleDrop: 24, headerGap: 10, headerDrop: 25, rowStep: 20}
	metricsCorte    = slipMetrics{titleSize: 13, folioSize: 10, headerSize: 9, rowSize: 8, titleDrop: 16, headerGap: 6, headerDrop: 16, rowStep: 13}
)

type row struct {
	label string
	value string
}

type section struct {
	title string
	rows  []row
}

// displayValue defensively stringifies a field: blank input renders as the
// literal placeholder, never as an empty cell
func displayValue(s string) string {
	if strings.TrimSpace(s) == "" {
		return sinDato
	}
	return strings.TrimSpace(s)
}

// composeNombreCompleto joins the given name and both surnames
func composeNombreCompleto(nombre, paterno, materno string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{nombre, paterno, materno} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// composeDomicilio builds "calle #ext Int. int"; the interior qualifier
// appears only when an interior number was given
func composeDomicilio(calle, numExt, numInt string) string {
	calle = strings.TrimSpace(calle)
	numExt = strings.TrimSpace(numExt)
	numInt = strings.TrimSpace(numInt)

	s := calle
	if numExt != "" {
		if s != "" {
			s += " "
		}
		s += "#" + numExt
	}
	if numInt != "" {
		if s != "" {
			s += " "
		}
		s += "Int. " + numInt
	}
	return s
}

// composePar joins two values with a separator, tolerating missing halves
func composePar(a, b, sep string) string {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + sep + b
}

// formatFechaNacimiento localizes a birth date to dd/mm/aaaa. Unparseable
// input is rendered as submitted rather than dropped.
func formatFechaNacimiento(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}

// buildSections composes the ordered label/value rows of the slip
func buildSections(a *models.Aspirante) []section {
	return []section{
		{
			title: "DATOS PERSONALES",
			rows: []row{
				{"Nombre Completo:", displayValue(composeNombreCompleto(a.Nombre, a.ApellidoPaterno, a.ApellidoMaterno))},
				{"CURP:", displayValue(a.CURP)},
				{"Fecha de Nacimiento:", displayValue(formatFechaNacimiento(a.FechaNacimiento))},
				{"Género:", displayValue(a.Genero)},
				{"Carrera de Interés:", displayValue(a.Carrera)},
				{"Correo Electrónico:", displayValue(a.Correo)},
				{"Teléfono Móvil:", displayValue(a.Telefono.String())},
			},
		},
		{
			title: "DOMICILIO",
			rows: []row{
				{"Calle y Número:", displayValue(composeDomicilio(a.Calle, a.NumeroExterior.String(), a.NumeroInterior.String()))},
				{"Colonia:", displayValue(a.Colonia)},
				{"Municipio / Estado:", displayValue(composePar(a.Municipio, a.Estado, ", "))},
				{"Código Postal:", displayValue(a.CodigoPostal.String())},
			},
		},
		{
			title: "DATOS ACADÉMICOS (SECUNDARIA)",
			rows: []row{
				{"Nombre Secundaria:", displayValue(a.NombreSecundaria)},
				{"Tipo / Sostenimiento:", displayValue(composePar(a.TipoSecundaria, a.Sostenimiento, " - "))},
				{"Localidad Secundaria:", displayValue(a.LocalidadSecundaria)},
				{"Promedio General:", displayValue(a.Promedio.String())},
			},
		},
		{
			title: "DATOS DEL TUTOR",
			rows: []row{
				{"Nombre del Tutor:", displayValue(a.NombreTutor)},
				{"Ocupación:", displayValue(a.OcupacionTutor)},
				{"Teléfono del Tutor:", displayValue(a.TelefonoTutor.String())},
			},
		},
	}
}

// Render produces the finished PDF for one record
func Render(a *models.Aspirante, folio int64, opts Options) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("render ficha: nil aspirante")
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(fmt.Sprintf("Ficha de Pre-Registro #%d", folio), true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	secs := buildSections(a)

	switch opts.Layout {
	case LayoutCorte:
		renderCorte(pdf, tr, secs, folio)
	default:
		renderSencilla(pdf, tr, secs, folio, opts)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ficha: %w", err)
	}
	return buf.Bytes(), nil
}

// renderSencilla draws one full-page slip with the logo (when available)
// and a photo placeholder box
func renderSencilla(pdf *fpdf.Fpdf, tr func(string) string, secs []section, folio int64, opts Options) {
	if len(opts.Logo) > 0 && opts.LogoType != "" {
		pdf.RegisterImageOptionsReader("logo", fpdf.ImageOptions{ImageType: opts.LogoType}, bytes.NewReader(opts.Logo))
		pdf.ImageOptions("logo", pageWidth-112, 26, 62, 0, false, fpdf.ImageOptions{ImageType: opts.LogoType}, 0, "")
	}

	drawSlip(pdf, tr, secs, folio, 36, metricsSencilla)

	// Photo placeholder
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.75)
	pdf.Rect(pageWidth-140, 110, 90, 110, "D")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(pageWidth-112, 168, tr("FOTO"))

	// Footer
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(xLabel, pageHeight-50, tr(pieDePagina))
}

// renderCorte draws the slip twice, one copy per half page, with a dashed
// cut line between them
func renderCorte(pdf *fpdf.Fpdf, tr func(string) string, secs []section, folio int64) {
	const mid = pageHeight / 2

	for _, y0 := range []float64{24, mid + 28} {
		drawSlip(pdf, tr, secs, folio, y0, metricsCorte)

		// Photo placeholder per copy
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.5)
		pdf.Rect(pageWidth-130, y0+36, 70, 85, "D")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(128, 128, 128)
		pdf.Text(pageWidth-108, y0+82, tr("FOTO"))
	}

	// Dashed divider with cut label
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.5)
	pdf.SetDashPattern([]float64{4, 3}, 0)
	pdf.Line(30, mid, pageWidth-30, mid)
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	label := tr("--- RECORTE AQUÍ ---")
	pdf.Text((pageWidth-pdf.GetStringWidth(label))/2, mid-4, label)
}

// drawSlip draws the title row and every section of the slip starting at
// the given vertical origin, advancing a cursor by the metrics' constants
func drawSlip(pdf *fpdf.Fpdf, tr func(string) string, secs []section, folio int64, y0 float64, m slipMetrics) {
	y := y0 + m.titleDrop

	pdf.SetFont("Helvetica", "B", m.titleSize)
	pdf.SetTextColor(0, 135, 181)
	pdf.Text(xLabel, y, tr(titulo))

	pdf.SetFont("Helvetica", "B", m.folioSize)
	pdf.SetTextColor(255, 0, 0)
	pdf.Text(400, y, tr(fmt.Sprintf("Folio No: %d", folio)))

	y += m.titleDrop

	for _, sec := range secs {
		y += m.headerGap
		pdf.SetFont("Helvetica", "B", m.headerSize)
		pdf.SetTextColor(0, 135, 181)
		pdf.Text(xLabel, y, tr(sec.title))
		y += m.headerDrop

		for _, r := range sec.rows {
			pdf.SetFont("Helvetica", "B", m.rowSize)
			pdf.SetTextColor(0, 0, 0)
			pdf.Text(xLabel, y, tr(r.label))
			pdf.SetFont("Helvetica", "", m.rowSize)
			pdf.Text(xValue, y, tr(r.value))
			y += m.rowStep
		}
	}
}
