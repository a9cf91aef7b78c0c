package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cbta228/app-preinscripcion/internal/models"
	"github.com/cbta228/app-preinscripcion/internal/observability"
	"github.com/cbta228/app-preinscripcion/internal/services"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// GenerarFicha godoc
// @Summary Generar la ficha de preinscripción en PDF
// @Description Busca al aspirante por su folio y devuelve la ficha imprimible en PDF.
// @Tags preinscripcion
// @Produce application/pdf
// @Param fichaId path int true "Folio de la ficha"
// @Success 200 {file} binary "Ficha en PDF"
// @Failure 400 {object} ErrorResponse "Folio inválido"
// @Failure 404 {string} string "No encontrado"
// @Failure 500 {string} string "Error al generar la ficha"
// @Router /api/generar-ficha/{fichaId} [get]
func GenerarFicha(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GenerarFicha")
	defer span.End()

	folio, err := strconv.ParseInt(c.Param("fichaId"), 10, 64)
	if err != nil || folio <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Folio inválido"})
		return
	}

	span.SetAttributes(
		attribute.Int64("ficha_id", folio),
		attribute.String("operation", "generar_ficha"),
		attribute.String("service", "ficha"),
	)

	logger := observability.Logger().With(zap.Int64("folio", folio))

	aspirante, err := services.FichaServiceInstance.GetAspirante(ctx, folio)
	if err != nil {
		if errors.Is(err, models.ErrAspiranteNotFound) {
			c.String(http.StatusNotFound, "No encontrado")
			return
		}
		logger.Error("failed to load aspirante for ficha", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error al generar la ficha")
		return
	}

	pdfBytes, err := services.FichaServiceInstance.Render(ctx, aspirante)
	if err != nil {
		logger.Error("failed to render ficha", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error al generar la ficha")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=ficha_%d.pdf", folio))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
