package handlers

import (
	"errors"
	"net/http"

	"github.com/cbta228/app-preinscripcion/internal/models"
	"github.com/cbta228/app-preinscripcion/internal/observability"
	"github.com/cbta228/app-preinscripcion/internal/services"
	"github.com/cbta228/app-preinscripcion/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrorResponse is the error payload for malformed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable outcome message
type MessageResponse struct {
	Message string `json:"message"`
}

// PreinscripcionResponse is the success payload of a new registration
type PreinscripcionResponse struct {
	Message string `json:"message"`
	FichaID int64  `json:"fichaId"`
}

// CreatePreinscripcion godoc
// @Summary Registrar una nueva preinscripción
// @Description Recibe el formulario de preinscripción, verifica que el correo y la CURP no estén registrados y guarda al aspirante. Si el correo saliente está configurado, envía la ficha en PDF al aspirante.
// @Tags preinscripcion
// @Accept json
// @Produce json
// @Param aspirante body models.Aspirante true "Datos del aspirante"
// @Success 200 {object} PreinscripcionResponse "Aspirante registrado con éxito"
// @Failure 400 {object} ErrorResponse "Cuerpo de la petición inválido o CURP con formato incorrecto"
// @Failure 409 {object} MessageResponse "Correo o CURP ya registrados"
// @Failure 500 {object} MessageResponse "Error interno al registrar"
// @Router /api/preinscripcion [post]
func CreatePreinscripcion(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreatePreinscripcion")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "create_preinscripcion"),
		attribute.String("service", "registration"),
	)

	var aspirante models.Aspirante
	if err := c.ShouldBindJSON(&aspirante); err != nil {
		observability.Logger().Warn("invalid registration body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cuerpo de la petición inválido"})
		return
	}

	logger := observability.Logger().With(
		zap.String("correo", observability.MaskCorreo(aspirante.Correo)),
		zap.String("curp", observability.MaskCURP(aspirante.CURP)),
	)

	if aspirante.CURP != "" && !utils.ValidateCURP(aspirante.CURP) {
		logger.Warn("rejected registration with malformed CURP")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "CURP con formato inválido"})
		return
	}

	result, err := services.RegistrationServiceInstance.Register(ctx, &aspirante)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyRegistered) {
			c.JSON(http.StatusConflict, MessageResponse{Message: "Correo o CURP ya registrados."})
			return
		}
		logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Error al registrar."})
		return
	}

	span.SetAttributes(attribute.Int64("ficha_id", result.FichaID))

	message := "Éxito"
	if result.NotifyError != "" {
		message = "Registrado, pero el correo falló."
	}
	c.JSON(http.StatusOK, PreinscripcionResponse{Message: message, FichaID: result.FichaID})
}
