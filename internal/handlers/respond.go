package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
)

// respondError traduce la taxonomía del motor a HTTP. Los resultados de
// negocio van como 4xx con su código; el timeout y cualquier falla de
// infraestructura quedan genéricos, sin detalle interno.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		httperr.Timeout(c, "timeout", "La operación excedió el tiempo límite.")
		return
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	switch code {
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, "Recurso no encontrado.")
	case httperr.CodeSlotUnavailable:
		httperr.Conflict(c, code, "El turno ya está reservado para esa fecha.")
	case httperr.CodeInvalidTransition:
		httperr.Unprocessable(c, code, "La reserva no admite esa transición.")
	case httperr.CodeInvalidAmount:
		httperr.Unprocessable(c, code, "Monto de seña inválido.")
	case httperr.CodeTooEarly:
		httperr.Unprocessable(c, code, "La reserva todavía no puede finalizarse.")
	case httperr.CodeInvalidRange:
		httperr.BadRequest(c, code, "Rango de fechas inválido.")
	case httperr.CodeNoRateDefined:
		httperr.Unprocessable(c, code, "No hay tarifa definida para ese turno.")
	default:
		httperr.BadRequest(c, code, "Solicitud inválida.")
	}
}
