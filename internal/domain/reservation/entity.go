package reservation

import (
	"time"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

// ===============================
// Acciones de dominio
// ===============================

// Confirm registra la seña y pasa la reserva a confirmada.
// tolerancePercent admite un pago apenas por encima del total (redondeos,
// propinas); lo persistido nunca supera el total.
func Confirm(res *models.Reservation, depositPaid float64, tolerancePercent float64, now time.Time) error {
	if err := CanConfirm(Status(res.Status)); err != nil {
		return err
	}

	if depositPaid < 0 {
		return httperr.ErrBusiness(httperr.CodeInvalidAmount)
	}

	maxAccepted := res.TotalPrice * (1 + tolerancePercent/100)
	if depositPaid > maxAccepted {
		return httperr.ErrBusiness(httperr.CodeInvalidAmount)
	}

	if depositPaid > res.TotalPrice {
		depositPaid = res.TotalPrice
	}

	res.Status = string(StatusConfirmed)
	res.DepositPaid = depositPaid
	res.ConfirmedAt = &now
	return nil
}

// Cancel libera el par (turno, fecha). La idempotencia del doble cancel
// se resuelve en el caso de uso, no acá.
func Cancel(res *models.Reservation, reason string, now time.Time) error {
	if err := CanCancel(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusCancelled)
	res.CancelReason = reason
	res.CancelledAt = &now
	return nil
}

// Finalize cierra una reserva confirmada una vez prestado el servicio.
// No se puede finalizar antes de la fecha del turno.
func Finalize(res *models.Reservation, now time.Time) error {
	if err := CanFinalize(Status(res.Status)); err != nil {
		return err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	resDate := res.ReservationDate
	resDay := time.Date(resDate.Year(), resDate.Month(), resDate.Day(), 0, 0, 0, 0, now.Location())
	if resDay.After(today) {
		return httperr.ErrBusiness(httperr.CodeTooEarly)
	}

	res.Status = string(StatusFinalized)
	res.FinalizedAt = &now
	return nil
}
