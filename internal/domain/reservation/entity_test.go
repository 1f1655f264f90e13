package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

func pendingReservation(total float64) *models.Reservation {
	return &models.Reservation{
		ID:              1,
		Status:          string(StatusPending),
		TotalPrice:      total,
		DepositRequired: 3000,
	}
}

func TestConfirm(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("confirma y registra la seña", func(t *testing.T) {
		res := pendingReservation(10000)

		err := Confirm(res, 3000, 10, now)

		assert.NoError(t, err)
		assert.Equal(t, string(StatusConfirmed), res.Status)
		assert.Equal(t, 3000.0, res.DepositPaid)
		assert.NotNil(t, res.ConfirmedAt)
		assert.Equal(t, now, *res.ConfirmedAt)
	})

	t.Run("rechaza monto negativo", func(t *testing.T) {
		res := pendingReservation(10000)

		err := Confirm(res, -1, 10, now)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidAmount))
		assert.Equal(t, string(StatusPending), res.Status)
	})

	t.Run("rechaza monto por encima de la tolerancia", func(t *testing.T) {
		res := pendingReservation(10000)

		// Tolerancia del 10% → tope aceptado 11000.
		err := Confirm(res, 11001, 10, now)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidAmount))
	})

	t.Run("dentro de la tolerancia persiste como máximo el total", func(t *testing.T) {
		res := pendingReservation(10000)

		err := Confirm(res, 10500, 10, now)

		assert.NoError(t, err)
		assert.Equal(t, 10000.0, res.DepositPaid)
	})

	t.Run("pago total exacto queda registrado completo", func(t *testing.T) {
		res := pendingReservation(10000)

		err := Confirm(res, 10000, 10, now)

		assert.NoError(t, err)
		assert.Equal(t, 10000.0, res.DepositPaid)
	})

	t.Run("no confirma una cancelada", func(t *testing.T) {
		res := pendingReservation(10000)
		res.Status = string(StatusCancelled)

		err := Confirm(res, 3000, 10, now)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("cancela una pendiente con motivo", func(t *testing.T) {
		res := pendingReservation(10000)

		err := Cancel(res, "lluvia", now)

		assert.NoError(t, err)
		assert.Equal(t, string(StatusCancelled), res.Status)
		assert.Equal(t, "lluvia", res.CancelReason)
		assert.NotNil(t, res.CancelledAt)
	})

	t.Run("cancela una confirmada", func(t *testing.T) {
		res := pendingReservation(10000)
		res.Status = string(StatusConfirmed)

		err := Cancel(res, "", now)

		assert.NoError(t, err)
		assert.Equal(t, string(StatusCancelled), res.Status)
	})

	t.Run("no cancela una finalizada", func(t *testing.T) {
		res := pendingReservation(10000)
		res.Status = string(StatusFinalized)

		err := Cancel(res, "", now)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	})
}

func TestFinalize(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	t.Run("finaliza una confirmada del día", func(t *testing.T) {
		res := pendingReservation(10000)
		res.Status = string(StatusConfirmed)
		res.ReservationDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		err := Finalize(res, now)

		assert.NoError(t, err)
		assert.Equal(t, string(StatusFinalized), res.Status)
		assert.NotNil(t, res.FinalizedAt)
	})

	t.Run("finaliza una confirmada pasada", func(t *testing.T) {
		res := pendingReservation(10000)
		res.Status = string(StatusConfirmed)
		res.ReservationDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		err := Finalize(res, now)

		assert.NoError(t, err)
	})

	t.Run("no finaliza antes de la fecha del turno", func(t *testing.T) {
		res := pendingReservation(10000)
		res.Status = string(StatusConfirmed)
		res.ReservationDate = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

		err := Finalize(res, now)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeTooEarly))
		assert.Equal(t, string(StatusConfirmed), res.Status)
	})

	t.Run("no finaliza una pendiente", func(t *testing.T) {
		res := pendingReservation(10000)
		res.ReservationDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		err := Finalize(res, now)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	})
}
