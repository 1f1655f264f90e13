package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

// ErrSkipUpdate lo devuelve el mutador de MutateReservation para
// confirmar la transacción sin escribir (la reserva ya está en el estado
// pedido).
var ErrSkipUpdate = errors.New("reservation: skip update")

type Repository interface {
	// -------- Catálogo --------
	GetVenueByID(
		ctx context.Context,
		id uint,
	) (*models.Venue, error)

	GetSportByID(
		ctx context.Context,
		id uint,
	) (*models.Sport, error)

	// GetSlotForVenue trae el turno con su cancha, validando que
	// pertenezca a la sede.
	GetSlotForVenue(
		ctx context.Context,
		slotID uint,
		venueID uint,
	) (*models.Slot, error)

	// ListActiveSlots lista los turnos activos de canchas activas de la
	// sede, opcionalmente filtrados por deporte (sportID = 0 → todos).
	ListActiveSlots(
		ctx context.Context,
		venueID uint,
		sportID uint,
	) ([]models.Slot, error)

	// -------- Cliente --------
	GetClientForVenue(
		ctx context.Context,
		clientID uint,
		venueID uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		venueID uint,
		name string,
		surname string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Reserva (alta / conflicto) --------

	// CreateReservation persiste la reserva revalidando, bajo lock de
	// fila y dentro de la misma transacción, que el par (turno, fecha)
	// siga libre. Devuelve slot_unavailable sin escribir nada si perdió
	// la carrera.
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reserva (transiciones) --------
	GetReservationForVenue(
		ctx context.Context,
		reservationID uint,
		venueID uint,
	) (*models.Reservation, error)

	GetReservationByCode(
		ctx context.Context,
		code string,
	) (*models.Reservation, error)

	// MutateReservation carga la reserva bajo lock de fila, aplica mutate
	// y persiste el resultado dentro de la misma transacción, para que el
	// chequeo de estado y la escritura sean atómicos. Si mutate devuelve
	// ErrSkipUpdate se confirma sin escribir; cualquier otro error
	// revierte todo.
	MutateReservation(
		ctx context.Context,
		reservationID uint,
		venueID uint,
		mutate func(*models.Reservation) error,
	) (*models.Reservation, error)

	// -------- Disponibilidad / agenda --------

	// ListReservationsForSlots trae las reservas no canceladas de los
	// turnos dados dentro del rango de fechas [from, to].
	ListReservationsForSlots(
		ctx context.Context,
		slotIDs []uint,
		from time.Time,
		to time.Time,
	) ([]models.Reservation, error)

	ListReservationsForPeriod(
		ctx context.Context,
		venueID uint,
		from time.Time,
		to time.Time,
	) ([]models.Reservation, error)
}
