package reservation

import "github.com/TurneroApp/cancha-scheduler/internal/httperr"

// ===============================
// Estado de la reserva
// ===============================

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusFinalized Status = "finalizada"
	StatusCancelled Status = "cancelada"
)

// ActiveStatuses son los estados que ocupan el par (turno, fecha).
// Una reserva pendiente también bloquea: es una retención blanda.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed), string(StatusFinalized)}
}

// ===============================
// Validaciones de transición
// ===============================

// Las transiciones son monótonas: nunca se vuelve a "pendiente".

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func CanFinalize(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
