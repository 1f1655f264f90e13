package reservation

import (
	"context"

	"github.com/TurneroApp/cancha-scheduler/internal/audit"
	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
	"github.com/TurneroApp/cancha-scheduler/internal/timezone"
)

type ConfirmReservation struct {
	repo             domain.Repository
	audit            *audit.Dispatcher
	tolerancePercent float64
}

func NewConfirmReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tolerancePercent float64,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:             repo,
		audit:            audit,
		tolerancePercent: tolerancePercent,
	}
}

func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	venueID uint,
	userID *uint,
	reservationID uint,
	depositPaid float64,
) (*models.Reservation, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(venue.Timezone)

	// Chequeo de transición y escritura bajo el mismo lock de fila.
	res, err := uc.repo.MutateReservation(ctx, reservationID, venueID,
		func(r *models.Reservation) error {
			return domain.Confirm(r, depositPaid, uc.tolerancePercent, now)
		})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  venueID,
		UserID:   userID,
		Action:   "reservation_confirmed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
