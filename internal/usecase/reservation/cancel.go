package reservation

import (
	"context"

	"github.com/TurneroApp/cancha-scheduler/internal/audit"
	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
	"github.com/TurneroApp/cancha-scheduler/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	venueID uint,
	userID *uint,
	reservationID uint,
	reason string,
) (*models.Reservation, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(venue.Timezone)

	// Doble cancel no es error: la cancelación es eventualmente
	// consistente desde la mirada del cliente.
	already := false

	res, err := uc.repo.MutateReservation(ctx, reservationID, venueID,
		func(r *models.Reservation) error {
			if r.Status == string(domain.StatusCancelled) {
				already = true
				return domain.ErrSkipUpdate
			}
			return domain.Cancel(r, reason, now)
		})
	if err != nil {
		return nil, err
	}

	if already {
		return res, nil
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  venueID,
		UserID:   userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
