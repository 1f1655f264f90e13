package reservation

import (
	"context"

	"github.com/TurneroApp/cancha-scheduler/internal/audit"
	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
	"github.com/TurneroApp/cancha-scheduler/internal/timezone"
)

type FinalizeReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFinalizeReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *FinalizeReservation {
	return &FinalizeReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *FinalizeReservation) Execute(
	ctx context.Context,
	venueID uint,
	userID *uint,
	reservationID uint,
) (*models.Reservation, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(venue.Timezone)

	res, err := uc.repo.MutateReservation(ctx, reservationID, venueID,
		func(r *models.Reservation) error {
			return domain.Finalize(r, now)
		})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  venueID,
		UserID:   userID,
		Action:   "reservation_finalized",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
