package reservation

import (
	"context"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	venueID uint,
	reservationID uint,
) (*models.Reservation, error) {
	return uc.repo.GetReservationForVenue(ctx, reservationID, venueID)
}
