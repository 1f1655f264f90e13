package reservation

import (
	"context"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

type ListSlots struct {
	repo domain.Repository
}

func NewListSlots(repo domain.Repository) *ListSlots {
	return &ListSlots{repo: repo}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	venueID uint,
	sportID uint,
) ([]models.Slot, error) {

	if _, err := uc.repo.GetVenueByID(ctx, venueID); err != nil {
		return nil, err
	}

	if sportID > 0 {
		if _, err := uc.repo.GetSportByID(ctx, sportID); err != nil {
			return nil, err
		}
	}

	return uc.repo.ListActiveSlots(ctx, venueID, sportID)
}
