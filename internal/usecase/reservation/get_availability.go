package reservation

import (
	"context"
	"fmt"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo         domain.Repository
	maxRangeDays int
}

func NewGetAvailability(repo domain.Repository, maxRangeDays int) *GetAvailability {
	return &GetAvailability{
		repo:         repo,
		maxRangeDays: maxRangeDays,
	}
}

// Execute expande el catálogo de turnos sobre cada fecha del rango
// [from, to] y marca ocupado todo par (turno, fecha) con una reserva no
// cancelada. Costo O(turnos × días); el rango se acota por configuración.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.SlotAvailability, error) {

	if in.From.IsZero() || in.To.IsZero() || in.From.After(in.To) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	days := int(in.To.Sub(in.From).Hours()/24) + 1
	if days > uc.maxRangeDays {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	if _, err := uc.repo.GetVenueByID(ctx, in.VenueID); err != nil {
		return nil, err
	}
	if in.SportID > 0 {
		if _, err := uc.repo.GetSportByID(ctx, in.SportID); err != nil {
			return nil, err
		}
	}

	slots, err := uc.repo.ListActiveSlots(ctx, in.VenueID, in.SportID)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return []domain.SlotAvailability{}, nil
	}

	slotIDs := make([]uint, 0, len(slots))
	for _, s := range slots {
		slotIDs = append(slotIDs, s.ID)
	}

	reservations, err := uc.repo.ListReservationsForSlots(ctx, slotIDs, in.From, in.To)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]string, len(reservations))
	for _, r := range reservations {
		occupied[occupancyKey(r.SlotID, r.ReservationDate.Format("2006-01-02"))] = r.Status
	}

	out := make([]domain.SlotAvailability, 0, len(slots)*days)

	for day := in.From; !day.After(in.To); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format("2006-01-02")

		for _, s := range slots {
			entry := domain.SlotAvailability{
				SlotID:      s.ID,
				CourtID:     s.CourtID,
				CourtNumber: s.Court.Number,
				SportID:     s.Court.SportID,
				Date:        dateStr,
				StartTime:   s.StartTime,
				EndTime:     s.EndTime,
				Status:      domain.AvailabilityFree,
			}

			if status, ok := occupied[occupancyKey(s.ID, dateStr)]; ok {
				entry.Status = domain.AvailabilityOccupied
				entry.ReservationStatus = status
			}

			out = append(out, entry)
		}
	}

	return out, nil
}

func occupancyKey(slotID uint, date string) string {
	return fmt.Sprintf("%d|%s", slotID, date)
}
