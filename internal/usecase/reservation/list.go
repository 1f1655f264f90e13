package reservation

import (
	"context"
	"time"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/dto"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
	"github.com/TurneroApp/cancha-scheduler/internal/timezone"
)

// Vista de agenda del operador: reservas de la sede por día o por mes.

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	venueID uint,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(venue.Timezone)
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	reservations, err := uc.repo.ListReservationsForPeriod(ctx, venueID, start, start)
	if err != nil {
		return nil, err
	}

	return toListDTO(reservations), nil
}

type ListByMonth struct {
	repo domain.Repository
}

func NewListByMonth(repo domain.Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	venueID uint,
	year int,
	month int,
) ([]dto.ReservationListDTO, error) {

	venue, err := uc.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(venue.Timezone)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, -1)

	reservations, err := uc.repo.ListReservationsForPeriod(ctx, venueID, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTO(reservations), nil
}

func toListDTO(reservations []models.Reservation) []dto.ReservationListDTO {
	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:          res.ID,
			Code:        res.Code,
			Date:        res.ReservationDate.Format("2006-01-02"),
			StartTime:   res.Slot.StartTime,
			EndTime:     res.Slot.EndTime,
			CourtNumber: res.Slot.Court.Number,
			Status:      res.Status,
			ClientName:  res.Client.Name + " " + res.Client.Surname,
			TotalPrice:  res.TotalPrice,
			DepositPaid: res.DepositPaid,
		})
	}
	return out
}
