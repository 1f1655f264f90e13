package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/TurneroApp/cancha-scheduler/internal/audit"
	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/domain/pricing"
	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
	"github.com/TurneroApp/cancha-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	VenueID uint
	SlotID  uint

	// Fecha calendario a reservar, "2006-01-02".
	Date string

	// ClientID > 0 referencia un cliente existente; si es 0 se hace
	// get-or-create con los datos de contacto.
	ClientID      uint
	ClientName    string
	ClientSurname string
	ClientPhone   string
	ClientEmail   string

	// RequestedPrice > 0 pisa la tarifa de tabla (precio de operador).
	RequestedPrice float64

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo    domain.Repository
	pricing *pricing.Calculator
	audit   *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	pricing *pricing.Calculator,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:    repo,
		pricing: pricing,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	venue, err := uc.repo.GetVenueByID(ctx, in.VenueID)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(venue.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	slot, err := uc.repo.GetSlotForVenue(ctx, in.SlotID, in.VenueID)
	if err != nil {
		return nil, err
	}
	if !slot.Active || !slot.Court.Active {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	var quote *pricing.Quote
	if in.RequestedPrice > 0 {
		total := pricing.RoundHalfUp(in.RequestedPrice)
		quote = &pricing.Quote{
			Total:           total,
			DepositRequired: uc.pricing.DepositFor(total),
		}
	} else {
		quote, err = uc.pricing.Quote(
			ctx,
			slot.Court.SportID,
			date,
			slot.StartTime,
			slot.EndTime,
		)
		if err != nil {
			return nil, err
		}
	}

	var client *models.Client
	if in.ClientID > 0 {
		client, err = uc.repo.GetClientForVenue(ctx, in.ClientID, in.VenueID)
	} else {
		client, err = uc.repo.GetOrCreateClient(
			ctx,
			in.VenueID,
			in.ClientName,
			in.ClientSurname,
			in.ClientPhone,
			in.ClientEmail,
		)
	}
	if err != nil {
		return nil, err
	}

	res := &models.Reservation{
		Code:            uuid.NewString(),
		SlotID:          slot.ID,
		ClientID:        client.ID,
		ReservationDate: date,
		Status:          string(domain.InitialStatus()),
		TotalPrice:      quote.Total,
		DepositRequired: quote.DepositRequired,
		Notes:           in.Notes,
	}

	// La revalidación del par (turno, fecha) ocurre dentro de la
	// transacción del repositorio, con lock de fila. La lectura previa de
	// disponibilidad nunca alcanza como garantía.
	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VenueID:  in.VenueID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
