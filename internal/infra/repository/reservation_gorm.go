package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// asNotFound traduce el registro inexistente a un error de negocio; el
// resto sube como falla de infraestructura.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *ReservationGormRepository) GetVenueByID(
	ctx context.Context,
	id uint,
) (*models.Venue, error) {

	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &venue, nil
}

func (r *ReservationGormRepository) GetSportByID(
	ctx context.Context,
	id uint,
) (*models.Sport, error) {

	var sport models.Sport
	if err := r.db.WithContext(ctx).First(&sport, id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &sport, nil
}

func (r *ReservationGormRepository) GetSlotForVenue(
	ctx context.Context,
	slotID uint,
	venueID uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Court").
		First(&slot, slotID).Error; err != nil {
		return nil, asNotFound(err)
	}

	if slot.Court.VenueID != venueID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return &slot, nil
}

func (r *ReservationGormRepository) ListActiveSlots(
	ctx context.Context,
	venueID uint,
	sportID uint,
) ([]models.Slot, error) {

	q := r.db.WithContext(ctx).
		Joins("Court").
		Where("slots.active = ?", true).
		Where(`"Court".venue_id = ? AND "Court".active = ?`, venueID, true)

	if sportID > 0 {
		q = q.Where(`"Court".sport_id = ?`, sportID)
	}

	var slots []models.Slot
	if err := q.
		Order(`"Court".number ASC, slots.start_time ASC`).
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *ReservationGormRepository) GetClientForVenue(
	ctx context.Context,
	clientID uint,
	venueID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND venue_id = ?", clientID, venueID).
		First(&client).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &client, nil
}

func (r *ReservationGormRepository) GetOrCreateClient(
	ctx context.Context,
	venueID uint,
	name string,
	surname string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND phone = ?", venueID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		VenueID: venueID,
		Name:    name,
		Surname: surname,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Reserva (alta / conflicto)
// --------------------------------------------------

// CreateReservation revalida el par (turno, fecha) dentro de la
// transacción, bloqueando las filas vivas con SELECT ... FOR UPDATE. El
// lock tiene que ir sobre filas, nunca sobre un agregado: Postgres
// rechaza FOR UPDATE con count(*). Si la revalidación pasa en vacío y dos
// altas corren a la vez, el índice único parcial decide; el perdedor
// recibe slot_unavailable, no un error de infraestructura. Todo o nada:
// si pierde la carrera no queda ninguna fila.
func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ids []uint
		if err := tx.
			Model(&models.Reservation{}).
			Select("id").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"slot_id = ? AND reservation_date = ? AND status IN ?",
				res.SlotID,
				res.ReservationDate,
				domain.ActiveStatuses(),
			).
			Find(&ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}

		if err := tx.Create(res).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Reserva (transiciones)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationForVenue(
	ctx context.Context,
	reservationID uint,
	venueID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Slot").
		Preload("Slot.Court").
		Joins("JOIN slots ON slots.id = reservations.slot_id").
		Joins("JOIN courts ON courts.id = slots.court_id").
		Where("reservations.id = ? AND courts.venue_id = ?", reservationID, venueID).
		First(&res).Error; err != nil {
		return nil, asNotFound(err)
	}

	return &res, nil
}

func (r *ReservationGormRepository) GetReservationByCode(
	ctx context.Context,
	code string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Slot").
		Preload("Slot.Court").
		Where("code = ?", code).
		First(&res).Error; err != nil {
		return nil, asNotFound(err)
	}

	return &res, nil
}

// MutateReservation hace atómicos el chequeo de transición y la
// escritura: la fila queda bloqueada con FOR UPDATE OF reservations desde
// la lectura hasta el commit, así una finalización nunca pisa una
// cancelación concurrente ya confirmada.
func (r *ReservationGormRepository) MutateReservation(
	ctx context.Context,
	reservationID uint,
	venueID uint,
	mutate func(*models.Reservation) error,
) (*models.Reservation, error) {

	var res models.Reservation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{
				Strength: "UPDATE",
				Table:    clause.Table{Name: "reservations"},
			}).
			Joins("JOIN slots ON slots.id = reservations.slot_id").
			Joins("JOIN courts ON courts.id = slots.court_id").
			Where("reservations.id = ? AND courts.venue_id = ?", reservationID, venueID).
			First(&res).Error; err != nil {
			return asNotFound(err)
		}

		err := mutate(&res)
		if errors.Is(err, domain.ErrSkipUpdate) {
			return nil
		}
		if err != nil {
			return err
		}

		return tx.Save(&res).Error
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// --------------------------------------------------
// Disponibilidad / agenda
// --------------------------------------------------

func (r *ReservationGormRepository) ListReservationsForSlots(
	ctx context.Context,
	slotIDs []uint,
	from time.Time,
	to time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("id", "slot_id", "reservation_date", "status").
		Where(
			"slot_id IN ? AND reservation_date BETWEEN ? AND ? AND status IN ?",
			slotIDs, from, to, domain.ActiveStatuses(),
		).
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	venueID uint,
	from time.Time,
	to time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Slot").
		Preload("Slot.Court").
		Joins("JOIN slots ON slots.id = reservations.slot_id").
		Joins("JOIN courts ON courts.id = slots.court_id").
		Where(
			"courts.venue_id = ? AND reservations.reservation_date BETWEEN ? AND ?",
			venueID, from, to,
		).
		Order("reservations.reservation_date ASC, slots.start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
