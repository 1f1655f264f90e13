package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/usecase/report"
)

// AnalyticsGormRepository resuelve los reportes como agregaciones SQL:
// agrupamiento, orden y desempates quedan en la consulta, no en loops.
type AnalyticsGormRepository struct {
	db *gorm.DB
}

func NewAnalyticsGormRepository(db *gorm.DB) *AnalyticsGormRepository {
	return &AnalyticsGormRepository{db: db}
}

// revenueStatuses: solo lo confirmado o finalizado factura. Lo pendiente
// es una retención, lo cancelado no cuenta.
func revenueStatuses() []string {
	return []string{
		string(domain.StatusConfirmed),
		string(domain.StatusFinalized),
	}
}

func (r *AnalyticsGormRepository) base(ctx context.Context, f report.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("reservations").
		Joins("JOIN slots ON slots.id = reservations.slot_id").
		Joins("JOIN courts ON courts.id = slots.court_id").
		Where("reservations.reservation_date BETWEEN ? AND ?", f.From, f.To)

	if f.VenueID > 0 {
		q = q.Where("courts.venue_id = ?", f.VenueID)
	}
	if f.SportID > 0 {
		q = q.Where("courts.sport_id = ?", f.SportID)
	}

	return q
}

func periodFormat(granularity string) string {
	switch granularity {
	case report.GranularityWeek:
		return `IYYY-"W"IW`
	case report.GranularityMonth:
		return "YYYY-MM"
	default:
		return "YYYY-MM-DD"
	}
}

func (r *AnalyticsGormRepository) RevenueByPeriod(
	ctx context.Context,
	f report.Filter,
	granularity string,
) ([]report.PeriodRevenueRow, error) {

	var rows []report.PeriodRevenueRow
	err := r.base(ctx, f).
		Select(
			"to_char(reservations.reservation_date, ?) AS period, "+
				"COUNT(*) AS reservation_count, "+
				"COALESCE(SUM(reservations.total_price), 0) AS total_revenue, "+
				"COALESCE(SUM(reservations.deposit_paid), 0) AS total_deposits",
			periodFormat(granularity),
		).
		Where("reservations.status IN ?", revenueStatuses()).
		Group("period").
		Order("period ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AnalyticsGormRepository) RevenueBySport(
	ctx context.Context,
	f report.Filter,
) ([]report.GroupRevenueRow, error) {

	var rows []report.GroupRevenueRow
	err := r.base(ctx, f).
		Joins("JOIN sports ON sports.id = courts.sport_id").
		Select(
			"sports.id AS id, sports.name AS name, " +
				"COUNT(*) AS reservation_count, " +
				"COALESCE(SUM(reservations.total_price), 0) AS total_revenue, " +
				"COALESCE(SUM(reservations.deposit_paid), 0) AS total_deposits",
		).
		Where("reservations.status IN ?", revenueStatuses()).
		Group("sports.id, sports.name").
		Order("total_revenue DESC, sports.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AnalyticsGormRepository) RevenueByVenue(
	ctx context.Context,
	f report.Filter,
) ([]report.GroupRevenueRow, error) {

	var rows []report.GroupRevenueRow
	err := r.base(ctx, f).
		Joins("JOIN venues ON venues.id = courts.venue_id").
		Select(
			"venues.id AS id, venues.name AS name, " +
				"COUNT(*) AS reservation_count, " +
				"COALESCE(SUM(reservations.total_price), 0) AS total_revenue, " +
				"COALESCE(SUM(reservations.deposit_paid), 0) AS total_deposits",
		).
		Where("reservations.status IN ?", revenueStatuses()).
		Group("venues.id, venues.name").
		Order("total_revenue DESC, venues.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// CourtUsage devuelve los conteos crudos por cancha: turnos activos del
// catálogo y reservas vivas del rango. El cálculo del porcentaje queda en
// el caso de uso, que conoce la cantidad de días del rango.
func (r *AnalyticsGormRepository) CourtUsage(
	ctx context.Context,
	f report.Filter,
) ([]report.CourtUsageRow, error) {

	q := r.db.WithContext(ctx).
		Table("courts").
		Joins("JOIN venues ON venues.id = courts.venue_id").
		Select(
			"courts.id AS court_id, courts.number AS court_number, "+
				"courts.venue_id AS venue_id, venues.name AS venue_name, "+
				"(SELECT COUNT(*) FROM slots WHERE slots.court_id = courts.id AND slots.active = TRUE) AS active_slots, "+
				"(SELECT COUNT(*) FROM reservations res JOIN slots s ON s.id = res.slot_id "+
				" WHERE s.court_id = courts.id AND res.status <> ? "+
				" AND res.reservation_date BETWEEN ? AND ?) AS occupied",
			string(domain.StatusCancelled), f.From, f.To,
		).
		Where("courts.active = ?", true)

	if f.VenueID > 0 {
		q = q.Where("courts.venue_id = ?", f.VenueID)
	}
	if f.SportID > 0 {
		q = q.Where("courts.sport_id = ?", f.SportID)
	}

	var rows []report.CourtUsageRow
	if err := q.Order("courts.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AnalyticsGormRepository) TopClients(
	ctx context.Context,
	f report.Filter,
	limit int,
) ([]report.TopClientRow, error) {

	var rows []report.TopClientRow
	err := r.base(ctx, f).
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Select(
			"clients.id AS client_id, clients.name AS name, clients.surname AS surname, " +
				"COUNT(*) AS reservation_count, " +
				"COALESCE(SUM(reservations.total_price), 0) AS total_spend, " +
				"ROUND(COALESCE(AVG(reservations.total_price), 0)::numeric, 2) AS avg_spend, " +
				"to_char(MIN(reservations.reservation_date), 'YYYY-MM-DD') AS first_reservation, " +
				"to_char(MAX(reservations.reservation_date), 'YYYY-MM-DD') AS last_reservation",
		).
		Where("reservations.status IN ?", revenueStatuses()).
		Group("clients.id, clients.name, clients.surname").
		Order("reservation_count DESC, clients.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ report.Analytics = (*AnalyticsGormRepository)(nil)
