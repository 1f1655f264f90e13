package report

import (
	"context"
	"time"
)

// Filter acota los reportes a un rango de fechas de reserva, con filtros
// opcionales por sede y deporte (0 = sin filtro).
type Filter struct {
	VenueID uint
	SportID uint
	From    time.Time
	To      time.Time
}

type PeriodRevenueRow struct {
	Period           string  `json:"period"`
	ReservationCount int64   `json:"reservation_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalDeposits    float64 `json:"total_deposits"`
}

type GroupRevenueRow struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	ReservationCount int64   `json:"reservation_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalDeposits    float64 `json:"total_deposits"`
}

// CourtUsageRow son los conteos crudos por cancha: turnos activos en el
// catálogo y reservas no canceladas dentro del rango.
type CourtUsageRow struct {
	CourtID     uint   `json:"court_id"`
	CourtNumber int    `json:"court_number"`
	VenueID     uint   `json:"venue_id"`
	ActiveSlots int64  `json:"active_slots"`
	Occupied    int64  `json:"occupied"`
	VenueName   string `json:"venue_name"`
}

type TopClientRow struct {
	ClientID         uint    `json:"client_id"`
	Name             string  `json:"name"`
	Surname          string  `json:"surname"`
	ReservationCount int64   `json:"reservation_count"`
	TotalSpend       float64 `json:"total_spend"`
	AvgSpend         float64 `json:"avg_spend"`
	FirstReservation string  `json:"first_reservation"`
	LastReservation  string  `json:"last_reservation"`
}

// Analytics es la cara de solo lectura del almacén de reservas. Las
// agregaciones (agrupado, orden, desempates) viven en la consulta, no en
// loops ad hoc.
type Analytics interface {
	RevenueByPeriod(ctx context.Context, f Filter, granularity string) ([]PeriodRevenueRow, error)
	RevenueBySport(ctx context.Context, f Filter) ([]GroupRevenueRow, error)
	RevenueByVenue(ctx context.Context, f Filter) ([]GroupRevenueRow, error)
	CourtUsage(ctx context.Context, f Filter) ([]CourtUsageRow, error)
	TopClients(ctx context.Context, f Filter, limit int) ([]TopClientRow, error)
}
