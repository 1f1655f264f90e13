package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
)

// MockAnalytics is a mock implementation of Analytics
type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) RevenueByPeriod(ctx context.Context, f Filter, granularity string) ([]PeriodRevenueRow, error) {
	args := m.Called(ctx, f, granularity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PeriodRevenueRow), args.Error(1)
}

func (m *MockAnalytics) RevenueBySport(ctx context.Context, f Filter) ([]GroupRevenueRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]GroupRevenueRow), args.Error(1)
}

func (m *MockAnalytics) RevenueByVenue(ctx context.Context, f Filter) ([]GroupRevenueRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]GroupRevenueRow), args.Error(1)
}

func (m *MockAnalytics) CourtUsage(ctx context.Context, f Filter) ([]CourtUsageRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CourtUsageRow), args.Error(1)
}

func (m *MockAnalytics) TopClients(ctx context.Context, f Filter, limit int) ([]TopClientRow, error) {
	args := m.Called(ctx, f, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TopClientRow), args.Error(1)
}

func weekFilter() Filter {
	return Filter{
		From: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

// ======================================================
// FACTURACIÓN
// ======================================================

func TestRevenueByPeriod_Execute(t *testing.T) {
	t.Run("delega con granularidad válida", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter()

		analytics.On("RevenueByPeriod", mock.Anything, f, GranularityDay).Return([]PeriodRevenueRow{
			{Period: "2025-06-09", ReservationCount: 3, TotalRevenue: 30000, TotalDeposits: 9000},
		}, nil)

		uc := NewRevenueByPeriod(analytics)

		rows, err := uc.Execute(context.Background(), f, GranularityDay)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, 30000.0, rows[0].TotalRevenue)

		analytics.AssertExpectations(t)
	})

	t.Run("granularidad desconocida es invalid_range", func(t *testing.T) {
		uc := NewRevenueByPeriod(new(MockAnalytics))

		rows, err := uc.Execute(context.Background(), weekFilter(), "hour")

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRange))
		assert.Nil(t, rows)
	})

	t.Run("rango invertido es invalid_range", func(t *testing.T) {
		uc := NewRevenueByPeriod(new(MockAnalytics))

		f := weekFilter()
		f.From, f.To = f.To, f.From

		rows, err := uc.Execute(context.Background(), f, GranularityDay)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRange))
		assert.Nil(t, rows)
	})

	t.Run("rango sin fechas es invalid_range", func(t *testing.T) {
		uc := NewRevenueByPeriod(new(MockAnalytics))

		rows, err := uc.Execute(context.Background(), Filter{}, GranularityDay)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRange))
		assert.Nil(t, rows)
	})
}

func TestRevenueBySport_Execute(t *testing.T) {
	analytics := new(MockAnalytics)
	f := weekFilter()

	analytics.On("RevenueBySport", mock.Anything, f).Return([]GroupRevenueRow{
		{ID: 1, Name: "Pádel", ReservationCount: 10, TotalRevenue: 120000},
		{ID: 2, Name: "Fútbol 5", ReservationCount: 4, TotalRevenue: 80000},
	}, nil)

	uc := NewRevenueBySport(analytics)

	rows, err := uc.Execute(context.Background(), f)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Pádel", rows[0].Name)
}

// ======================================================
// OCUPACIÓN
// ======================================================

func TestOccupancyByCourt_Execute(t *testing.T) {
	t.Run("calcula porcentaje sobre turnos × días", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter() // 7 días

		analytics.On("CourtUsage", mock.Anything, f).Return([]CourtUsageRow{
			{CourtID: 1, CourtNumber: 1, VenueID: 1, VenueName: "Club Norte", ActiveSlots: 4, Occupied: 7},
			{CourtID: 2, CourtNumber: 2, VenueID: 1, VenueName: "Club Norte", ActiveSlots: 4, Occupied: 21},
		}, nil)

		uc := NewOccupancyByCourt(analytics)

		out, err := uc.Execute(context.Background(), f)

		assert.NoError(t, err)
		assert.Len(t, out.Courts, 2)

		// Ordenado por ocupación descendente.
		assert.Equal(t, uint(2), out.Courts[0].CourtID)
		assert.Equal(t, int64(28), out.Courts[0].SlotsAvailable)
		assert.Equal(t, 75.0, out.Courts[0].OccupancyPercent)

		assert.Equal(t, uint(1), out.Courts[1].CourtID)
		assert.Equal(t, 25.0, out.Courts[1].OccupancyPercent)
	})

	t.Run("porcentaje con dos decimales", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter()

		analytics.On("CourtUsage", mock.Anything, f).Return([]CourtUsageRow{
			{CourtID: 1, ActiveSlots: 3, Occupied: 7}, // 7/21 = 33.333...
		}, nil)

		uc := NewOccupancyByCourt(analytics)

		out, err := uc.Execute(context.Background(), f)

		assert.NoError(t, err)
		assert.Equal(t, 33.33, out.Courts[0].OccupancyPercent)
	})

	t.Run("cancha sin turnos activos da cero, no divide", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter()

		analytics.On("CourtUsage", mock.Anything, f).Return([]CourtUsageRow{
			{CourtID: 1, ActiveSlots: 0, Occupied: 0},
		}, nil)

		uc := NewOccupancyByCourt(analytics)

		out, err := uc.Execute(context.Background(), f)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, out.Courts[0].OccupancyPercent)
	})

	t.Run("empate de ocupación desempata por id de cancha", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter()

		analytics.On("CourtUsage", mock.Anything, f).Return([]CourtUsageRow{
			{CourtID: 9, ActiveSlots: 2, Occupied: 7},
			{CourtID: 4, ActiveSlots: 2, Occupied: 7},
		}, nil)

		uc := NewOccupancyByCourt(analytics)

		out, err := uc.Execute(context.Background(), f)

		assert.NoError(t, err)
		assert.Equal(t, uint(4), out.Courts[0].CourtID)
		assert.Equal(t, uint(9), out.Courts[1].CourtID)
	})

	t.Run("top y bottom resumen los extremos", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter()

		analytics.On("CourtUsage", mock.Anything, f).Return([]CourtUsageRow{
			{CourtID: 1, ActiveSlots: 4, Occupied: 28}, // 100%
			{CourtID: 2, ActiveSlots: 4, Occupied: 21}, // 75%
			{CourtID: 3, ActiveSlots: 4, Occupied: 14}, // 50%
			{CourtID: 4, ActiveSlots: 4, Occupied: 7},  // 25%
			{CourtID: 5, ActiveSlots: 4, Occupied: 0},  // 0%
		}, nil)

		uc := NewOccupancyByCourt(analytics)

		out, err := uc.Execute(context.Background(), f)

		assert.NoError(t, err)
		assert.Len(t, out.Top, 3)
		assert.Len(t, out.Bottom, 3)
		assert.Equal(t, uint(1), out.Top[0].CourtID)
		assert.Equal(t, uint(5), out.Bottom[2].CourtID)
	})

	t.Run("menos de 3 canchas no recorta", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter()

		analytics.On("CourtUsage", mock.Anything, f).Return([]CourtUsageRow{
			{CourtID: 1, ActiveSlots: 4, Occupied: 7},
		}, nil)

		uc := NewOccupancyByCourt(analytics)

		out, err := uc.Execute(context.Background(), f)

		assert.NoError(t, err)
		assert.Len(t, out.Top, 1)
		assert.Len(t, out.Bottom, 1)
	})
}

// ======================================================
// TOP CLIENTES
// ======================================================

func TestTopClients_Execute(t *testing.T) {
	t.Run("sin límite usa el default", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter()

		analytics.On("TopClients", mock.Anything, f, defaultTopClientsLimit).Return([]TopClientRow{
			{ClientID: 7, Name: "Juan", ReservationCount: 5, TotalSpend: 50000},
		}, nil)

		uc := NewTopClients(analytics)

		rows, err := uc.Execute(context.Background(), f, 0)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)

		analytics.AssertExpectations(t)
	})

	t.Run("respeta el límite pedido", func(t *testing.T) {
		analytics := new(MockAnalytics)
		f := weekFilter()

		analytics.On("TopClients", mock.Anything, f, 5).Return([]TopClientRow{}, nil)

		uc := NewTopClients(analytics)

		_, err := uc.Execute(context.Background(), f, 5)

		assert.NoError(t, err)
		analytics.AssertExpectations(t)
	})

	t.Run("rango inválido no consulta", func(t *testing.T) {
		uc := NewTopClients(new(MockAnalytics))

		rows, err := uc.Execute(context.Background(), Filter{}, 5)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRange))
		assert.Nil(t, rows)
	})
}
