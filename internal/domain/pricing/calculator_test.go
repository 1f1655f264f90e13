package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

// MockRateSource is a mock implementation of RateSource
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) ListRatesBySport(ctx context.Context, sportID uint) ([]models.Rate, error) {
	args := m.Called(ctx, sportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rate), args.Error(1)
}

// Martes 2025-06-10 (weekday 2).
var tuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func TestCalculator_Quote(t *testing.T) {
	tests := []struct {
		name        string
		rates       []models.Rate
		startTime   string
		endTime     string
		wantTotal   float64
		wantDeposit float64
		wantCode    string
	}{
		{
			name: "tarifa genérica por una hora",
			rates: []models.Rate{
				{ID: 1, SportID: 1, Weekday: -1, PricePerHour: 10000, Active: true},
			},
			startTime:   "18:00",
			endTime:     "19:00",
			wantTotal:   10000,
			wantDeposit: 3000,
		},
		{
			name: "turno de hora y media",
			rates: []models.Rate{
				{ID: 1, SportID: 1, Weekday: -1, PricePerHour: 10000, Active: true},
			},
			startTime:   "18:00",
			endTime:     "19:30",
			wantTotal:   15000,
			wantDeposit: 4500,
		},
		{
			name: "día + franja le gana a la genérica",
			rates: []models.Rate{
				{ID: 1, SportID: 1, Weekday: -1, PricePerHour: 10000, Active: true},
				{ID: 2, SportID: 1, Weekday: 2, StartTime: "18:00", EndTime: "22:00", PricePerHour: 14000, Active: true},
			},
			startTime:   "19:00",
			endTime:     "20:00",
			wantTotal:   14000,
			wantDeposit: 4200,
		},
		{
			name: "día solo le gana a franja sola",
			rates: []models.Rate{
				{ID: 1, SportID: 1, Weekday: -1, StartTime: "18:00", EndTime: "22:00", PricePerHour: 12000, Active: true},
				{ID: 2, SportID: 1, Weekday: 2, PricePerHour: 13000, Active: true},
			},
			startTime:   "19:00",
			endTime:     "20:00",
			wantTotal:   13000,
			wantDeposit: 3900,
		},
		{
			name: "fuera de la franja cae en la genérica",
			rates: []models.Rate{
				{ID: 1, SportID: 1, Weekday: -1, PricePerHour: 10000, Active: true},
				{ID: 2, SportID: 1, Weekday: -1, StartTime: "18:00", EndTime: "22:00", PricePerHour: 14000, Active: true},
			},
			startTime:   "10:00",
			endTime:     "11:00",
			wantTotal:   10000,
			wantDeposit: 3000,
		},
		{
			name: "tarifa inactiva no participa",
			rates: []models.Rate{
				{ID: 1, SportID: 1, Weekday: 2, PricePerHour: 14000, Active: false},
				{ID: 2, SportID: 1, Weekday: -1, PricePerHour: 10000, Active: true},
			},
			startTime:   "18:00",
			endTime:     "19:00",
			wantTotal:   10000,
			wantDeposit: 3000,
		},
		{
			name: "otro día de semana no aplica",
			rates: []models.Rate{
				{ID: 1, SportID: 1, Weekday: 6, PricePerHour: 20000, Active: true},
			},
			startTime: "18:00",
			endTime:   "19:00",
			wantCode:  httperr.CodeNoRateDefined,
		},
		{
			name:      "sin tarifas no hay precio",
			rates:     []models.Rate{},
			startTime: "18:00",
			endTime:   "19:00",
			wantCode:  httperr.CodeNoRateDefined,
		},
		{
			name: "redondeo mitad hacia arriba",
			rates: []models.Rate{
				{ID: 1, SportID: 1, Weekday: -1, PricePerHour: 3333, Active: true},
			},
			startTime:   "18:00",
			endTime:     "19:30",
			wantTotal:   5000, // 3333 * 1.5 = 4999.5
			wantDeposit: 1500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := new(MockRateSource)
			rates.On("ListRatesBySport", mock.Anything, uint(1)).Return(tt.rates, nil)

			calc := NewCalculator(rates, 30)
			quote, err := calc.Quote(context.Background(), 1, tuesday, tt.startTime, tt.endTime)

			if tt.wantCode != "" {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode))
				assert.Nil(t, quote)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, quote.Total)
				assert.Equal(t, tt.wantDeposit, quote.DepositRequired)
			}

			rates.AssertExpectations(t)
		})
	}
}

func TestCalculator_Quote_InvalidDuration(t *testing.T) {
	rates := new(MockRateSource)
	rates.On("ListRatesBySport", mock.Anything, uint(1)).Return([]models.Rate{
		{ID: 1, SportID: 1, Weekday: -1, PricePerHour: 10000, Active: true},
	}, nil)

	calc := NewCalculator(rates, 30)

	quote, err := calc.Quote(context.Background(), 1, tuesday, "19:00", "18:00")

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRange))
	assert.Nil(t, quote)
}

func TestCalculator_PickRate_TieBreakByID(t *testing.T) {
	rates := new(MockRateSource)
	rates.On("ListRatesBySport", mock.Anything, uint(1)).Return([]models.Rate{
		{ID: 7, SportID: 1, Weekday: 2, PricePerHour: 15000, Active: true},
		{ID: 3, SportID: 1, Weekday: 2, PricePerHour: 12000, Active: true},
	}, nil)

	calc := NewCalculator(rates, 30)

	quote, err := calc.Quote(context.Background(), 1, tuesday, "18:00", "19:00")

	assert.NoError(t, err)
	assert.Equal(t, 12000.0, quote.Total)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 5000.0, RoundHalfUp(4999.5))
	assert.Equal(t, 4999.0, RoundHalfUp(4999.4))
	assert.Equal(t, 5000.0, RoundHalfUp(5000.0))
}

func TestCalculator_DepositFor(t *testing.T) {
	calc := NewCalculator(nil, 30)

	assert.Equal(t, 3000.0, calc.DepositFor(10000))
	assert.Equal(t, 2500.0, calc.DepositFor(8333)) // 2499.9 redondea a 2500
	assert.Equal(t, 0.0, calc.DepositFor(0))
}
