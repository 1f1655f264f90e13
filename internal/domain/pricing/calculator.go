package pricing

import (
	"context"
	"math"
	"time"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

// Quote es el precio total del turno y la seña exigida para confirmarlo.
type Quote struct {
	Total           float64 `json:"total"`
	DepositRequired float64 `json:"deposit_required"`
}

// RateSource abstrae la tabla de tarifas.
type RateSource interface {
	ListRatesBySport(ctx context.Context, sportID uint) ([]models.Rate, error)
}

type Calculator struct {
	rates          RateSource
	depositPercent float64
}

func NewCalculator(rates RateSource, depositPercent float64) *Calculator {
	return &Calculator{
		rates:          rates,
		depositPercent: depositPercent,
	}
}

// Quote calcula tarifa × duración para el deporte de la cancha en la
// fecha dada. La tarifa más específica gana: día + franja horaria, luego
// día, luego franja, luego la genérica.
func (c *Calculator) Quote(
	ctx context.Context,
	sportID uint,
	date time.Time,
	startTime string,
	endTime string,
) (*Quote, error) {

	rates, err := c.rates.ListRatesBySport(ctx, sportID)
	if err != nil {
		return nil, err
	}

	rate := pickRate(rates, int(date.Weekday()), startTime)
	if rate == nil {
		return nil, httperr.ErrBusiness(httperr.CodeNoRateDefined)
	}

	hours := durationHours(startTime, endTime)
	if hours <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	total := RoundHalfUp(rate.PricePerHour * hours)
	deposit := c.DepositFor(total)

	return &Quote{
		Total:           total,
		DepositRequired: deposit,
	}, nil
}

// DepositFor aplica el porcentaje de seña configurado sobre un total.
func (c *Calculator) DepositFor(total float64) float64 {
	return RoundHalfUp(total * c.depositPercent / 100)
}

// pickRate elige la tarifa aplicable más específica. Empates se resuelven
// por menor id, para que el resultado sea determinístico.
func pickRate(rates []models.Rate, weekday int, startTime string) *models.Rate {
	var best *models.Rate
	bestScore := -1

	for i := range rates {
		r := &rates[i]
		if !r.Active {
			continue
		}
		if r.Weekday >= 0 && r.Weekday != weekday {
			continue
		}
		if r.StartTime != "" && r.EndTime != "" {
			if startTime < r.StartTime || startTime >= r.EndTime {
				continue
			}
		}

		score := 0
		if r.Weekday >= 0 {
			score += 2
		}
		if r.StartTime != "" && r.EndTime != "" {
			score++
		}

		if score > bestScore || (score == bestScore && best != nil && r.ID < best.ID) {
			best = r
			bestScore = score
		}
	}

	return best
}

// durationHours calcula la duración en horas entre dos "HH:MM".
func durationHours(startTime, endTime string) float64 {
	start, err1 := time.Parse("15:04", startTime)
	end, err2 := time.Parse("15:04", endTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	return end.Sub(start).Hours()
}

// RoundHalfUp redondea al peso entero más cercano, siempre hacia arriba
// en el empate (sin redondeo bancario, para que sea determinístico).
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
