package report

import (
	"context"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
)

// Granularidades de agrupamiento temporal.
const (
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"
)

func validateFilter(f Filter) error {
	if f.From.IsZero() || f.To.IsZero() || f.From.After(f.To) {
		return httperr.ErrBusiness(httperr.CodeInvalidRange)
	}
	return nil
}

// ======================================================
// Facturación por período
// ======================================================

type RevenueByPeriod struct {
	analytics Analytics
}

func NewRevenueByPeriod(analytics Analytics) *RevenueByPeriod {
	return &RevenueByPeriod{analytics: analytics}
}

// Execute agrupa reservas confirmadas/finalizadas por día, semana o mes,
// ordenadas ascendentes por período.
func (uc *RevenueByPeriod) Execute(
	ctx context.Context,
	f Filter,
	granularity string,
) ([]PeriodRevenueRow, error) {

	if err := validateFilter(f); err != nil {
		return nil, err
	}

	switch granularity {
	case GranularityDay, GranularityWeek, GranularityMonth:
	default:
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	return uc.analytics.RevenueByPeriod(ctx, f, granularity)
}

// ======================================================
// Facturación por deporte / sede
// ======================================================

type RevenueBySport struct {
	analytics Analytics
}

func NewRevenueBySport(analytics Analytics) *RevenueBySport {
	return &RevenueBySport{analytics: analytics}
}

func (uc *RevenueBySport) Execute(ctx context.Context, f Filter) ([]GroupRevenueRow, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	return uc.analytics.RevenueBySport(ctx, f)
}

type RevenueByVenue struct {
	analytics Analytics
}

func NewRevenueByVenue(analytics Analytics) *RevenueByVenue {
	return &RevenueByVenue{analytics: analytics}
}

func (uc *RevenueByVenue) Execute(ctx context.Context, f Filter) ([]GroupRevenueRow, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	return uc.analytics.RevenueByVenue(ctx, f)
}
