package report

import (
	"context"
	"math"
	"sort"
)

type CourtOccupancy struct {
	CourtID          uint    `json:"court_id"`
	CourtNumber      int     `json:"court_number"`
	VenueID          uint    `json:"venue_id"`
	VenueName        string  `json:"venue_name"`
	SlotsAvailable   int64   `json:"slots_available"`
	SlotsOccupied    int64   `json:"slots_occupied"`
	OccupancyPercent float64 `json:"occupancy_percent"`
}

// OccupancyReport lista todas las canchas y resume las 3 más y menos
// ocupadas del rango.
type OccupancyReport struct {
	Courts []CourtOccupancy `json:"courts"`
	Top    []CourtOccupancy `json:"top"`
	Bottom []CourtOccupancy `json:"bottom"`
}

type OccupancyByCourt struct {
	analytics Analytics
}

func NewOccupancyByCourt(analytics Analytics) *OccupancyByCourt {
	return &OccupancyByCourt{analytics: analytics}
}

func (uc *OccupancyByCourt) Execute(
	ctx context.Context,
	f Filter,
) (*OccupancyReport, error) {

	if err := validateFilter(f); err != nil {
		return nil, err
	}

	rows, err := uc.analytics.CourtUsage(ctx, f)
	if err != nil {
		return nil, err
	}

	days := int64(f.To.Sub(f.From).Hours()/24) + 1

	courts := make([]CourtOccupancy, 0, len(rows))
	for _, row := range rows {
		available := row.ActiveSlots * days

		courts = append(courts, CourtOccupancy{
			CourtID:          row.CourtID,
			CourtNumber:      row.CourtNumber,
			VenueID:          row.VenueID,
			VenueName:        row.VenueName,
			SlotsAvailable:   available,
			SlotsOccupied:    row.Occupied,
			OccupancyPercent: occupancyPercent(row.Occupied, available),
		})
	}

	sort.SliceStable(courts, func(i, j int) bool {
		if courts[i].OccupancyPercent != courts[j].OccupancyPercent {
			return courts[i].OccupancyPercent > courts[j].OccupancyPercent
		}
		return courts[i].CourtID < courts[j].CourtID
	})

	return &OccupancyReport{
		Courts: courts,
		Top:    head(courts, 3),
		Bottom: tail(courts, 3),
	}, nil
}

// occupancyPercent nunca divide por cero: sin turnos disponibles la
// ocupación es 0, no un error.
func occupancyPercent(occupied, available int64) float64 {
	if available == 0 {
		return 0
	}
	pct := float64(occupied) / float64(available) * 100
	return math.Floor(pct*100+0.5) / 100
}

func head(courts []CourtOccupancy, n int) []CourtOccupancy {
	if len(courts) < n {
		n = len(courts)
	}
	out := make([]CourtOccupancy, n)
	copy(out, courts[:n])
	return out
}

func tail(courts []CourtOccupancy, n int) []CourtOccupancy {
	if len(courts) < n {
		n = len(courts)
	}
	out := make([]CourtOccupancy, n)
	copy(out, courts[len(courts)-n:])
	return out
}
