package reservation

import "time"

type AvailabilityInput struct {
	VenueID uint
	SportID uint // 0 = todos los deportes
	From    time.Time
	To      time.Time
}

const (
	AvailabilityFree     = "free"
	AvailabilityOccupied = "occupied"
)

// SlotAvailability es el estado de un turno para una fecha puntual.
// Cuando está ocupado, ReservationStatus distingue la retención blanda
// (pendiente) de la reserva señada (confirmada).
type SlotAvailability struct {
	SlotID      uint   `json:"slot_id"`
	CourtID     uint   `json:"court_id"`
	CourtNumber int    `json:"court_number"`
	SportID     uint   `json:"sport_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`

	Status            string `json:"status"`
	ReservationStatus string `json:"reservation_status,omitempty"`
}
