package dto

type ReservationListDTO struct {
	ID          uint    `json:"id"`
	Code        string  `json:"code"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	CourtNumber int     `json:"court_number"`
	Status      string  `json:"status"`
	ClientName  string  `json:"client_name"`
	TotalPrice  float64 `json:"total_price"`
	DepositPaid float64 `json:"deposit_paid"`
}
