package models

import "time"

// Turno: intervalo horario reservable de una cancha. No lleva fecha;
// se instancia contra una fecha concreta al momento de reservar.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CourtID uint  `gorm:"index" json:"court_id"`
	Court   Court `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"court"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // "HH:MM"
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // "HH:MM"
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
