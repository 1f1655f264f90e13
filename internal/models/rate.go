package models

import "time"

// Tarifa por hora para un deporte. Weekday -1 aplica a cualquier día;
// StartTime/EndTime vacíos aplican a todo el día (franja pico vs. valle).
type Rate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SportID uint  `gorm:"index" json:"sport_id"`
	Sport   Sport `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sport"`

	Weekday   int    `gorm:"default:-1" json:"weekday"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	PricePerHour float64 `gorm:"not null" json:"price_per_hour"`
	Active       bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
