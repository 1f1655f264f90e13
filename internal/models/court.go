package models

import "time"

// Cancha: pertenece a una sede y a un deporte.
type Court struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID uint  `gorm:"index" json:"venue_id"`
	Venue   Venue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"venue"`

	SportID uint  `gorm:"index" json:"sport_id"`
	Sport   Sport `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sport"`

	Number int    `gorm:"not null" json:"number"`
	Notes  string `gorm:"size:255" json:"notes"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
