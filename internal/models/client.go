package models

import "time"

// Cliente sin login, vinculado a la sede.
type Client struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index" json:"venue_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100" json:"surname"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
