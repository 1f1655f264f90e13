package models

import "time"

// Reserva de un turno para una fecha concreta. Nunca se borra
// físicamente: la cancelación es un estado, para no romper los reportes
// históricos.
type Reservation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	SlotID uint `gorm:"index" json:"slot_id"`
	Slot   Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"slot"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Fecha calendario para la que se reserva el turno.
	ReservationDate time.Time `gorm:"type:date;index" json:"reservation_date"`

	Status string `gorm:"size:20;default:'pendiente'" json:"status"`

	TotalPrice      float64 `json:"total_price"`
	DepositRequired float64 `json:"deposit_required"`
	DepositPaid     float64 `json:"deposit_paid"`

	Notes        string `gorm:"size:255" json:"notes"`
	CancelReason string `gorm:"size:255" json:"cancel_reason"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	FinalizedAt *time.Time `json:"finalized_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
