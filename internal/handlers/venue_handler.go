package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/middleware"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
	"github.com/TurneroApp/cancha-scheduler/internal/timezone"
)

type VenueHandler struct {
	db *gorm.DB
}

func NewVenueHandler(db *gorm.DB) *VenueHandler {
	return &VenueHandler{db: db}
}

type UpdateVenueRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
	Active   *bool   `json:"active"`
}

func (h *VenueHandler) GetMeVenue(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var venue models.Venue
	if err := h.db.First(&venue, venueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "venue_not_found", "Sede no encontrada.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) UpdateMeVenue(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var venue models.Venue
	if err := h.db.First(&venue, venueID).Error; err != nil {
		httperr.NotFound(c, "venue_not_found", "Sede no encontrada.")
		return
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Huso horario inválido.")
			return
		}
		venue.Timezone = *req.Timezone
	}
	if req.Active != nil {
		venue.Active = *req.Active
	}

	if err := h.db.Save(&venue).Error; err != nil {
		httperr.Internal(c, "venue_update_failed", "No se pudo actualizar la sede.")
		return
	}

	c.JSON(http.StatusOK, venue)
}
