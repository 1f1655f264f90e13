package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/middleware"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

// ======================================================
// Turnos (catálogo administrativo)
// ======================================================

type SlotHandler struct {
	db *gorm.DB
}

func NewSlotHandler(db *gorm.DB) *SlotHandler {
	return &SlotHandler{db: db}
}

type CreateSlotRequest struct {
	CourtID   uint   `json:"court_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateSlotRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Active    *bool   `json:"active"`
}

func validHHMM(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func (h *SlotHandler) List(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	q := h.db.
		Joins("Court").
		Where(`"Court".venue_id = ?`, venueID)

	if courtStr := c.Query("court_id"); courtStr != "" {
		if courtID, err := strconv.Atoi(courtStr); err == nil {
			q = q.Where("slots.court_id = ?", courtID)
		}
	}

	var slots []models.Slot
	if err := q.
		Order(`"Court".number ASC, slots.start_time ASC`).
		Find(&slots).Error; err != nil {
		httperr.Internal(c, "slots_list_failed", "Error al listar turnos.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *SlotHandler) Create(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validHHMM(req.StartTime) || !validHHMM(req.EndTime) || req.StartTime >= req.EndTime {
		httperr.BadRequest(c, "invalid_time_range", "Horario inválido.")
		return
	}

	var court models.Court
	if err := h.db.
		Where("id = ? AND venue_id = ?", req.CourtID, venueID).
		First(&court).Error; err != nil {
		httperr.BadRequest(c, "court_not_found", "Cancha no encontrada.")
		return
	}

	// Dos turnos de la misma cancha no pueden solaparse.
	var overlapping int64
	h.db.Model(&models.Slot{}).
		Where(
			"court_id = ? AND active = ? AND start_time < ? AND end_time > ?",
			req.CourtID, true, req.EndTime, req.StartTime,
		).
		Count(&overlapping)
	if overlapping > 0 {
		httperr.Conflict(c, "slot_overlap", "Ya existe un turno en ese horario.")
		return
	}

	slot := models.Slot{
		CourtID:   req.CourtID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Active:    true,
	}

	if err := h.db.Create(&slot).Error; err != nil {
		httperr.Internal(c, "slot_create_failed", "No se pudo crear el turno.")
		return
	}

	writeAudit(h.db, venueID, &userID, "slot_created", "slot", &slot.ID, nil)

	c.JSON(http.StatusCreated, slot)
}

func (h *SlotHandler) Update(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	slotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var slot models.Slot
	if err := h.db.
		Joins("Court").
		Where(`slots.id = ? AND "Court".venue_id = ?`, slotID, venueID).
		First(&slot).Error; err != nil {
		httperr.NotFound(c, "slot_not_found", "Turno no encontrado.")
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.StartTime != nil {
		if !validHHMM(*req.StartTime) {
			httperr.BadRequest(c, "invalid_time_range", "Horario inválido.")
			return
		}
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !validHHMM(*req.EndTime) {
			httperr.BadRequest(c, "invalid_time_range", "Horario inválido.")
			return
		}
		slot.EndTime = *req.EndTime
	}
	if slot.StartTime >= slot.EndTime {
		httperr.BadRequest(c, "invalid_time_range", "Horario inválido.")
		return
	}
	if req.Active != nil {
		slot.Active = *req.Active
	}

	if err := h.db.Save(&slot).Error; err != nil {
		httperr.Internal(c, "slot_update_failed", "No se pudo actualizar el turno.")
		return
	}

	writeAudit(h.db, venueID, &userID, "slot_updated", "slot", &slot.ID, nil)

	c.JSON(http.StatusOK, slot)
}
