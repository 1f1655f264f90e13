package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/middleware"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

// ======================================================
// Tarifas por deporte
// ======================================================

type RateHandler struct {
	db *gorm.DB
}

func NewRateHandler(db *gorm.DB) *RateHandler {
	return &RateHandler{db: db}
}

type CreateRateRequest struct {
	SportID      uint    `json:"sport_id" binding:"required"`
	Weekday      *int    `json:"weekday"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	PricePerHour float64 `json:"price_per_hour" binding:"required"`
}

type UpdateRateRequest struct {
	PricePerHour *float64 `json:"price_per_hour"`
	Active       *bool    `json:"active"`
}

func (h *RateHandler) List(c *gin.Context) {
	q := h.db.Preload("Sport")

	if sportStr := c.Query("sport_id"); sportStr != "" {
		if sportID, err := strconv.Atoi(sportStr); err == nil {
			q = q.Where("sport_id = ?", sportID)
		}
	}

	var rates []models.Rate
	if err := q.Order("sport_id ASC, id ASC").Find(&rates).Error; err != nil {
		httperr.Internal(c, "rates_list_failed", "Error al listar tarifas.")
		return
	}

	c.JSON(http.StatusOK, rates)
}

func (h *RateHandler) Create(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.PricePerHour <= 0 {
		httperr.BadRequest(c, "invalid_price", "La tarifa debe ser positiva.")
		return
	}

	if (req.StartTime == "") != (req.EndTime == "") {
		httperr.BadRequest(c, "invalid_time_range", "La franja horaria debe tener inicio y fin.")
		return
	}
	if req.StartTime != "" {
		if !validHHMM(req.StartTime) || !validHHMM(req.EndTime) || req.StartTime >= req.EndTime {
			httperr.BadRequest(c, "invalid_time_range", "Franja horaria inválida.")
			return
		}
	}

	weekday := -1
	if req.Weekday != nil {
		if *req.Weekday < 0 || *req.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Día de semana inválido.")
			return
		}
		weekday = *req.Weekday
	}

	var sport models.Sport
	if err := h.db.First(&sport, req.SportID).Error; err != nil {
		httperr.BadRequest(c, "sport_not_found", "Deporte no encontrado.")
		return
	}

	rate := models.Rate{
		SportID:      req.SportID,
		Weekday:      weekday,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PricePerHour: req.PricePerHour,
		Active:       true,
	}

	if err := h.db.Create(&rate).Error; err != nil {
		httperr.Internal(c, "rate_create_failed", "No se pudo crear la tarifa.")
		return
	}

	writeAudit(h.db, venueID, &userID, "rate_created", "rate", &rate.ID, nil)

	c.JSON(http.StatusCreated, rate)
}

func (h *RateHandler) Update(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var rate models.Rate
	if err := h.db.First(&rate, rateID).Error; err != nil {
		httperr.NotFound(c, "rate_not_found", "Tarifa no encontrada.")
		return
	}

	var req UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			httperr.BadRequest(c, "invalid_price", "La tarifa debe ser positiva.")
			return
		}
		rate.PricePerHour = *req.PricePerHour
	}
	if req.Active != nil {
		rate.Active = *req.Active
	}

	if err := h.db.Save(&rate).Error; err != nil {
		httperr.Internal(c, "rate_update_failed", "No se pudo actualizar la tarifa.")
		return
	}

	writeAudit(h.db, venueID, &userID, "rate_updated", "rate", &rate.ID, nil)

	c.JSON(http.StatusOK, rate)
}
