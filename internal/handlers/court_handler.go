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
// Canchas y deportes (catálogo administrativo)
// ======================================================

type CourtHandler struct {
	db *gorm.DB
}

func NewCourtHandler(db *gorm.DB) *CourtHandler {
	return &CourtHandler{db: db}
}

type CreateCourtRequest struct {
	SportID uint   `json:"sport_id" binding:"required"`
	Number  int    `json:"number" binding:"required"`
	Notes   string `json:"notes"`
}

type UpdateCourtRequest struct {
	Number *int    `json:"number"`
	Notes  *string `json:"notes"`
	Active *bool   `json:"active"`
}

func (h *CourtHandler) ListSports(c *gin.Context) {
	var sports []models.Sport
	if err := h.db.Where("active = ?", true).Order("name ASC").Find(&sports).Error; err != nil {
		httperr.Internal(c, "sports_list_failed", "Error al listar deportes.")
		return
	}
	c.JSON(http.StatusOK, sports)
}

func (h *CourtHandler) CreateSport(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	sport := models.Sport{Name: req.Name, Active: true}
	if err := h.db.Create(&sport).Error; err != nil {
		httperr.Internal(c, "sport_create_failed", "No se pudo crear el deporte.")
		return
	}

	writeAudit(h.db, venueID, &userID, "sport_created", "sport", &sport.ID, nil)

	c.JSON(http.StatusCreated, sport)
}

func (h *CourtHandler) List(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	q := h.db.Preload("Sport").Where("venue_id = ?", venueID)

	if sportStr := c.Query("sport_id"); sportStr != "" {
		if sportID, err := strconv.Atoi(sportStr); err == nil {
			q = q.Where("sport_id = ?", sportID)
		}
	}

	var courts []models.Court
	if err := q.Order("number ASC").Find(&courts).Error; err != nil {
		httperr.Internal(c, "courts_list_failed", "Error al listar canchas.")
		return
	}

	c.JSON(http.StatusOK, courts)
}

func (h *CourtHandler) Create(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var sport models.Sport
	if err := h.db.First(&sport, req.SportID).Error; err != nil {
		httperr.BadRequest(c, "sport_not_found", "Deporte no encontrado.")
		return
	}

	court := models.Court{
		VenueID: venueID,
		SportID: req.SportID,
		Number:  req.Number,
		Notes:   req.Notes,
		Active:  true,
	}

	if err := h.db.Create(&court).Error; err != nil {
		httperr.Internal(c, "court_create_failed", "No se pudo crear la cancha.")
		return
	}

	writeAudit(h.db, venueID, &userID, "court_created", "court", &court.ID, nil)

	c.JSON(http.StatusCreated, court)
}

func (h *CourtHandler) Update(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	courtID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var court models.Court
	if err := h.db.
		Where("id = ? AND venue_id = ?", courtID, venueID).
		First(&court).Error; err != nil {
		httperr.NotFound(c, "court_not_found", "Cancha no encontrada.")
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Number != nil {
		court.Number = *req.Number
	}
	if req.Notes != nil {
		court.Notes = *req.Notes
	}
	if req.Active != nil {
		court.Active = *req.Active
	}

	if err := h.db.Save(&court).Error; err != nil {
		httperr.Internal(c, "court_update_failed", "No se pudo actualizar la cancha.")
		return
	}

	writeAudit(h.db, venueID, &userID, "court_updated", "court", &court.ID, nil)

	c.JSON(http.StatusOK, court)
}
