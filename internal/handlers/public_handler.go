package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/httpresp"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
	ucReservation "github.com/TurneroApp/cancha-scheduler/internal/usecase/reservation"
)

// ======================================================
// API pública: disponibilidad y reservas por slug de sede,
// sin autenticación. La crea el cliente final.
// ======================================================

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucReservation.GetAvailability
	createUC       *ucReservation.CreateReservation
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucReservation.GetAvailability,
	createUC *ucReservation.CreateReservation,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

func (h *PublicHandler) venueBySlug(c *gin.Context) (*models.Venue, bool) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	var venue models.Venue
	if err := h.db.
		Where("slug = ? AND active = ?", slug, true).
		First(&venue).Error; err != nil {
		httperr.NotFound(c, "venue_not_found", "Sede no encontrada.")
		return nil, false
	}

	return &venue, true
}

func (h *PublicHandler) Availability(c *gin.Context) {
	venue, ok := h.venueBySlug(c)
	if !ok {
		return
	}

	in, ok := parseAvailabilityQuery(c, venue.ID)
	if !ok {
		return
	}

	out, err := h.availabilityUC.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, out)
}

type PublicReservationRequest struct {
	SlotID uint   `json:"slot_id" binding:"required"`
	Date   string `json:"date" binding:"required"`

	ClientName    string `json:"client_name" binding:"required"`
	ClientSurname string `json:"client_surname"`
	ClientPhone   string `json:"client_phone" binding:"required"`
	ClientEmail   string `json:"client_email"`

	Notes string `json:"notes"`
}

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	venue, ok := h.venueBySlug(c)
	if !ok {
		return
	}

	var req PublicReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		VenueID:       venue.ID,
		SlotID:        req.SlotID,
		Date:          req.Date,
		ClientName:    req.ClientName,
		ClientSurname: req.ClientSurname,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// El cliente final solo necesita el código y el estado: el detalle
	// interno (precios de tabla, ids) queda para el panel del operador.
	c.JSON(http.StatusCreated, gin.H{
		"code":             res.Code,
		"date":             res.ReservationDate.Format("2006-01-02"),
		"status":           res.Status,
		"total_price":      res.TotalPrice,
		"deposit_required": res.DepositRequired,
	})
}

func (h *PublicHandler) GetReservationByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	var res models.Reservation
	if err := h.db.
		Preload("Slot").
		Preload("Slot.Court").
		Where("code = ?", code).
		First(&res).Error; err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reserva no encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":             res.Code,
		"date":             res.ReservationDate.Format("2006-01-02"),
		"start_time":       res.Slot.StartTime,
		"end_time":         res.Slot.EndTime,
		"court_number":     res.Slot.Court.Number,
		"status":           res.Status,
		"total_price":      res.TotalPrice,
		"deposit_required": res.DepositRequired,
		"deposit_paid":     res.DepositPaid,
		"cancelled":        res.Status == string(domain.StatusCancelled),
	})
}
