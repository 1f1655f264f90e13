package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/httpresp"
	"github.com/TurneroApp/cancha-scheduler/internal/middleware"
	ucReservation "github.com/TurneroApp/cancha-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC      *ucReservation.CreateReservation
	confirmUC     *ucReservation.ConfirmReservation
	cancelUC      *ucReservation.CancelReservation
	finalizeUC    *ucReservation.FinalizeReservation
	getUC         *ucReservation.GetReservation
	listByDateUC  *ucReservation.ListByDate
	listByMonthUC *ucReservation.ListByMonth
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	confirmUC *ucReservation.ConfirmReservation,
	cancelUC *ucReservation.CancelReservation,
	finalizeUC *ucReservation.FinalizeReservation,
	getUC *ucReservation.GetReservation,
	listByDateUC *ucReservation.ListByDate,
	listByMonthUC *ucReservation.ListByMonth,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:      createUC,
		confirmUC:     confirmUC,
		cancelUC:      cancelUC,
		finalizeUC:    finalizeUC,
		getUC:         getUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	SlotID uint   `json:"slot_id" binding:"required"`
	Date   string `json:"date" binding:"required"`

	ClientID      uint   `json:"client_id"`
	ClientName    string `json:"client_name"`
	ClientSurname string `json:"client_surname"`
	ClientPhone   string `json:"client_phone"`
	ClientEmail   string `json:"client_email"`

	RequestedPrice float64 `json:"requested_price"`
	Notes          string  `json:"notes"`
}

type ConfirmReservationRequest struct {
	DepositPaid *float64 `json:"deposit_paid" binding:"required"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.ClientID == 0 && (req.ClientName == "" || req.ClientPhone == "") {
		httperr.BadRequest(c, "missing_client", "Falta el cliente o sus datos de contacto.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		VenueID:        venueID,
		SlotID:         req.SlotID,
		Date:           req.Date,
		ClientID:       req.ClientID,
		ClientName:     req.ClientName,
		ClientSurname:  req.ClientSurname,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		RequestedPrice: req.RequestedPrice,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// TRANSICIONES
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var req ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	res, err := h.confirmUC.Execute(
		c.Request.Context(),
		venueID,
		&userID,
		uint(reservationID),
		*req.DepositPaid,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var req CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	res, err := h.cancelUC.Execute(
		c.Request.Context(),
		venueID,
		&userID,
		uint(reservationID),
		req.Reason,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Finalize(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	res, err := h.finalizeUC.Execute(
		c.Request.Context(),
		venueID,
		&userID,
		uint(reservationID),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// AGENDA
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	res, err := h.getUC.Execute(c.Request.Context(), venueID, uint(reservationID))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), venueID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *ReservationHandler) ListByMonth(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Año o mes inválido.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), venueID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, out)
}
