package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/TurneroApp/cancha-scheduler/internal/domain/reservation"
	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/httpresp"
	"github.com/TurneroApp/cancha-scheduler/internal/middleware"
	ucReservation "github.com/TurneroApp/cancha-scheduler/internal/usecase/reservation"
)

type AvailabilityHandler struct {
	availabilityUC *ucReservation.GetAvailability
	listSlotsUC    *ucReservation.ListSlots
}

func NewAvailabilityHandler(
	availabilityUC *ucReservation.GetAvailability,
	listSlotsUC *ucReservation.ListSlots,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUC: availabilityUC,
		listSlotsUC:    listSlotsUC,
	}
}

func parseAvailabilityQuery(c *gin.Context, venueID uint) (domain.AvailabilityInput, bool) {
	from, err1 := time.Parse("2006-01-02", c.Query("from"))
	to, err2 := time.Parse("2006-01-02", c.Query("to"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRange, "Fechas inválidas (formato YYYY-MM-DD).")
		return domain.AvailabilityInput{}, false
	}

	var sportID uint
	if sportStr := c.Query("sport_id"); sportStr != "" {
		n, err := strconv.Atoi(sportStr)
		if err != nil || n < 0 {
			httperr.BadRequest(c, "invalid_sport", "Deporte inválido.")
			return domain.AvailabilityInput{}, false
		}
		sportID = uint(n)
	}

	return domain.AvailabilityInput{
		VenueID: venueID,
		SportID: sportID,
		From:    from,
		To:      to,
	}, true
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	in, ok := parseAvailabilityQuery(c, venueID)
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

func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	venueID := c.MustGet(middleware.ContextVenueID).(uint)

	var sportID uint
	if sportStr := c.Query("sport_id"); sportStr != "" {
		if n, err := strconv.Atoi(sportStr); err == nil && n > 0 {
			sportID = uint(n)
		}
	}

	slots, err := h.listSlotsUC.Execute(c.Request.Context(), venueID, sportID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, slots)
}
