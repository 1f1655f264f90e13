package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TurneroApp/cancha-scheduler/internal/httperr"
	"github.com/TurneroApp/cancha-scheduler/internal/httpresp"
	ucReport "github.com/TurneroApp/cancha-scheduler/internal/usecase/report"
)

// ======================================================
// REPORTES (lectura, consumidos por el tablero)
// ======================================================

type ReportHandler struct {
	revenueByPeriodUC *ucReport.RevenueByPeriod
	revenueBySportUC  *ucReport.RevenueBySport
	revenueByVenueUC  *ucReport.RevenueByVenue
	occupancyUC       *ucReport.OccupancyByCourt
	topClientsUC      *ucReport.TopClients
}

func NewReportHandler(
	revenueByPeriodUC *ucReport.RevenueByPeriod,
	revenueBySportUC *ucReport.RevenueBySport,
	revenueByVenueUC *ucReport.RevenueByVenue,
	occupancyUC *ucReport.OccupancyByCourt,
	topClientsUC *ucReport.TopClients,
) *ReportHandler {
	return &ReportHandler{
		revenueByPeriodUC: revenueByPeriodUC,
		revenueBySportUC:  revenueBySportUC,
		revenueByVenueUC:  revenueByVenueUC,
		occupancyUC:       occupancyUC,
		topClientsUC:      topClientsUC,
	}
}

// parseReportFilter arma el filtro desde la query: rango obligatorio,
// sede y deporte opcionales (0 = todos).
func parseReportFilter(c *gin.Context) (ucReport.Filter, bool) {
	from, err1 := time.Parse("2006-01-02", c.Query("from"))
	to, err2 := time.Parse("2006-01-02", c.Query("to"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRange, "Fechas inválidas (formato YYYY-MM-DD).")
		return ucReport.Filter{}, false
	}

	f := ucReport.Filter{From: from, To: to}

	if venueStr := c.Query("venue_id"); venueStr != "" {
		if n, err := strconv.Atoi(venueStr); err == nil && n > 0 {
			f.VenueID = uint(n)
		}
	}
	if sportStr := c.Query("sport_id"); sportStr != "" {
		if n, err := strconv.Atoi(sportStr); err == nil && n > 0 {
			f.SportID = uint(n)
		}
	}

	return f, true
}

func (h *ReportHandler) RevenueByPeriod(c *gin.Context) {
	f, ok := parseReportFilter(c)
	if !ok {
		return
	}

	granularity := c.DefaultQuery("granularity", ucReport.GranularityDay)

	rows, err := h.revenueByPeriodUC.Execute(c.Request.Context(), f, granularity)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) RevenueBySport(c *gin.Context) {
	f, ok := parseReportFilter(c)
	if !ok {
		return
	}

	rows, err := h.revenueBySportUC.Execute(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) RevenueByVenue(c *gin.Context) {
	f, ok := parseReportFilter(c)
	if !ok {
		return
	}

	rows, err := h.revenueByVenueUC.Execute(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) OccupancyByCourt(c *gin.Context) {
	f, ok := parseReportFilter(c)
	if !ok {
		return
	}

	out, err := h.occupancyUC.Execute(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *ReportHandler) TopClients(c *gin.Context) {
	f, ok := parseReportFilter(c)
	if !ok {
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil {
			limit = n
		}
	}

	rows, err := h.topClientsUC.Execute(c.Request.Context(), f, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, rows)
}
