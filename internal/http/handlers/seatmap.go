package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/http/middleware"
)

// GET /api/excursions/:id/seatmap
func (h *Handler) InteractiveSeatMap(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	m, err := h.seatMapService(c).Interactive(c.Request.Context(), middleware.GetAssociationID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// GET /api/excursions/:id/seatmap/print
func (h *Handler) PrintSeatMap(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	m, err := h.seatMapService(c).Print(c.Request.Context(), middleware.GetAssociationID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// GET /api/excursions/:id/seatmap/print.pdf
func (h *Handler) PrintSeatMapPDF(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	data, filename, err := h.seatMapService(c).PrintPDF(c.Request.Context(), middleware.GetAssociationID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, data)
}
