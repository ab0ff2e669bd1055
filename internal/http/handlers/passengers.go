package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/domain/models"
	"busexcursion/internal/http/middleware"
)

// GET /api/excursions/:id/passengers
func (h *Handler) ListPassengers(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	list, err := h.passengerService(c).List(c.Request.Context(), middleware.GetAssociationID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /api/excursions/:id/seats/:seat
func (h *Handler) AssignSeat(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	seat, ok := paramInt(c, "seat")
	if !ok {
		return
	}
	var req models.PassengerInput
	if !BindJSONOrError(c, &req) {
		return
	}
	p, err := h.passengerService(c).AssignSeat(c.Request.Context(), middleware.GetAssociationID(c), id, seat, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/excursions/:id/seats/:seat
func (h *Handler) ClearSeat(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	seat, ok := paramInt(c, "seat")
	if !ok {
		return
	}
	if err := h.passengerService(c).ClearSeat(c.Request.Context(), middleware.GetAssociationID(c), id, seat); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kursi dikosongkan", "seat": seat})
}

// DELETE /api/excursions/:id/passengers
func (h *Handler) ClearPassengers(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	n, err := h.passengerService(c).ClearAll(c.Request.Context(), middleware.GetAssociationID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "semua kursi dikosongkan", "freed": n})
}
