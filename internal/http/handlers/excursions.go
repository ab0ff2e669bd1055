package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/domain/models"
	"busexcursion/internal/http/middleware"
)

// GET /api/excursions
func (h *Handler) ListExcursions(c *gin.Context) {
	list, err := h.excursionService(c).List(c.Request.Context(), middleware.GetAssociationID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/excursions/:id
func (h *Handler) GetExcursion(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	e, err := h.excursionService(c).Get(c.Request.Context(), middleware.GetAssociationID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/excursions
func (h *Handler) CreateExcursion(c *gin.Context) {
	var req models.ExcursionInput
	if !BindJSONOrError(c, &req) {
		return
	}
	e, err := h.excursionService(c).Create(c.Request.Context(), middleware.GetAssociationID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// PUT /api/excursions/:id
func (h *Handler) UpdateExcursion(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var req models.ExcursionInput
	if !BindJSONOrError(c, &req) {
		return
	}
	e, err := h.excursionService(c).Update(c.Request.Context(), middleware.GetAssociationID(c), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /api/excursions/:id
func (h *Handler) DeleteExcursion(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := h.excursionService(c).Delete(c.Request.Context(), middleware.GetAssociationID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ekskursi dihapus"})
}
