package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/domain/models"
	"busexcursion/internal/http/middleware"
	"busexcursion/internal/services"
)

func (h *Handler) associationService(c *gin.Context) services.AssociationService {
	return services.AssociationService{Associations: h.associations(), RequestID: middleware.GetRequestID(c)}
}

// GET /api/association
func (h *Handler) GetAssociation(c *gin.Context) {
	a, err := h.associationService(c).GetProfile(c.Request.Context(), middleware.GetAssociationID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// PUT /api/association
func (h *Handler) UpdateAssociation(c *gin.Context) {
	var req models.AssociationProfileInput
	if !BindJSONOrError(c, &req) {
		return
	}
	a, err := h.associationService(c).UpdateProfile(c.Request.Context(), middleware.GetAssociationID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
