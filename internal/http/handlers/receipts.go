package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/http/middleware"
)

// GET /api/excursions/:id/receipts
func (h *Handler) PassengerReceipts(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	f, err := h.receiptService(c).PassengerReceipts(c.Request.Context(), middleware.GetAssociationID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("X-Receipt-Count", strconv.Itoa(f.Summary.Receipts))
	sendPDF(c, f.Filename, f.Data)
}

// GET /api/receipts/blank
func (h *Handler) BlankReceipts(c *gin.Context) {
	f, err := h.receiptService(c).BlankReceipts(c.Request.Context(), middleware.GetAssociationID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("X-Receipt-Count", strconv.Itoa(f.Summary.Receipts))
	c.Header("X-Receipt-Next-Sequence", strconv.Itoa(f.Summary.NextSequence))
	sendPDF(c, f.Filename, f.Data)
}
