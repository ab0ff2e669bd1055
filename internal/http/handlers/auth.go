package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/services"
)

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	sess, err := h.authService(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req services.LoginInput
	if !BindJSONOrError(c, &req) {
		return
	}
	sess, err := h.authService(c).Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}
