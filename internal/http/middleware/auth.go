package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/utils"
)

const associationIDKey = "association_id"

// TokenParser verifies a bearer token and returns the association it belongs to.
type TokenParser func(token string) (int64, error)

// RequireAssociation rejects requests without a valid bearer token and stores
// the authenticated association id on the context.
func RequireAssociation(parse TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			abortUnauthorized(c, "token tidak ditemukan")
			return
		}
		id, err := parse(token)
		if err != nil {
			utils.LogEvent(GetRequestID(c), "auth", "reject_token", err.Error())
			abortUnauthorized(c, err.Error())
			return
		}
		c.Set(associationIDKey, id)
		c.Next()
	}
}

// GetAssociationID returns the authenticated association, 0 when absent.
func GetAssociationID(c *gin.Context) int64 {
	if v, ok := c.Get(associationIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"message":    msg,
		"request_id": GetRequestID(c),
	})
}
