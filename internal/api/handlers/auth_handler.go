package handlers

import (
	"net/http"

	"github.com/chenghui/supervision-go/pkg/response"
	"github.com/chenghui/supervision-go/pkg/types"
	"github.com/gin-gonic/gin"
)

// AuthStatusHandler reports whether the presented token is still valid.
func AuthStatusHandler(c *gin.Context) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "user_id": claims.UserID, "role": claims.Role})
}
