package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type TokenRequest struct {
	Email string `json:"email" binding:"required"`
}

// Issue signs the caller's identity into a short-lived access token.
// The token carries no role; roles are resolved from the database on
// every guarded request, so promotions take effect immediately.
func (h *Handler) Issue(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	token, err := h.service.GenerateToken(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
