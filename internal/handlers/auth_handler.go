package handler

import (
	"net/http"

	"business-dashboard-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login exchanges form credentials for a session token. Categorized auth
// failures come back as a 401 with a fixed message; anything the provider
// did not categorize reaches the outer error boundary as a 500.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, message, err := h.service.Login(email, password)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if message != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
