package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/fitsync-pro/backend/internal/middleware"
	"github.com/pageza/fitsync-pro/backend/internal/service"
)

// respondError maps service errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	var parseErr *service.ParseError

	switch {
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":        parseErr.Error(),
			"raw_response": parseErr.Raw,
		})
	case errors.Is(err, service.ErrMissingSection), errors.Is(err, service.ErrGeneration):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrProfileRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrProfileRequired.Error()})
	case errors.Is(err, service.ErrProfileNotFound), errors.Is(err, service.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("Error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// currentUser returns the authenticated user's ID or writes a 401
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}
