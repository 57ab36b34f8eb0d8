package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dayabrar/Eco-Eats/logger"
	"github.com/Dayabrar/Eco-Eats/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses. Storage failures log
// the cause but never leak it to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidQuantity), errors.Is(err, models.ErrInvalidMealType), errors.Is(err, models.ErrInvalidCatalogEntry):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrFoodInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrStorage):
		logger.Error("storage failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		logger.Error("unhandled failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// dateQuery reads a yyyy-mm-dd query parameter, defaulting to today when
// absent. A malformed value returns an error for the caller to 400 on.
func dateQuery(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, want yyyy-mm-dd", key, raw)
	}
	return d, nil
}
