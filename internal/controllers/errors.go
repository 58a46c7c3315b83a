package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/apperror"
	"hbnb/internal/entities"
)

// statusFor maps a domain error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperror.IsValidation(err), apperror.IsBusiness(err):
		return http.StatusBadRequest
	case apperror.IsNotFound(err):
		return http.StatusNotFound
	case apperror.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func notFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
}

// bindFields decodes a JSON object body. Anything other than an object is a 400.
func bindFields(c *gin.Context) (entities.Fields, bool) {
	var fields entities.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return nil, false
	}
	if fields == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return nil, false
	}
	return fields, true
}
