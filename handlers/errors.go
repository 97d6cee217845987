package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aipsms/ai-engine/matcher"
	"github.com/aipsms/ai-engine/models"
	"github.com/aipsms/ai-engine/utils"
)

// statusFor maps caller mistakes to 400 and everything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, matcher.ErrInvalidInput), errors.Is(err, utils.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{
		Error: message,
		Code:  status,
	}
	if err != nil {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
