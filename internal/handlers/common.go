package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/practice"
	"github.com/arturxdev/interview-helper/internal/services"
	"github.com/arturxdev/interview-helper/internal/store"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type PracticeResult = models.PracticeResult
type View = practice.View

// statusFor maps service and engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, practice.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, store.ErrDuplicateQuestion):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidQuestion):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrTopicNotFound),
		errors.Is(err, services.ErrTopicUnavailable),
		errors.Is(err, services.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrFeedbackUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
}

// requestLocale picks the locale from ?locale=, then Accept-Language, then fallback.
func requestLocale(c *gin.Context, fallback models.Locale) models.Locale {
	if l, ok := models.ParseLocale(c.Query("locale")); ok {
		return l
	}
	header := c.GetHeader("Accept-Language")
	if i := strings.IndexAny(header, ",;"); i >= 0 {
		header = header[:i]
	}
	if l, ok := models.ParseLocale(header); ok {
		return l
	}
	return fallback
}
