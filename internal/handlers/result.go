package handlers

import (
	"context"
	"net/http"

	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultService interface {
	GetBySession(ctx context.Context, sessionID string) (*models.PracticeResult, error)
	TopicStats(ctx context.Context, topic string) (*services.TopicStats, error)
}

type ResultHandler struct {
	results ResultService
}

// NewResultHandler accepts a nil service when result history is disabled.
func NewResultHandler(results ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

func (h *ResultHandler) available(c *gin.Context) bool {
	if h.results == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "result history is disabled"})
		return false
	}
	return true
}

// GetResult godoc
// @Summary      Get the stored result of a finished session
// @Tags         results
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      200 {object} PracticeResult
// @Failure      404 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/results/{session_id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	if !h.available(c) {
		return
	}
	r, err := h.results.GetBySession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetTopicStats godoc
// @Summary      Aggregate results for a topic
// @Tags         results
// @Produce      json
// @Param        topic path string true "Topic ID"
// @Success      200 {object} services.TopicStats
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/results/topics/{topic}/stats [get]
func (h *ResultHandler) GetTopicStats(c *gin.Context) {
	if !h.available(c) {
		return
	}
	stats, err := h.results.TopicStats(c.Request.Context(), c.Param("topic"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
