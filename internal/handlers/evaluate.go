package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/services"

	"github.com/gin-gonic/gin"
)

type FeedbackEvaluator interface {
	IsAvailable() bool
	Evaluate(ctx context.Context, r services.FeedbackRequest) (string, error)
}

type EvaluateHandler struct {
	feedback FeedbackEvaluator
}

func NewEvaluateHandler(feedback FeedbackEvaluator) *EvaluateHandler {
	return &EvaluateHandler{feedback: feedback}
}

type EvaluateRequest struct {
	UserJustification   string `json:"userJustification" binding:"required" example:"typeof null is a legacy bug"`
	QuestionExplanation string `json:"questionExplanation" binding:"required"`
	IsCorrect           bool   `json:"isCorrect"`
	Locale              string `json:"locale" example:"en"`
}

type EvaluateResponse struct {
	Success  bool   `json:"success" example:"true"`
	Feedback string `json:"feedback,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Evaluate godoc
// @Summary      Evaluate a justification
// @Description  Stateless call to the feedback model
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        request body EvaluateRequest true "Justification and reference explanation"
// @Success      200 {object} EvaluateResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} EvaluateResponse
// @Failure      503 {object} EvaluateResponse
// @Router       /api/v1/evaluate-justification [post]
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !h.feedback.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, EvaluateResponse{Error: services.ErrFeedbackUnavailable.Error()})
		return
	}

	locale := requestLocale(c, models.LocaleEN)
	if l, ok := models.ParseLocale(req.Locale); ok {
		locale = l
	}
	text, err := h.feedback.Evaluate(c.Request.Context(), services.FeedbackRequest{
		Justification: req.UserJustification,
		Explanation:   req.QuestionExplanation,
		WasCorrect:    req.IsCorrect,
		Locale:        locale,
	})
	if err != nil {
		log.Printf("feedback: evaluate failed: %v", err)
		c.JSON(http.StatusInternalServerError, EvaluateResponse{Error: "Failed to evaluate justification"})
		return
	}
	c.JSON(http.StatusOK, EvaluateResponse{Success: true, Feedback: text})
}
