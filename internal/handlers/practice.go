package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/arturxdev/interview-helper/internal/i18n"
	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/practice"
	"github.com/arturxdev/interview-helper/internal/services"

	"github.com/gin-gonic/gin"
)

type PracticeService interface {
	Start(ctx context.Context, topic string, randomize bool, locale models.Locale) (*services.StartResult, error)
	State(id string) (practice.View, error)
	Select(id, answer string) (practice.View, error)
	Submit(id string) (practice.View, error)
	Feedback(id, justification string) (practice.View, error)
	Next(ctx context.Context, id string) (practice.View, *practice.Summary, error)
	Previous(id string) (practice.View, error)
	SetLocale(id string, locale models.Locale) (practice.View, error)
}

type PracticeHandler struct {
	practice      PracticeService
	defaultLocale models.Locale
}

func NewPracticeHandler(practice PracticeService, defaultLocale models.Locale) *PracticeHandler {
	return &PracticeHandler{practice: practice, defaultLocale: defaultLocale}
}

type StartPracticeRequest struct {
	Topic     string `json:"topic" binding:"required" example:"javascript"`
	Randomize bool   `json:"randomize" example:"true"`
	Locale    string `json:"locale" example:"en"`
}

type SelectAnswerRequest struct {
	Answer string `json:"answer" binding:"required" example:"ReferenceError"`
}

type FeedbackRequest struct {
	Justification string `json:"justification" binding:"required" example:"let is in the temporal dead zone"`
}

type LocaleRequest struct {
	Locale string `json:"locale" binding:"required" example:"es"`
}

// PracticeResponse is the session state plus the labels needed to render it.
// Summary is set once the last question has been left.
type PracticeResponse struct {
	SessionID string           `json:"session_id" example:"6f1c2b1e-3f5a-4c1d-9d9e-1d2f3a4b5c6d"`
	State     View             `json:"state"`
	Progress  string           `json:"progress" example:"Question 1 of 10"`
	Summary   *SummaryResponse `json:"summary,omitempty"`
}

func newPracticeResponse(id string, v practice.View) PracticeResponse {
	return PracticeResponse{
		SessionID: id,
		State:     v,
		Progress: i18n.T(v.Locale, i18n.PracticeProgress, map[string]string{
			"current": strconv.Itoa(v.Position + 1),
			"total":   strconv.Itoa(v.Total),
		}),
	}
}

// StartPractice godoc
// @Summary      Start a practice session
// @Description  Fetch the question sequence for a topic and open a session over it
// @Tags         practice
// @Accept       json
// @Produce      json
// @Param        request body StartPracticeRequest true "Session options"
// @Success      201 {object} PracticeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "topic has no questions; go back to topic selection"
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/practice [post]
func (h *PracticeHandler) StartPractice(c *gin.Context) {
	var req StartPracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	locale, ok := models.ParseLocale(req.Locale)
	if !ok {
		locale = requestLocale(c, h.defaultLocale)
	}

	started, err := h.practice.Start(c.Request.Context(), req.Topic, req.Randomize, locale)
	if err != nil {
		if errors.Is(err, services.ErrTopicUnavailable) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: i18n.T(locale, i18n.TopicsUnavailable, nil)})
			return
		}
		log.Printf("practice: start failed: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: i18n.T(locale, i18n.ErrorsLoadQuestions, nil)})
		return
	}
	c.JSON(http.StatusCreated, newPracticeResponse(started.SessionID, started.State))
}

func (h *PracticeHandler) respond(c *gin.Context, v practice.View, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPracticeResponse(c.Param("id"), v))
}

// GetPractice godoc
// @Summary      Get session state
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} PracticeResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/practice/{id} [get]
func (h *PracticeHandler) GetPractice(c *gin.Context) {
	v, err := h.practice.State(c.Param("id"))
	h.respond(c, v, err)
}

// SelectAnswer godoc
// @Summary      Select an answer
// @Description  Ignored with 409 once the question is answered
// @Tags         practice
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body SelectAnswerRequest true "Chosen option"
// @Success      200 {object} PracticeResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/practice/{id}/select [post]
func (h *PracticeHandler) SelectAnswer(c *gin.Context) {
	var req SelectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	v, err := h.practice.Select(c.Param("id"), req.Answer)
	h.respond(c, v, err)
}

// SubmitAnswer godoc
// @Summary      Lock in the selected answer
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} PracticeResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/practice/{id}/submit [post]
func (h *PracticeHandler) SubmitAnswer(c *gin.Context) {
	v, err := h.practice.Submit(c.Param("id"))
	h.respond(c, v, err)
}

// RequestFeedback godoc
// @Summary      Ask for feedback on a justification
// @Description  Returns immediately; the result arrives over /ws/practice/{id} and in later state reads
// @Tags         practice
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body FeedbackRequest true "Justification"
// @Success      202 {object} PracticeResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/practice/{id}/feedback [post]
func (h *PracticeHandler) RequestFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	v, err := h.practice.Feedback(c.Param("id"), req.Justification)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newPracticeResponse(c.Param("id"), v))
}

// NextQuestion godoc
// @Summary      Advance to the next question
// @Description  Leaving the last question finishes the session and includes the summary
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} PracticeResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/practice/{id}/next [post]
func (h *PracticeHandler) NextQuestion(c *gin.Context) {
	v, summary, err := h.practice.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := newPracticeResponse(c.Param("id"), v)
	if summary != nil {
		s := newSummaryResponse(*summary, v.Locale)
		resp.Summary = &s
	}
	c.JSON(http.StatusOK, resp)
}

// PreviousQuestion godoc
// @Summary      Go back one question
// @Description  Answered questions come back in review mode and are not scored again
// @Tags         practice
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} PracticeResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/practice/{id}/previous [post]
func (h *PracticeHandler) PreviousQuestion(c *gin.Context) {
	v, err := h.practice.Previous(c.Param("id"))
	h.respond(c, v, err)
}

// SetLocale godoc
// @Summary      Switch session language
// @Tags         practice
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body LocaleRequest true "Locale"
// @Success      200 {object} PracticeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/practice/{id}/locale [put]
func (h *PracticeHandler) SetLocale(c *gin.Context) {
	var req LocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	locale, ok := models.ParseLocale(req.Locale)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported locale"})
		return
	}
	v, err := h.practice.SetLocale(c.Param("id"), locale)
	h.respond(c, v, err)
}
