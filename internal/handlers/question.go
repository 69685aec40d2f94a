package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/arturxdev/interview-helper/internal/i18n"
	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/store"

	"github.com/gin-gonic/gin"
)

type QuestionService interface {
	List(ctx context.Context, filter store.QuestionFilter, randomize bool) ([]models.Question, error)
	Get(ctx context.Context, id string) (*models.Question, error)
	Create(ctx context.Context, q *models.Question) (*models.Question, error)
	Update(ctx context.Context, id string, q *models.Question) (*models.Question, error)
	Delete(ctx context.Context, id string) error
}

type QuestionHandler struct {
	questions     QuestionService
	defaultLocale models.Locale
}

func NewQuestionHandler(questions QuestionService, defaultLocale models.Locale) *QuestionHandler {
	return &QuestionHandler{questions: questions, defaultLocale: defaultLocale}
}

func parseQuestionFilter(c *gin.Context) (store.QuestionFilter, bool, error) {
	f := store.QuestionFilter{
		Topic:      c.Query("topic"),
		Difficulty: models.Difficulty(c.Query("difficulty")),
		Type:       models.QuestionType(c.Query("type")),
	}
	if f.Difficulty != "" && !f.Difficulty.Valid() {
		return f, false, fmt.Errorf("invalid difficulty %q", f.Difficulty)
	}
	if f.Type != "" && !f.Type.Valid() {
		return f, false, fmt.Errorf("invalid type %q", f.Type)
	}
	randomize := false
	if raw := c.Query("randomize"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return f, false, fmt.Errorf("invalid randomize %q", raw)
		}
		randomize = b
	}
	return f, randomize, nil
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Filter questions by topic, difficulty and type; randomize returns a capped random sample
// @Tags         questions
// @Produce      json
// @Param        topic query string false "Topic ID"
// @Param        difficulty query string false "Easy, Medium or Hard"
// @Param        type query string false "multiple-choice, code-output or true-false"
// @Param        randomize query bool false "Random sample"
// @Success      200 {array} Question
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	filter, randomize, err := parseQuestionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	questions, err := h.questions.List(c.Request.Context(), filter, randomize)
	if err != nil {
		log.Printf("questions: list failed: %v", err)
		locale := requestLocale(c, h.defaultLocale)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: i18n.T(locale, i18n.ErrorsLoadQuestions, nil)})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary      Get a question
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200 {object} Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	q, err := h.questions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// CreateQuestion godoc
// @Summary      Create a question
// @Description  Both languages are required; the id defaults to <topic>-<unix millis>
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body Question true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req models.Question
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	q, err := h.questions.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// UpdateQuestion godoc
// @Summary      Replace a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        request body Question true "Question data"
// @Success      200 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req models.Question
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	q, err := h.questions.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.questions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}
