package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/arturxdev/interview-helper/internal/i18n"
	"github.com/arturxdev/interview-helper/internal/models"

	"github.com/gin-gonic/gin"
)

type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
	Get(ctx context.Context, id string) (*models.Topic, error)
	RefreshCounts(ctx context.Context) (map[string]int, error)
}

type TopicHandler struct {
	topics        TopicService
	defaultLocale models.Locale
}

func NewTopicHandler(topics TopicService, defaultLocale models.Locale) *TopicHandler {
	return &TopicHandler{topics: topics, defaultLocale: defaultLocale}
}

// TopicView is a topic rendered in one locale.
type TopicView struct {
	ID             string `json:"id" example:"javascript"`
	Name           string `json:"name" example:"JavaScript"`
	Description    string `json:"description"`
	QuestionCount  int    `json:"question_count" example:"10"`
	QuestionsLabel string `json:"questions_label" example:"10 questions"`
	Available      bool   `json:"available"`
	Notice         string `json:"notice,omitempty"`
}

func newTopicView(t models.Topic, l models.Locale) TopicView {
	v := TopicView{
		ID:             t.ID,
		Name:           t.Name.Get(l),
		Description:    t.Description.Get(l),
		QuestionCount:  t.QuestionCount,
		QuestionsLabel: i18n.T(l, i18n.TopicsQuestionCount, map[string]string{"count": strconv.Itoa(t.QuestionCount)}),
		Available:      t.QuestionCount > 0,
	}
	if !v.Available {
		v.Notice = i18n.T(l, i18n.TopicsUnavailable, nil)
	}
	return v
}

type TopicListResponse struct {
	Title  string      `json:"title" example:"Choose a topic"`
	Topics []TopicView `json:"topics"`
}

type RefreshCountsResponse struct {
	Counts map[string]int `json:"counts"`
}

// ListTopics godoc
// @Summary      List topics
// @Description  Get every practice topic localized to the requested language
// @Tags         topics
// @Produce      json
// @Param        locale query string false "en or es"
// @Success      200 {object} TopicListResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/topics [get]
func (h *TopicHandler) ListTopics(c *gin.Context) {
	locale := requestLocale(c, h.defaultLocale)

	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		log.Printf("topics: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: i18n.T(locale, i18n.ErrorsLoadTopics, nil)})
		return
	}

	resp := TopicListResponse{
		Title:  i18n.T(locale, i18n.TopicsTitle, nil),
		Topics: make([]TopicView, 0, len(topics)),
	}
	for _, t := range topics {
		resp.Topics = append(resp.Topics, newTopicView(t, locale))
	}
	c.JSON(http.StatusOK, resp)
}

// GetTopic godoc
// @Summary      Get a topic
// @Tags         topics
// @Produce      json
// @Param        id path string true "Topic ID"
// @Param        locale query string false "en or es"
// @Success      200 {object} TopicView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/topics/{id} [get]
func (h *TopicHandler) GetTopic(c *gin.Context) {
	topic, err := h.topics.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTopicView(*topic, requestLocale(c, h.defaultLocale)))
}

// RefreshCounts godoc
// @Summary      Recount questions per topic
// @Description  Recompute the denormalized question count of every topic
// @Tags         topics
// @Produce      json
// @Success      200 {object} RefreshCountsResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/topics/refresh-counts [post]
func (h *TopicHandler) RefreshCounts(c *gin.Context) {
	counts, err := h.topics.RefreshCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RefreshCountsResponse{Counts: counts})
}
