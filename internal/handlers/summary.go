package handlers

import (
	"net/http"
	"strconv"

	"github.com/arturxdev/interview-helper/internal/i18n"
	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/practice"

	"github.com/gin-gonic/gin"
)

var ratingKeys = map[practice.Rating]i18n.Key{
	practice.RatingOutstanding:    i18n.SummaryOutstanding,
	practice.RatingGreat:          i18n.SummaryGreat,
	practice.RatingGood:           i18n.SummaryGood,
	practice.RatingKeepPracticing: i18n.SummaryKeepPracticing,
}

type SummaryResponse struct {
	Title          string          `json:"title" example:"Practice Summary"`
	Description    string          `json:"description"`
	Topic          string          `json:"topic" example:"javascript"`
	CorrectCount   int             `json:"correct_count" example:"2"`
	IncorrectCount int             `json:"incorrect_count" example:"1"`
	Accuracy       int             `json:"accuracy" example:"67"`
	Rating         practice.Rating `json:"rating" example:"keep_practicing"`
	Message        string          `json:"message"`
	Labels         SummaryLabels   `json:"labels"`
}

type SummaryLabels struct {
	Correct   string `json:"correct"`
	Incorrect string `json:"incorrect"`
	Accuracy  string `json:"accuracy"`
}

func newSummaryResponse(s practice.Summary, l models.Locale) SummaryResponse {
	rating := s.Rating()
	return SummaryResponse{
		Title:          i18n.T(l, i18n.SummaryTitle, nil),
		Description:    i18n.T(l, i18n.SummaryDescription, map[string]string{"topic": s.Topic}),
		Topic:          s.Topic,
		CorrectCount:   s.CorrectCount,
		IncorrectCount: s.IncorrectCount,
		Accuracy:       s.Accuracy(),
		Rating:         rating,
		Message:        i18n.T(l, ratingKeys[rating], nil),
		Labels: SummaryLabels{
			Correct:   i18n.T(l, i18n.SummaryCorrect, nil),
			Incorrect: i18n.T(l, i18n.SummaryIncorrect, nil),
			Accuracy:  i18n.T(l, i18n.SummaryAccuracy, nil),
		},
	}
}

type SummaryHandler struct {
	defaultLocale models.Locale
}

func NewSummaryHandler(defaultLocale models.Locale) *SummaryHandler {
	return &SummaryHandler{defaultLocale: defaultLocale}
}

func nonNegativeQuery(c *gin.Context, key string) (int, bool) {
	raw := c.DefaultQuery(key, "0")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// GetSummary godoc
// @Summary      Render a practice summary
// @Description  Accuracy and rating are recomputed from the two tallies
// @Tags         summary
// @Produce      json
// @Param        correct query int true "Correct answers"
// @Param        incorrect query int true "Incorrect answers"
// @Param        topic query string false "Topic ID"
// @Param        locale query string false "en or es"
// @Success      200 {object} SummaryResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	correct, ok := nonNegativeQuery(c, "correct")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "correct must be a non-negative integer"})
		return
	}
	incorrect, ok := nonNegativeQuery(c, "incorrect")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "incorrect must be a non-negative integer"})
		return
	}

	s := practice.Summary{
		Topic:          c.Query("topic"),
		CorrectCount:   correct,
		IncorrectCount: incorrect,
		Total:          correct + incorrect,
	}
	c.JSON(http.StatusOK, newSummaryResponse(s, requestLocale(c, h.defaultLocale)))
}

// GetTranslations godoc
// @Summary      Interface strings
// @Description  Every interface string resolved for one locale
// @Tags         summary
// @Produce      json
// @Param        locale query string false "en or es"
// @Success      200 {object} map[string]string
// @Router       /api/v1/translations [get]
func (h *SummaryHandler) GetTranslations(c *gin.Context) {
	locale := requestLocale(c, h.defaultLocale)
	out := make(map[string]string, len(i18n.AllKeys))
	for _, k := range i18n.AllKeys {
		out[string(k)] = i18n.T(locale, k, nil)
	}
	c.JSON(http.StatusOK, out)
}
