package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/practice"
	"github.com/arturxdev/interview-helper/internal/services"
	"github.com/arturxdev/interview-helper/internal/store"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type fakeTopics struct {
	topics []models.Topic
	err    error
}

func (f *fakeTopics) List(context.Context) ([]models.Topic, error) { return f.topics, f.err }

func (f *fakeTopics) Get(_ context.Context, id string) (*models.Topic, error) {
	for i := range f.topics {
		if f.topics[i].ID == id {
			return &f.topics[i], nil
		}
	}
	return nil, services.ErrTopicNotFound
}

func (f *fakeTopics) RefreshCounts(context.Context) (map[string]int, error) {
	return map[string]int{"javascript": 3}, nil
}

func TestListTopicsLocalized(t *testing.T) {
	topics := &fakeTopics{topics: []models.Topic{
		{ID: "javascript", Name: models.Text{"en": "JavaScript", "es": "JavaScript"}, QuestionCount: 3},
		{ID: "rust", Name: models.Text{"en": "Rust", "es": "Rust"}},
	}}
	r := gin.New()
	h := NewTopicHandler(topics, models.LocaleEN)
	r.GET("/api/v1/topics", h.ListTopics)

	w := doJSON(r, http.MethodGet, "/api/v1/topics?locale=es", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var resp TopicListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Title != "Elige un tema" || len(resp.Topics) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Topics[0].QuestionsLabel != "3 preguntas" || !resp.Topics[0].Available {
		t.Fatalf("unexpected first topic %+v", resp.Topics[0])
	}
	if resp.Topics[1].Available || resp.Topics[1].Notice == "" {
		t.Fatalf("empty topic should be flagged unavailable: %+v", resp.Topics[1])
	}
}

func TestListTopicsFailureIsLocalized(t *testing.T) {
	r := gin.New()
	h := NewTopicHandler(&fakeTopics{err: errors.New("mongo down")}, models.LocaleEN)
	r.GET("/api/v1/topics", h.ListTopics)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error != "No se pudieron cargar los temas. Inténtalo de nuevo más tarde." {
		t.Fatalf("unexpected error text %q", resp.Error)
	}
}

// fakePractice returns canned results for each operation.
type fakePractice struct {
	startErr error
	opErr    error
	summary  *practice.Summary
	view     practice.View
}

func (f *fakePractice) Start(_ context.Context, topic string, _ bool, l models.Locale) (*services.StartResult, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	v := f.view
	v.Topic, v.Locale = topic, l
	return &services.StartResult{SessionID: "s-1", State: v}, nil
}

func (f *fakePractice) State(string) (practice.View, error) { return f.view, f.opErr }
func (f *fakePractice) Select(_, _ string) (practice.View, error) { return f.view, f.opErr }
func (f *fakePractice) Submit(string) (practice.View, error) { return f.view, f.opErr }
func (f *fakePractice) Feedback(_, _ string) (practice.View, error) { return f.view, f.opErr }
func (f *fakePractice) Previous(string) (practice.View, error) { return f.view, f.opErr }

func (f *fakePractice) SetLocale(_ string, l models.Locale) (practice.View, error) {
	v := f.view
	v.Locale = l
	return v, f.opErr
}

func (f *fakePractice) Next(context.Context, string) (practice.View, *practice.Summary, error) {
	return f.view, f.summary, f.opErr
}

func practiceRouter(p PracticeService) *gin.Engine {
	r := gin.New()
	h := NewPracticeHandler(p, models.LocaleEN)
	r.POST("/api/v1/practice", h.StartPractice)
	r.GET("/api/v1/practice/:id", h.GetPractice)
	r.POST("/api/v1/practice/:id/select", h.SelectAnswer)
	r.POST("/api/v1/practice/:id/feedback", h.RequestFeedback)
	r.POST("/api/v1/practice/:id/next", h.NextQuestion)
	r.PUT("/api/v1/practice/:id/locale", h.SetLocale)
	return r
}

func TestStartPractice(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"created", nil, http.StatusCreated},
		{"empty topic", services.ErrTopicUnavailable, http.StatusNotFound},
		{"fetch failure", fmt.Errorf("fetch questions for javascript: %w", errors.New("timeout")), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := practiceRouter(&fakePractice{startErr: tc.err, view: practice.View{Total: 10}})
			w := doJSON(r, http.MethodPost, "/api/v1/practice", StartPracticeRequest{Topic: "javascript", Locale: "es"})
			if w.Code != tc.want {
				t.Fatalf("status %d, want %d: %s", w.Code, tc.want, w.Body.String())
			}
			if tc.want != http.StatusCreated {
				return
			}
			var resp PracticeResponse
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.SessionID != "s-1" || resp.Progress != "Pregunta 1 de 10" {
				t.Fatalf("unexpected response %+v", resp)
			}
		})
	}
}

func TestPracticeErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: select: question already answered", practice.ErrInvalidTransition), http.StatusConflict},
		{services.ErrSessionNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		r := practiceRouter(&fakePractice{opErr: tc.err})
		w := doJSON(r, http.MethodPost, "/api/v1/practice/s-1/select", SelectAnswerRequest{Answer: "A"})
		if w.Code != tc.want {
			t.Fatalf("%v: status %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}

func TestFeedbackAccepted(t *testing.T) {
	r := practiceRouter(&fakePractice{view: practice.View{Total: 2, Locale: models.LocaleEN, FeedbackStatus: practice.FeedbackPending}})
	w := doJSON(r, http.MethodPost, "/api/v1/practice/s-1/feedback", FeedbackRequest{Justification: "because"})
	if w.Code != http.StatusAccepted {
		t.Fatalf("unexpected status %d", w.Code)
	}

	r = practiceRouter(&fakePractice{opErr: services.ErrFeedbackUnavailable})
	w = doJSON(r, http.MethodPost, "/api/v1/practice/s-1/feedback", FeedbackRequest{Justification: "because"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", w.Code)
	}
}

func TestNextIncludesSummaryWhenFinished(t *testing.T) {
	sum := &practice.Summary{Topic: "javascript", CorrectCount: 1, IncorrectCount: 1, Total: 2}
	r := practiceRouter(&fakePractice{view: practice.View{Finished: true, Total: 2, Position: 1, Locale: models.LocaleEN}, summary: sum})

	w := doJSON(r, http.MethodPost, "/api/v1/practice/s-1/next", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var resp PracticeResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Summary == nil || resp.Summary.Accuracy != 50 || resp.Summary.Rating != practice.RatingGood {
		t.Fatalf("unexpected summary %+v", resp.Summary)
	}
}

func TestSetLocaleRejectsUnknown(t *testing.T) {
	r := practiceRouter(&fakePractice{})
	w := doJSON(r, http.MethodPut, "/api/v1/practice/s-1/locale", LocaleRequest{Locale: "fr"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", w.Code)
	}
	w = doJSON(r, http.MethodPut, "/api/v1/practice/s-1/locale", LocaleRequest{Locale: "es-ES"})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
}

func TestGetSummary(t *testing.T) {
	r := gin.New()
	h := NewSummaryHandler(models.LocaleEN)
	r.GET("/api/v1/summary", h.GetSummary)

	w := doJSON(r, http.MethodGet, "/api/v1/summary?correct=2&incorrect=1&topic=javascript&locale=es", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var resp SummaryResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Accuracy != 67 || resp.Rating != practice.RatingGood {
		t.Fatalf("unexpected summary %+v", resp)
	}
	if resp.Description != "Así te fue en las preguntas de javascript" {
		t.Fatalf("unexpected description %q", resp.Description)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/summary?correct=-1&incorrect=1", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative tally should be rejected, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/summary", nil)
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if w.Code != http.StatusOK || resp.Accuracy != 0 {
		t.Fatalf("empty tally should have accuracy 0, got %d %+v", w.Code, resp)
	}
}

type fakeQuestions struct {
	QuestionService
	createErr error
}

func (f *fakeQuestions) List(context.Context, store.QuestionFilter, bool) ([]models.Question, error) {
	return []models.Question{}, nil
}

func (f *fakeQuestions) Create(_ context.Context, q *models.Question) (*models.Question, error) {
	return q, f.createErr
}

func TestQuestionFilterValidation(t *testing.T) {
	r := gin.New()
	h := NewQuestionHandler(&fakeQuestions{}, models.LocaleEN)
	r.GET("/api/v1/questions", h.ListQuestions)

	for path, want := range map[string]int{
		"/api/v1/questions?topic=javascript&randomize=true": http.StatusOK,
		"/api/v1/questions?difficulty=Impossible":           http.StatusBadRequest,
		"/api/v1/questions?type=essay":                      http.StatusBadRequest,
		"/api/v1/questions?randomize=maybe":                 http.StatusBadRequest,
	} {
		if w := doJSON(r, http.MethodGet, path, nil); w.Code != want {
			t.Fatalf("%s: status %d, want %d", path, w.Code, want)
		}
	}
}

func TestCreateQuestionErrors(t *testing.T) {
	for err, want := range map[error]int{
		fmt.Errorf("%w: topic is required", models.ErrInvalidQuestion): http.StatusBadRequest,
		store.ErrDuplicateQuestion:                                      http.StatusConflict,
	} {
		r := gin.New()
		h := NewQuestionHandler(&fakeQuestions{createErr: err}, models.LocaleEN)
		r.POST("/api/v1/questions", h.CreateQuestion)
		w := doJSON(r, http.MethodPost, "/api/v1/questions", map[string]string{"topic": "javascript"})
		if w.Code != want {
			t.Fatalf("%v: status %d, want %d", err, w.Code, want)
		}
	}
}

type fakeEvaluator struct {
	available bool
	got       services.FeedbackRequest
}

func (f *fakeEvaluator) IsAvailable() bool { return f.available }

func (f *fakeEvaluator) Evaluate(_ context.Context, r services.FeedbackRequest) (string, error) {
	f.got = r
	return "Good thinking.", nil
}

func TestEvaluateJustification(t *testing.T) {
	eval := &fakeEvaluator{available: true}
	r := gin.New()
	r.POST("/api/v1/evaluate-justification", NewEvaluateHandler(eval).Evaluate)

	w := doJSON(r, http.MethodPost, "/api/v1/evaluate-justification", EvaluateRequest{
		UserJustification:   "null is an object",
		QuestionExplanation: "typeof null is object",
		IsCorrect:           true,
		Locale:              "es",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var resp EvaluateResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || resp.Feedback != "Good thinking." {
		t.Fatalf("unexpected response %+v", resp)
	}
	if !eval.got.WasCorrect || eval.got.Locale != models.LocaleES {
		t.Fatalf("unexpected evaluator request %+v", eval.got)
	}

	eval.available = false
	w = doJSON(r, http.MethodPost, "/api/v1/evaluate-justification", EvaluateRequest{UserJustification: "x", QuestionExplanation: "y"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", w.Code)
	}
}

func TestResultsDisabled(t *testing.T) {
	r := gin.New()
	h := NewResultHandler(nil)
	r.GET("/api/v1/results/:session_id", h.GetResult)
	if w := doJSON(r, http.MethodGet, "/api/v1/results/s-1", nil); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", w.Code)
	}
}

func TestTranslationsCoverEveryKey(t *testing.T) {
	r := gin.New()
	r.GET("/api/v1/translations", NewSummaryHandler(models.LocaleEN).GetTranslations)
	w := doJSON(r, http.MethodGet, "/api/v1/translations?locale=es", nil)
	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	for k, v := range out {
		if k == v {
			t.Fatalf("key %s has no spanish translation", k)
		}
	}
	if out["practice.next"] != "Siguiente" {
		t.Fatalf("unexpected translation %q", out["practice.next"])
	}
}
