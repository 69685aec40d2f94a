package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arturxdev/interview-helper/internal/models"
)

var ErrFeedbackUnavailable = errors.New("feedback is not configured")

type FeedbackRequest struct {
	Justification string
	Explanation   string
	WasCorrect    bool
	Locale        models.Locale
}

// FeedbackService asks an OpenAI-compatible chat endpoint to review a
// learner's reasoning.
type FeedbackService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewFeedbackService(apiKey, apiURL, model string, timeout time.Duration) *FeedbackService {
	return &FeedbackService{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		model:      model,
	}
}

func (s *FeedbackService) IsAvailable() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const tutorPrompt = `You are an expert tutor evaluating a student's reasoning for a programming question.

The student answered %s.

Correct explanation: %s

Student's justification: %s

Please evaluate the student's reasoning and provide constructive feedback:
1. Assess how well their justification demonstrates understanding
2. Point out any misconceptions or gaps
3. If correct, acknowledge good reasoning and suggest improvements
4. If incorrect, help them understand where their thinking went wrong
5. Keep feedback encouraging and educational

Provide a concise but helpful response (2-3 sentences).%s`

func buildTutorPrompt(r FeedbackRequest) string {
	outcome := "incorrectly"
	if r.WasCorrect {
		outcome = "correctly"
	}
	lang := ""
	if r.Locale == models.LocaleES {
		lang = "\nRespond in Spanish."
	}
	return fmt.Sprintf(tutorPrompt, outcome, r.Explanation, r.Justification, lang)
}

func (s *FeedbackService) Evaluate(ctx context.Context, r FeedbackRequest) (string, error) {
	if !s.IsAvailable() {
		return "", ErrFeedbackUnavailable
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "user", Content: buildTutorPrompt(r)},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}

	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty response from AI")
	}
	return text, nil
}
