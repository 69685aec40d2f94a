package practice

import (
	"errors"
	"testing"

	"github.com/arturxdev/interview-helper/internal/models"
)

func question(id, correct string, options ...string) models.Question {
	return models.Question{
		ID:         id,
		Topic:      "javascript",
		Difficulty: models.DifficultyEasy,
		Type:       models.QuestionTypeMultipleChoice,
		Question:   models.Text{models.LocaleEN: "Q " + id, models.LocaleES: "P " + id},
		Options: models.TextList{
			models.LocaleEN: options,
			models.LocaleES: options,
		},
		CorrectAnswer: models.Answer(correct),
		Explanation:   models.Text{models.LocaleEN: "because " + id, models.LocaleES: "porque " + id},
	}
}

func twoQuestions() []models.Question {
	return []models.Question{
		question("js-1", "ReferenceError", "10", "20", "undefined", "ReferenceError"),
		question("js-2", "undefined", "10", "20", "undefined", "ReferenceError"),
	}
}

func mustEngine(t *testing.T, qs []models.Question) *Engine {
	t.Helper()
	e, err := New("javascript", qs, models.LocaleEN)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func answer(t *testing.T, e *Engine, choice string) bool {
	t.Helper()
	if err := e.SelectAnswer(choice); err != nil {
		t.Fatalf("select %q: %v", choice, err)
	}
	ok, err := e.SubmitAnswer()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return ok
}

// TestNewRejectsEmptySequence ensures a zero-length session is never built.
func TestNewRejectsEmptySequence(t *testing.T) {
	if _, err := New("javascript", nil, models.LocaleEN); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
}

// TestInitialState verifies a fresh engine starts unanswered at position 0.
func TestInitialState(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	if e.Position() != 0 || e.Answered() || e.Finished() {
		t.Fatalf("unexpected initial state: pos=%d answered=%v finished=%v", e.Position(), e.Answered(), e.Finished())
	}
	if _, ok := e.SelectedAnswer(); ok {
		t.Fatalf("expected no selected answer")
	}
	if c, i := e.Counts(); c != 0 || i != 0 {
		t.Fatalf("expected zero counts, got %d/%d", c, i)
	}
}

// TestTwoQuestionScenario walks a full session to its final tally.
func TestTwoQuestionScenario(t *testing.T) {
	e := mustEngine(t, twoQuestions())

	if !answer(t, e, "ReferenceError") {
		t.Fatalf("expected first answer to be correct")
	}
	if c, _ := e.Counts(); c != 1 {
		t.Fatalf("expected correctCount=1, got %d", c)
	}
	if sum, err := e.Advance(); err != nil || sum != nil {
		t.Fatalf("advance: sum=%v err=%v", sum, err)
	}
	if e.Position() != 1 {
		t.Fatalf("expected position 1, got %d", e.Position())
	}

	if answer(t, e, "10") {
		t.Fatalf("expected second answer to be incorrect")
	}
	sum, err := e.Advance()
	if err != nil {
		t.Fatalf("advance from last: %v", err)
	}
	if sum == nil {
		t.Fatalf("expected a summary from the last position")
	}
	if sum.CorrectCount != 1 || sum.IncorrectCount != 1 || sum.Total != 2 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if sum.Accuracy() != 50 {
		t.Fatalf("expected accuracy 50, got %d", sum.Accuracy())
	}
	if !e.Finished() || e.Position() != 1 {
		t.Fatalf("expected terminal at position 1, got finished=%v pos=%d", e.Finished(), e.Position())
	}
	if _, err := e.Advance(); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished after terminal, got %v", err)
	}
	if e.Position() != 1 {
		t.Fatalf("position moved after terminal: %d", e.Position())
	}
}

// TestSubmitTwiceDoesNotRecount verifies submission is gated by answered.
func TestSubmitTwiceDoesNotRecount(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	answer(t, e, "ReferenceError")

	if _, err := e.SubmitAnswer(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if c, i := e.Counts(); c != 1 || i != 0 {
		t.Fatalf("counts changed on resubmit: %d/%d", c, i)
	}
}

// TestSubmitWithoutSelection is rejected and leaves the question unanswered.
func TestSubmitWithoutSelection(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	if _, err := e.SubmitAnswer(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if e.Answered() {
		t.Fatalf("question should remain unanswered")
	}
}

// TestSelectAfterAnswerKeepsSelection ensures answers cannot change after submit.
func TestSelectAfterAnswerKeepsSelection(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	answer(t, e, "20")

	if err := e.SelectAnswer("A"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if sel, _ := e.SelectedAnswer(); sel != "20" {
		t.Fatalf("expected selection to stay %q, got %q", "20", sel)
	}
}

// TestAdvanceBeforeAnswer is an invalid transition.
func TestAdvanceBeforeAnswer(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	if _, err := e.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if e.Position() != 0 {
		t.Fatalf("position changed: %d", e.Position())
	}
}

// TestRetreatAtStart is rejected without moving.
func TestRetreatAtStart(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	if err := e.Retreat(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if e.Position() != 0 {
		t.Fatalf("position changed: %d", e.Position())
	}
}

// TestRetreatShowsReviewModeWithoutRecount covers revisiting an answered question.
func TestRetreatShowsReviewModeWithoutRecount(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	answer(t, e, "10")
	if _, err := e.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := e.SelectAnswer("undefined"); err != nil {
		t.Fatalf("select: %v", err)
	}

	if err := e.Retreat(); err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if !e.Answered() {
		t.Fatalf("revisited question should stay answered")
	}
	if sel, _ := e.SelectedAnswer(); sel != "10" {
		t.Fatalf("expected recorded selection %q, got %q", "10", sel)
	}
	if err := e.SelectAnswer("ReferenceError"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected re-answer to be rejected, got %v", err)
	}
	if _, err := e.SubmitAnswer(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected resubmit to be rejected, got %v", err)
	}
	if c, i := e.Counts(); c != 0 || i != 1 {
		t.Fatalf("counts changed on revisit: %d/%d", c, i)
	}

	// Moving forward again returns to the unanswered second question with
	// the in-progress selection cleared.
	if _, err := e.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if e.Answered() {
		t.Fatalf("second question was never answered")
	}
	if _, ok := e.SelectedAnswer(); ok {
		t.Fatalf("selection should be cleared on navigation")
	}
}

// TestCountsMatchAnsweredPositions checks the tally invariant across a run.
func TestCountsMatchAnsweredPositions(t *testing.T) {
	qs := []models.Question{
		question("a", "1", "1", "2"),
		question("b", "2", "1", "2"),
		question("c", "1", "1", "2"),
	}
	e := mustEngine(t, qs)
	picks := []string{"1", "1", "1"}
	for i, p := range picks {
		answer(t, e, p)
		c, inc := e.Counts()
		if c+inc != i+1 {
			t.Fatalf("after %d answers counts sum to %d", i+1, c+inc)
		}
		if c+inc > e.Position()+1 {
			t.Fatalf("counts exceed position+1")
		}
		if i > 0 {
			_ = e.Retreat()
			_, _ = e.Advance()
		}
		if _, err := e.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if c, inc := e.Counts(); c != 2 || inc != 1 {
		t.Fatalf("expected 2/1, got %d/%d", c, inc)
	}
}

// TestFeedbackAttachesToIssuingQuestion covers the happy path.
func TestFeedbackAttachesToIssuingQuestion(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	if _, err := e.RequestFeedback("because of hoisting"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("feedback before answering should be rejected, got %v", err)
	}

	answer(t, e, "ReferenceError")
	ticket, err := e.RequestFeedback("  temporal dead zone  ")
	if err != nil {
		t.Fatalf("request feedback: %v", err)
	}
	if !ticket.WasCorrect || ticket.Explanation != "because js-1" || ticket.Justification != "temporal dead zone" {
		t.Fatalf("unexpected ticket %+v", ticket)
	}
	if v := e.View(); v.FeedbackStatus != FeedbackPending {
		t.Fatalf("expected pending status, got %s", v.FeedbackStatus)
	}
	if !e.ResolveFeedback(ticket, "Nice reasoning.") {
		t.Fatalf("expected feedback to attach")
	}
	v := e.View()
	if v.Feedback != "Nice reasoning." || v.FeedbackStatus != FeedbackReady {
		t.Fatalf("unexpected view %+v", v)
	}
}

// TestLateFeedbackIsDiscarded ensures a stale ticket never lands on another question.
func TestLateFeedbackIsDiscarded(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	answer(t, e, "ReferenceError")
	ticket, err := e.RequestFeedback("tdz")
	if err != nil {
		t.Fatalf("request feedback: %v", err)
	}

	if _, err := e.Advance(); err != nil {
		t.Fatalf("advance must not wait on feedback: %v", err)
	}
	if e.ResolveFeedback(ticket, "late") {
		t.Fatalf("late feedback attached to the wrong question")
	}

	// Coming back to the same position is a new visit; the old ticket stays stale.
	if err := e.Retreat(); err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if e.ResolveFeedback(ticket, "late") {
		t.Fatalf("late feedback attached after revisiting")
	}
	if v := e.View(); v.Feedback != "" || v.FeedbackStatus != FeedbackNone {
		t.Fatalf("unexpected feedback state %+v", v)
	}
}

// TestSupersededFeedbackIsDiscarded keeps a slow answer to an earlier
// justification off a newer request on the same question.
func TestSupersededFeedbackIsDiscarded(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	answer(t, e, "ReferenceError")
	first, err := e.RequestFeedback("first justification")
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	second, err := e.RequestFeedback("second justification")
	if err != nil {
		t.Fatalf("second request: %v", err)
	}

	if e.ResolveFeedback(first, "feedback about first") {
		t.Fatalf("superseded feedback attached")
	}
	if e.FailFeedback(first) {
		t.Fatalf("superseded failure recorded")
	}
	if v := e.View(); v.FeedbackStatus != FeedbackPending || v.Justification != "second justification" {
		t.Fatalf("newest request should still be pending, got %+v", v)
	}

	if !e.ResolveFeedback(second, "feedback about second") {
		t.Fatalf("newest feedback should attach")
	}
	if v := e.View(); v.Feedback != "feedback about second" || v.FeedbackStatus != FeedbackReady {
		t.Fatalf("unexpected view %+v", v)
	}
}

// TestFeedbackFailureDegrades leaves scoring and navigation untouched.
func TestFeedbackFailureDegrades(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	answer(t, e, "10")
	ticket, _ := e.RequestFeedback("guess")
	if !e.FailFeedback(ticket) {
		t.Fatalf("expected failure to be recorded")
	}
	if v := e.View(); v.FeedbackStatus != FeedbackFailed || v.Feedback != "" {
		t.Fatalf("unexpected view %+v", v)
	}
	if _, err := e.Advance(); err != nil {
		t.Fatalf("advance after failed feedback: %v", err)
	}
}

// TestViewHidesAnswerUntilSubmitted checks what the presentation layer sees.
func TestViewHidesAnswerUntilSubmitted(t *testing.T) {
	e := mustEngine(t, twoQuestions())
	v := e.View()
	if v.CorrectAnswer != "" || v.Explanation != "" || v.WasCorrect != nil {
		t.Fatalf("answer leaked before submission: %+v", v)
	}
	if v.Question.Prompt != "Q js-1" || len(v.Question.Options) != 4 {
		t.Fatalf("unexpected question view %+v", v.Question)
	}

	answer(t, e, "ReferenceError")
	if err := e.SetLocale(models.LocaleES); err != nil {
		t.Fatalf("set locale: %v", err)
	}
	v = e.View()
	if v.CorrectAnswer != "ReferenceError" || v.Explanation != "porque js-1" || v.WasCorrect == nil || !*v.WasCorrect {
		t.Fatalf("unexpected answered view %+v", v)
	}
	if v.Question.Prompt != "P js-1" {
		t.Fatalf("expected spanish prompt, got %q", v.Question.Prompt)
	}
}

// TestTrueFalseWithoutOptions offers the literal choices.
func TestTrueFalseWithoutOptions(t *testing.T) {
	q := question("tf", "false")
	q.Type = models.QuestionTypeTrueFalse
	q.Options = nil
	e := mustEngine(t, []models.Question{q})

	if opts := e.View().Question.Options; len(opts) != 2 || opts[0] != "true" || opts[1] != "false" {
		t.Fatalf("unexpected options %v", opts)
	}
	if !answer(t, e, "false") {
		t.Fatalf("expected false to be correct")
	}
}
