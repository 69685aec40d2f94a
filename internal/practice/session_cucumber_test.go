package practice

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/cucumber/godog"
)

func TestSessionFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "practice-session",
		ScenarioInitializer: initializeSessionScenario,
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{filepath.Join("features")},
			Output:   io.Discard,
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("session features failed")
	}
}

type sessionWorld struct {
	engine   *Engine
	lastErr  error
	summary  *Summary
	ticket   FeedbackTicket
	attached bool
}

func (w *sessionWorld) sessionWithQuestions(n int, correct string) error {
	qs := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, question(fmt.Sprintf("q-%d", i+1), correct, "A", "B", "C"))
	}
	e, err := New("javascript", qs, models.LocaleEN)
	if err != nil {
		return err
	}
	w.engine = e
	return nil
}

func (w *sessionWorld) selects(choice string) error {
	w.lastErr = w.engine.SelectAnswer(choice)
	return nil
}

func (w *sessionWorld) submits() error {
	_, w.lastErr = w.engine.SubmitAnswer()
	return nil
}

func (w *sessionWorld) advances() error {
	sum, err := w.engine.Advance()
	w.lastErr = err
	if sum != nil {
		w.summary = sum
	}
	return nil
}

func (w *sessionWorld) retreats() error {
	w.lastErr = w.engine.Retreat()
	return nil
}

func (w *sessionWorld) asksForFeedback(text string) error {
	ticket, err := w.engine.RequestFeedback(text)
	if err != nil {
		return err
	}
	w.ticket = ticket
	return nil
}

func (w *sessionWorld) feedbackArrives(text string) error {
	w.attached = w.engine.ResolveFeedback(w.ticket, text)
	return nil
}

func (w *sessionWorld) correctCountIs(n int) error {
	if c, _ := w.engine.Counts(); c != n {
		return fmt.Errorf("expected correct count %d, got %d", n, c)
	}
	return nil
}

func (w *sessionWorld) incorrectCountIs(n int) error {
	if _, i := w.engine.Counts(); i != n {
		return fmt.Errorf("expected incorrect count %d, got %d", n, i)
	}
	return nil
}

func (w *sessionWorld) positionIs(n int) error {
	if p := w.engine.Position(); p != n {
		return fmt.Errorf("expected position %d, got %d", n, p)
	}
	return nil
}

func (w *sessionWorld) selectedAnswerIs(want string) error {
	got, ok := w.engine.SelectedAnswer()
	if !ok || got != want {
		return fmt.Errorf("expected selected answer %q, got %q (set=%v)", want, got, ok)
	}
	return nil
}

func (w *sessionWorld) finishedWithTallies(correct, incorrect int) error {
	if !w.engine.Finished() || w.summary == nil {
		return errors.New("expected the session to be finished")
	}
	if w.summary.CorrectCount != correct || w.summary.IncorrectCount != incorrect {
		return fmt.Errorf("expected tallies (%d,%d), got (%d,%d)", correct, incorrect, w.summary.CorrectCount, w.summary.IncorrectCount)
	}
	return nil
}

func (w *sessionWorld) accuracyIs(n int) error {
	if w.summary == nil {
		return errors.New("no summary available")
	}
	if got := w.summary.Accuracy(); got != n {
		return fmt.Errorf("expected accuracy %d, got %d", n, got)
	}
	return nil
}

func (w *sessionWorld) rejectedAsInvalid() error {
	if !errors.Is(w.lastErr, ErrInvalidTransition) {
		return fmt.Errorf("expected an invalid transition, got %v", w.lastErr)
	}
	return nil
}

func (w *sessionWorld) feedbackDiscarded() error {
	if w.attached {
		return errors.New("late feedback was attached")
	}
	if v := w.engine.View(); v.Feedback != "" {
		return fmt.Errorf("current question shows feedback %q", v.Feedback)
	}
	return nil
}

func tallyAccuracy(correct, incorrect, want int) error {
	if got := Accuracy(correct, incorrect); got != want {
		return fmt.Errorf("expected accuracy %d, got %d", want, got)
	}
	return nil
}

func initializeSessionScenario(ctx *godog.ScenarioContext) {
	w := &sessionWorld{}

	ctx.Step(`^a practice session with (\d+) questions whose correct answer is "([^"]*)"$`, w.sessionWithQuestions)
	ctx.Step(`^the learner selects "([^"]*)"$`, w.selects)
	ctx.Step(`^the learner submits the answer$`, w.submits)
	ctx.Step(`^the learner advances$`, w.advances)
	ctx.Step(`^the learner retreats$`, w.retreats)
	ctx.Step(`^the learner asks for feedback with "([^"]*)"$`, w.asksForFeedback)
	ctx.Step(`^the feedback "([^"]*)" arrives$`, w.feedbackArrives)
	ctx.Step(`^the correct count is (\d+)$`, w.correctCountIs)
	ctx.Step(`^the incorrect count is (\d+)$`, w.incorrectCountIs)
	ctx.Step(`^the position is (\d+)$`, w.positionIs)
	ctx.Step(`^the selected answer is "([^"]*)"$`, w.selectedAnswerIs)
	ctx.Step(`^the session is finished with tallies (\d+) and (\d+)$`, w.finishedWithTallies)
	ctx.Step(`^the accuracy is (\d+)$`, w.accuracyIs)
	ctx.Step(`^the last operation was rejected as an invalid transition$`, w.rejectedAsInvalid)
	ctx.Step(`^the feedback was discarded$`, w.feedbackDiscarded)
	ctx.Step(`^a tally of (\d+) correct and (\d+) incorrect has accuracy (\d+)$`, tallyAccuracy)
}
