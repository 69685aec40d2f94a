// Package practice holds the quiz session engine: the state of one learner's
// run through a fixed question sequence and the rules for moving through it.
//
// The engine is not safe for concurrent use. Callers that share an engine
// between goroutines (for example to attach feedback that arrives after the
// learner has moved on) must serialise access themselves.
package practice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arturxdev/interview-helper/internal/models"
)

var (
	// ErrInvalidTransition is returned when an operation is invoked outside
	// its precondition. The engine state is left unchanged.
	ErrInvalidTransition = errors.New("invalid transition")

	ErrEmptySequence   = errors.New("question sequence is empty")
	ErrSessionFinished = fmt.Errorf("%w: session finished", ErrInvalidTransition)
)

func invalid(op, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidTransition, op, reason)
}

// FeedbackStatus tracks the feedback request for the current question.
type FeedbackStatus string

const (
	FeedbackNone    FeedbackStatus = "none"
	FeedbackPending FeedbackStatus = "pending"
	FeedbackReady   FeedbackStatus = "ready"
	FeedbackFailed  FeedbackStatus = "failed"
)

// FeedbackTicket identifies one feedback request. It is bound to the
// position, visit and request it was issued for so a result that resolves
// after the learner navigated away, or after a newer request on the same
// question, is dropped instead of attached to the wrong justification.
type FeedbackTicket struct {
	Position      int
	Visit         uint64
	Request       uint64
	Justification string
	Explanation   string
	WasCorrect    bool
}

// answerRecord is the immutable outcome of the first submission at a position.
type answerRecord struct {
	selected string
	correct  bool
}

// Engine is one learner's run through a fixed question sequence.
type Engine struct {
	topic    string
	locale   models.Locale
	sequence []models.Question

	position int
	visit    uint64
	request  uint64
	selected *string
	answered bool

	correctCount   int
	incorrectCount int
	records        map[int]answerRecord

	justification  string
	feedback       string
	feedbackStatus FeedbackStatus

	finished bool
}

// New starts a session over sequence. The slice is copied; the questions are
// treated as immutable for the life of the session.
func New(topic string, sequence []models.Question, locale models.Locale) (*Engine, error) {
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}
	if _, ok := models.ParseLocale(string(locale)); !ok {
		locale = models.LocaleEN
	}
	seq := make([]models.Question, len(sequence))
	copy(seq, sequence)
	return &Engine{
		topic:          topic,
		locale:         locale,
		sequence:       seq,
		records:        make(map[int]answerRecord, len(seq)),
		feedbackStatus: FeedbackNone,
	}, nil
}

func (e *Engine) Topic() string { return e.topic }
func (e *Engine) Locale() models.Locale { return e.locale }
func (e *Engine) Len() int { return len(e.sequence) }
func (e *Engine) Position() int { return e.position }
func (e *Engine) Answered() bool { return e.answered }
func (e *Engine) Finished() bool { return e.finished }
func (e *Engine) Counts() (correct, incorrect int) { return e.correctCount, e.incorrectCount }

func (e *Engine) SelectedAnswer() (string, bool) {
	if e.selected == nil {
		return "", false
	}
	return *e.selected, true
}

func (e *Engine) current() *models.Question {
	return &e.sequence[e.position]
}

// SetLocale switches the language questions are presented in. Scoring is
// unaffected because correct answers are locale-invariant.
func (e *Engine) SetLocale(l models.Locale) error {
	parsed, ok := models.ParseLocale(string(l))
	if !ok {
		return fmt.Errorf("unsupported locale %q", l)
	}
	e.locale = parsed
	return nil
}

// SelectAnswer records the learner's current choice. Once the question is
// answered the selection is locked.
func (e *Engine) SelectAnswer(choice string) error {
	if e.finished {
		return ErrSessionFinished
	}
	if e.answered {
		return invalid("select", "question already answered")
	}
	if choice == "" {
		return invalid("select", "empty answer")
	}
	e.selected = &choice
	return nil
}

// SubmitAnswer locks in the selection and updates the score. It is the only
// place the counters change and runs at most once per position.
func (e *Engine) SubmitAnswer() (bool, error) {
	if e.finished {
		return false, ErrSessionFinished
	}
	if e.answered {
		return false, invalid("submit", "question already answered")
	}
	if e.selected == nil {
		return false, invalid("submit", "no answer selected")
	}

	correct := *e.selected == e.current().CorrectAnswer.String()
	e.answered = true
	e.records[e.position] = answerRecord{selected: *e.selected, correct: correct}
	if correct {
		e.correctCount++
	} else {
		e.incorrectCount++
	}
	return correct, nil
}

// RequestFeedback marks feedback as pending for the current question and
// returns the ticket the caller hands to the feedback collaborator. It never
// blocks and does not touch the score.
func (e *Engine) RequestFeedback(justification string) (FeedbackTicket, error) {
	if e.finished {
		return FeedbackTicket{}, ErrSessionFinished
	}
	if !e.answered {
		return FeedbackTicket{}, invalid("feedback", "question not answered yet")
	}
	justification = strings.TrimSpace(justification)
	if justification == "" {
		return FeedbackTicket{}, invalid("feedback", "empty justification")
	}

	e.request++
	e.justification = justification
	e.feedback = ""
	e.feedbackStatus = FeedbackPending
	return FeedbackTicket{
		Position:      e.position,
		Visit:         e.visit,
		Request:       e.request,
		Justification: justification,
		Explanation:   e.current().Explanation.Get(e.locale),
		WasCorrect:    e.records[e.position].correct,
	}, nil
}

func (e *Engine) ticketCurrent(t FeedbackTicket) bool {
	return !e.finished && t.Position == e.position && t.Visit == e.visit && t.Request == e.request
}

// ResolveFeedback attaches text to the question the ticket was issued for.
// It reports false and changes nothing when the ticket is stale.
func (e *Engine) ResolveFeedback(t FeedbackTicket, text string) bool {
	if !e.ticketCurrent(t) {
		return false
	}
	e.feedback = text
	e.feedbackStatus = FeedbackReady
	return true
}

// FailFeedback degrades a pending request to "no feedback available".
func (e *Engine) FailFeedback(t FeedbackTicket) bool {
	if !e.ticketCurrent(t) {
		return false
	}
	e.feedback = ""
	e.feedbackStatus = FeedbackFailed
	return true
}

// Advance moves to the next question. From the last position the session
// becomes terminal and the final tally is returned; position stays put.
func (e *Engine) Advance() (*Summary, error) {
	if e.finished {
		return nil, ErrSessionFinished
	}
	if !e.answered {
		return nil, invalid("advance", "question not answered yet")
	}
	if e.position == len(e.sequence)-1 {
		e.finished = true
		s := e.Summary()
		return &s, nil
	}
	e.moveTo(e.position + 1)
	return nil, nil
}

// Retreat moves back one question. Revisited questions that were answered
// come back in review mode: the recorded answer is shown and cannot change.
func (e *Engine) Retreat() error {
	if e.finished {
		return ErrSessionFinished
	}
	if e.position == 0 {
		return invalid("retreat", "already at the first question")
	}
	e.moveTo(e.position - 1)
	return nil
}

func (e *Engine) moveTo(pos int) {
	e.position = pos
	e.visit++
	e.selected = nil
	e.answered = false
	e.justification = ""
	e.feedback = ""
	e.feedbackStatus = FeedbackNone

	if rec, ok := e.records[pos]; ok {
		sel := rec.selected
		e.selected = &sel
		e.answered = true
	}
}

func (e *Engine) Summary() Summary {
	return Summary{
		Topic:          e.topic,
		CorrectCount:   e.correctCount,
		IncorrectCount: e.incorrectCount,
		Total:          len(e.sequence),
	}
}
