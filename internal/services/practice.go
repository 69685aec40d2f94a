package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/practice"
	"github.com/arturxdev/interview-helper/internal/ws"

	"github.com/google/uuid"
)

type SequenceFetcher interface {
	FetchSequence(ctx context.Context, topic string, randomize bool) ([]models.Question, error)
}

type FeedbackEvaluator interface {
	IsAvailable() bool
	Evaluate(ctx context.Context, r FeedbackRequest) (string, error)
}

type ResultRecorder interface {
	Save(ctx context.Context, r *models.PracticeResult) error
}

type Notifier interface {
	Broadcast(sessionID string, message ws.WSMessage)
	CloseSession(sessionID string)
}

type practiceSession struct {
	mu       sync.Mutex
	engine   *practice.Engine
	lastSeen time.Time
}

// PracticeService keeps the live practice sessions. Each session has its own
// lock; feedback resolves on a background goroutine under that lock.
type PracticeService struct {
	fetcher  SequenceFetcher
	feedback FeedbackEvaluator
	results  ResultRecorder
	notifier Notifier

	feedbackTimeout time.Duration
	idleTTL         time.Duration
	now             func() time.Time

	mu       sync.RWMutex
	sessions map[string]*practiceSession
	pending  sync.WaitGroup
}

type PracticeOptions struct {
	FeedbackTimeout time.Duration
	IdleTTL         time.Duration
}

// NewPracticeService wires the session registry. results and notifier may be nil.
func NewPracticeService(fetcher SequenceFetcher, feedback FeedbackEvaluator, results ResultRecorder, notifier Notifier, opts PracticeOptions) *PracticeService {
	if opts.FeedbackTimeout <= 0 {
		opts.FeedbackTimeout = 60 * time.Second
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 2 * time.Hour
	}
	return &PracticeService{
		fetcher:         fetcher,
		feedback:        feedback,
		results:         results,
		notifier:        notifier,
		feedbackTimeout: opts.FeedbackTimeout,
		idleTTL:         opts.IdleTTL,
		now:             time.Now,
		sessions:        make(map[string]*practiceSession),
	}
}

type StartResult struct {
	SessionID string        `json:"session_id"`
	State     practice.View `json:"state"`
}

// Start fetches the question sequence for topic and opens a session over it.
// A topic without questions yields ErrTopicUnavailable and no session.
func (s *PracticeService) Start(ctx context.Context, topic string, randomize bool, locale models.Locale) (*StartResult, error) {
	seq, err := s.fetcher.FetchSequence(ctx, topic, randomize)
	if err != nil {
		return nil, fmt.Errorf("fetch questions for %s: %w", topic, err)
	}
	if len(seq) == 0 {
		return nil, ErrTopicUnavailable
	}
	engine, err := practice.New(topic, seq, locale)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	sess := &practiceSession{engine: engine, lastSeen: s.now()}
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	log.Printf("practice: session %s started on %s with %d questions", id, topic, len(seq))
	return &StartResult{SessionID: id, State: engine.View()}, nil
}

func (s *PracticeService) lookup(id string) (*practiceSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// with runs fn on the session's engine under its lock and returns the view
// produced afterwards.
func (s *PracticeService) with(id string, fn func(e *practice.Engine) error) (practice.View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return practice.View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.lastSeen = s.now()
	if err := fn(sess.engine); err != nil {
		return sess.engine.View(), err
	}
	return sess.engine.View(), nil
}

func (s *PracticeService) State(id string) (practice.View, error) {
	return s.with(id, func(*practice.Engine) error { return nil })
}

func (s *PracticeService) Select(id, answer string) (practice.View, error) {
	return s.with(id, func(e *practice.Engine) error { return e.SelectAnswer(answer) })
}

func (s *PracticeService) Submit(id string) (practice.View, error) {
	return s.with(id, func(e *practice.Engine) error {
		_, err := e.SubmitAnswer()
		return err
	})
}

func (s *PracticeService) Previous(id string) (practice.View, error) {
	return s.with(id, func(e *practice.Engine) error { return e.Retreat() })
}

func (s *PracticeService) SetLocale(id string, locale models.Locale) (practice.View, error) {
	return s.with(id, func(e *practice.Engine) error { return e.SetLocale(locale) })
}

// Feedback records the justification and asks the evaluator in the
// background. The returned view shows the request as pending; the outcome is
// pushed to the session's websocket clients and visible through State.
func (s *PracticeService) Feedback(id, justification string) (practice.View, error) {
	if s.feedback == nil || !s.feedback.IsAvailable() {
		return practice.View{}, ErrFeedbackUnavailable
	}
	sess, err := s.lookup(id)
	if err != nil {
		return practice.View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()

	ticket, err := sess.engine.RequestFeedback(justification)
	if err != nil {
		return sess.engine.View(), err
	}
	locale := sess.engine.Locale()

	s.pending.Add(1)
	go s.resolveFeedback(id, sess, ticket, locale)

	return sess.engine.View(), nil
}

func (s *PracticeService) resolveFeedback(id string, sess *practiceSession, ticket practice.FeedbackTicket, locale models.Locale) {
	defer s.pending.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.feedbackTimeout)
	defer cancel()

	text, err := s.feedback.Evaluate(ctx, FeedbackRequest{
		Justification: ticket.Justification,
		Explanation:   ticket.Explanation,
		WasCorrect:    ticket.WasCorrect,
		Locale:        locale,
	})

	sess.mu.Lock()
	var attached bool
	msgType := ws.MessageFeedbackReady
	if err != nil {
		log.Printf("practice: feedback for session %s failed: %v", id, err)
		attached = sess.engine.FailFeedback(ticket)
		msgType = ws.MessageFeedbackFailed
	} else {
		attached = sess.engine.ResolveFeedback(ticket, text)
	}
	view := sess.engine.View()
	sess.mu.Unlock()

	if !attached {
		log.Printf("practice: discarded late feedback for session %s position %d", id, ticket.Position)
		return
	}
	if s.notifier != nil {
		s.notifier.Broadcast(id, ws.WSMessage{Type: msgType, Data: view})
	}
}

// WaitFeedback blocks until every in-flight feedback request has resolved.
func (s *PracticeService) WaitFeedback() {
	s.pending.Wait()
}

// Next advances the session. When the last question is left the session is
// closed, its result is stored and the summary is returned.
func (s *PracticeService) Next(ctx context.Context, id string) (practice.View, *practice.Summary, error) {
	var summary *practice.Summary
	view, err := s.with(id, func(e *practice.Engine) error {
		var err error
		summary, err = e.Advance()
		return err
	})
	if err != nil || summary == nil {
		return view, nil, err
	}

	s.remove(id)
	s.saveResult(ctx, id, view.Locale, summary)
	return view, summary, nil
}

func (s *PracticeService) saveResult(ctx context.Context, id string, locale models.Locale, summary *practice.Summary) {
	log.Printf("practice: session %s finished %d/%d correct", id, summary.CorrectCount, summary.Total)
	if s.results == nil {
		return
	}
	err := s.results.Save(ctx, &models.PracticeResult{
		SessionID:      id,
		Topic:          summary.Topic,
		Locale:         string(locale),
		CorrectCount:   summary.CorrectCount,
		IncorrectCount: summary.IncorrectCount,
		TotalQuestions: summary.Total,
	})
	if err != nil {
		log.Printf("practice: failed to store result for session %s: %v", id, err)
	}
}

func (s *PracticeService) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	if s.notifier != nil {
		s.notifier.CloseSession(id)
	}
}

func (s *PracticeService) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the configured TTL and returns
// how many were removed. Abandoned sessions store no result.
func (s *PracticeService) Sweep() int {
	cutoff := s.now().Add(-s.idleTTL)

	var stale []string
	s.mu.RLock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		if sess.lastSeen.Before(cutoff) {
			stale = append(stale, id)
		}
		sess.mu.Unlock()
	}
	s.mu.RUnlock()

	for _, id := range stale {
		s.remove(id)
	}
	if len(stale) > 0 {
		log.Printf("practice: dropped %d idle sessions", len(stale))
	}
	return len(stale)
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (s *PracticeService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
