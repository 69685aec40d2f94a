package services

import (
	"context"
	"fmt"
	"log"

	"github.com/arturxdev/interview-helper/internal/models"
)

type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	FindByID(ctx context.Context, id string) (*models.Topic, error)
	SetQuestionCount(ctx context.Context, id string, count int) error
}

type QuestionCounter interface {
	CountByTopic(ctx context.Context, topic string) (int, error)
}

// TopicCache holds the topic list between reads. Implementations treat
// backend errors as misses.
type TopicCache interface {
	Get(ctx context.Context) ([]models.Topic, bool)
	Set(ctx context.Context, topics []models.Topic)
	Invalidate(ctx context.Context)
}

type TopicService struct {
	repo    TopicRepository
	counter QuestionCounter
	cache   TopicCache
}

// NewTopicService builds the service; cache may be nil.
func NewTopicService(repo TopicRepository, counter QuestionCounter, cache TopicCache) *TopicService {
	return &TopicService{repo: repo, counter: counter, cache: cache}
}

func (s *TopicService) List(ctx context.Context) ([]models.Topic, error) {
	if s.cache != nil {
		if topics, ok := s.cache.Get(ctx); ok {
			return topics, nil
		}
	}
	topics, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, topics)
	}
	return topics, nil
}

func (s *TopicService) Get(ctx context.Context, id string) (*models.Topic, error) {
	return s.repo.FindByID(ctx, id)
}

// RefreshCounts recomputes the denormalized question count of every topic.
// Counts are eventually consistent; question writes never touch them.
func (s *TopicService) RefreshCounts(ctx context.Context) (map[string]int, error) {
	topics, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(topics))
	for _, t := range topics {
		n, err := s.counter.CountByTopic(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", t.ID, err)
		}
		if err := s.repo.SetQuestionCount(ctx, t.ID, n); err != nil {
			return nil, err
		}
		counts[t.ID] = n
		log.Printf("topics: %s has %d questions", t.ID, n)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return counts, nil
}
