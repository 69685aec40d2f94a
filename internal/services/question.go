package services

import (
	"context"

	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/store"
)

type QuestionRepository interface {
	Find(ctx context.Context, filter store.QuestionFilter) ([]models.Question, error)
	Sample(ctx context.Context, filter store.QuestionFilter, size int) ([]models.Question, error)
	FindByID(ctx context.Context, id string) (*models.Question, error)
	Create(ctx context.Context, q *models.Question) error
	Update(ctx context.Context, id string, q *models.Question) (*models.Question, error)
	Delete(ctx context.Context, id string) error
}

type QuestionService struct {
	repo       QuestionRepository
	sampleSize int
}

func NewQuestionService(repo QuestionRepository, sampleSize int) *QuestionService {
	if sampleSize <= 0 {
		sampleSize = 10
	}
	return &QuestionService{repo: repo, sampleSize: sampleSize}
}

// List returns matching questions. Randomized listings are a random sample
// capped at the configured size.
func (s *QuestionService) List(ctx context.Context, filter store.QuestionFilter, randomize bool) ([]models.Question, error) {
	if randomize {
		return s.repo.Sample(ctx, filter, s.sampleSize)
	}
	return s.repo.Find(ctx, filter)
}

// FetchSequence loads the questions for one practice run over topic.
// An empty result is not an error; the caller decides what to do with it.
func (s *QuestionService) FetchSequence(ctx context.Context, topic string, randomize bool) ([]models.Question, error) {
	return s.List(ctx, store.QuestionFilter{Topic: topic}, randomize)
}

func (s *QuestionService) Get(ctx context.Context, id string) (*models.Question, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *QuestionService) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Update(ctx context.Context, id string, q *models.Question) (*models.Question, error) {
	return s.repo.Update(ctx, id, q)
}

func (s *QuestionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
