package services

import (
	"context"
	"errors"

	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/practice"

	"gorm.io/gorm"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

func (s *ResultService) Save(ctx context.Context, r *models.PracticeResult) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *ResultService) GetBySession(ctx context.Context, sessionID string) (*models.PracticeResult, error) {
	var r models.PracticeResult
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return &r, nil
}

type TopicStats struct {
	Topic          string `json:"topic"`
	Sessions       int64  `json:"sessions"`
	CorrectCount   int    `json:"correct_count"`
	IncorrectCount int    `json:"incorrect_count"`
	Accuracy       int    `json:"accuracy"`
}

// TopicStats aggregates every finished session for topic.
func (s *ResultService) TopicStats(ctx context.Context, topic string) (*TopicStats, error) {
	var row struct {
		Sessions       int64
		CorrectCount   int
		IncorrectCount int
	}
	err := s.db.WithContext(ctx).Model(&models.PracticeResult{}).
		Select("COUNT(*) AS sessions, COALESCE(SUM(correct_count), 0) AS correct_count, COALESCE(SUM(incorrect_count), 0) AS incorrect_count").
		Where("topic = ?", topic).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &TopicStats{
		Topic:          topic,
		Sessions:       row.Sessions,
		CorrectCount:   row.CorrectCount,
		IncorrectCount: row.IncorrectCount,
		Accuracy:       practice.Accuracy(row.CorrectCount, row.IncorrectCount),
	}, nil
}
