package services

import (
	"errors"

	"github.com/arturxdev/interview-helper/internal/store"
)

var (
	ErrQuestionNotFound = store.ErrQuestionNotFound
	ErrTopicNotFound    = store.ErrTopicNotFound

	// ErrTopicUnavailable means the topic has no questions to practice.
	ErrTopicUnavailable = errors.New("topic has no questions available")
	ErrSessionNotFound  = errors.New("practice session not found")
	ErrResultNotFound   = errors.New("result not found")
)
