package models

import "time"

// PracticeResult is the final tally of a finished practice session.
type PracticeResult struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SessionID      string    `gorm:"size:36;uniqueIndex;not null" json:"session_id"`
	Topic          string    `gorm:"size:100;not null;index" json:"topic"`
	Locale         string    `gorm:"size:5;not null;default:'en'" json:"locale"`
	CorrectCount   int       `gorm:"not null;default:0" json:"correct_count"`
	IncorrectCount int       `gorm:"not null;default:0" json:"incorrect_count"`
	TotalQuestions int       `gorm:"not null;default:0" json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}
