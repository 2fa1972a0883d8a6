package models

import (
	"time"

	"gorm.io/datatypes"
)

type InterviewType string

const (
	InterviewTheory InterviewType = "theory"
	InterviewAudio  InterviewType = "audio"
)

type MockInterview struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	InterviewType InterviewType  `gorm:"type:text;not null" json:"interview_type"`
	Transcript    *string        `gorm:"type:text" json:"transcript"`
	Score         *float64       `json:"score"`
	Feedback      *string        `gorm:"type:text" json:"feedback"`
	Details       datatypes.JSON `json:"details,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
}

func (MockInterview) TableName() string {
	return "mock_interviews"
}

type QuestionKind string

const (
	KindTheory QuestionKind = "theory"
	KindCoding QuestionKind = "coding"
	KindAudio  QuestionKind = "audio"
)

// Attempt is one entry of a user's score history.
type Attempt struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"not null;index" json:"user_id"`
	QuestionKind QuestionKind `gorm:"type:text;not null" json:"question_kind"`
	QuestionID   *uint        `json:"question_id"`
	Score        float64      `gorm:"not null" json:"score"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}
