package models

import "time"

type TheoryQuestion struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Subject      string     `gorm:"type:text;index" json:"subject"`
	QuestionText string     `gorm:"type:text;not null" json:"question_text"`
	IdealAnswer  string     `gorm:"type:text;not null" json:"ideal_answer"`
	IndexedAt    *time.Time `json:"-"`
}

func (TheoryQuestion) TableName() string {
	return "theory_questions"
}

// SearchText is the text embedded into the question index.
func (q TheoryQuestion) SearchText() string {
	return q.Subject + ": " + q.QuestionText
}

type CodingQuestion struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	InitialCode    string     `gorm:"type:text" json:"initial_code"`
	TestCaseInput  string     `gorm:"type:text" json:"test_case_input"`
	ExpectedOutput string     `gorm:"type:text" json:"expected_output"`
	IndexedAt      *time.Time `json:"-"`
}

func (CodingQuestion) TableName() string {
	return "coding_questions"
}

func (q CodingQuestion) SearchText() string {
	return q.Title + ": " + q.Description
}
