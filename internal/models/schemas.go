package models

import "time"

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

type UserResponse struct {
	ID           uint                  `json:"id"`
	Email        string                `json:"email"`
	FullName     string                `json:"full_name"`
	Applications []ApplicationResponse `json:"applications"`
}

type CreateApplicationRequest struct {
	CompanyName string  `json:"company_name" validate:"required"`
	RoleTitle   string  `json:"role_title" validate:"required"`
	JobLink     *string `json:"job_link" validate:"omitempty,url"`
	Status      string  `json:"status"`
}

type ApplicationResponse struct {
	ID          uint      `json:"id"`
	CompanyName string    `json:"company_name"`
	RoleTitle   string    `json:"role_title"`
	JobLink     *string   `json:"job_link"`
	Status      string    `json:"status"`
	DateApplied time.Time `json:"date_applied"`
	UserID      uint      `json:"user_id"`
}

type AnswerSubmission struct {
	Question      string `json:"question" validate:"required"`
	IdealAnswer   string `json:"ideal_answer" validate:"required"`
	StudentAnswer string `json:"student_answer" validate:"required"`
	UserID        *uint  `json:"user_id,omitempty"`
	QuestionID    *uint  `json:"question_id,omitempty"`
}

type AIResponse struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

type AudioAnalysisResponse struct {
	Transcript   string `json:"transcript"`
	FillerCount  int    `json:"filler_count"`
	Details      string `json:"details"`
	FluencyScore int    `json:"fluency_score"`
}

type ResumeResponse struct {
	Filename        string   `json:"filename"`
	SuggestedTopics []string `json:"suggested_topics"`
	CharacterCount  int      `json:"character_count"`
}

type HistoryResponse struct {
	Interviews []MockInterview `json:"interviews"`
	Attempts   []Attempt       `json:"attempts"`
}

func NewApplicationResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          app.ID,
		CompanyName: app.CompanyName,
		RoleTitle:   app.RoleTitle,
		JobLink:     app.JobLink,
		Status:      app.Status,
		DateApplied: app.DateApplied,
		UserID:      app.UserID,
	}
}

func NewUserResponse(user User) UserResponse {
	apps := make([]ApplicationResponse, 0, len(user.Applications))
	for _, app := range user.Applications {
		apps = append(apps, NewApplicationResponse(app))
	}

	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Applications: apps,
	}
}
