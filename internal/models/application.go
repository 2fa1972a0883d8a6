package models

import "time"

const StatusApplied = "Applied"

type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyName string    `gorm:"type:text;index" json:"company_name"`
	RoleTitle   string    `gorm:"type:text" json:"role_title"`
	JobLink     *string   `gorm:"type:text" json:"job_link"`
	Status      string    `gorm:"type:text;not null;default:'Applied'" json:"status"`
	DateApplied time.Time `json:"date_applied"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
}

func (Application) TableName() string {
	return "applications"
}
