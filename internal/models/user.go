package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	FullName       string    `gorm:"type:text" json:"full_name"`
	HashedPassword string    `gorm:"type:text" json:"-"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Applications []Application   `gorm:"foreignKey:UserID" json:"applications"`
	Interviews   []MockInterview `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
