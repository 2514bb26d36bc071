package models

import "time"

// Student represents a learner enrolled in a program.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"uniqueIndex;not null" json:"account_id"`
	GitHub    string    `gorm:"column:github;size:39;uniqueIndex;not null" json:"github"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	ProgramID uint      `gorm:"index;not null" json:"program_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Program   Program   `json:"program"`
}
