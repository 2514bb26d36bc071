package models

import "time"

// Faculty represents an instructor who owns content and reviews submissions.
type Faculty struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"uniqueIndex;not null" json:"account_id"`
	GitHub    string    `gorm:"column:github;size:39;uniqueIndex;not null" json:"github"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
