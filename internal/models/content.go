package models

import "time"

// Content is a faculty-owned body of material backed by an external repository.
// Content deliberately carries no cascade from Faculty: material outlives the
// instructor who authored it.
type Content struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	FacultyID uint      `gorm:"index;not null" json:"faculty_id"`
	Repo      string    `gorm:"size:240;uniqueIndex;not null" json:"repo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
