package models

import "time"

// Assignment ties a Program, Course and Content together with a due date and
// grading rubric. The triple is unique: a program never repeats the same
// course+content pairing.
type Assignment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProgramID    uint      `gorm:"not null;uniqueIndex:idx_assignments_triple" json:"program_id"`
	CourseID     uint      `gorm:"not null;uniqueIndex:idx_assignments_triple" json:"course_id"`
	ContentID    uint      `gorm:"not null;uniqueIndex:idx_assignments_triple" json:"content_id"`
	Due          time.Time `gorm:"not null" json:"due"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	Rubric       string    `gorm:"type:text;not null" json:"rubric"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Program      Program   `json:"program"`
	Course       Course    `json:"course"`
	Content      Content   `json:"content"`
}

// IsPastDue reports whether the deadline has already passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	return reference.After(a.Due)
}
