package models

import "time"

// StudentAssignment status values.
const (
	StudentAssignmentStatusAssigned  = "assigned"
	StudentAssignmentStatusSubmitted = "submitted"
	StudentAssignmentStatusGraded    = "graded"
)

// StudentAssignment is one student's submission/grading record against one
// assignment. Reviewed, ReviewerID and Feedback are stamped together when a
// faculty member grades the submission.
type StudentAssignment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	StudentID    uint       `gorm:"not null;index" json:"student_id"`
	AssignmentID uint       `gorm:"not null;index" json:"assignment_id"`
	Grade        *float64   `json:"grade"`
	Submitted    *time.Time `json:"submitted"`
	Reviewed     *time.Time `json:"reviewed"`
	ReviewerID   *uint      `gorm:"index" json:"reviewer_id"`
	Feedback     *string    `gorm:"type:text" json:"feedback"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Student      Student    `json:"student"`
	Assignment   Assignment `json:"assignment"`
}

// IsSubmitted reports whether the student has turned the work in.
func (s StudentAssignment) IsSubmitted() bool {
	return s.Submitted != nil
}

// IsGraded reports whether a reviewer has recorded a grade for a submitted row.
func (s StudentAssignment) IsGraded() bool {
	return s.Submitted != nil && s.Grade != nil
}

// Status derives the lifecycle state from the nullable columns.
func (s StudentAssignment) Status() string {
	switch {
	case s.IsGraded():
		return StudentAssignmentStatusGraded
	case s.IsSubmitted():
		return StudentAssignmentStatusSubmitted
	default:
		return StudentAssignmentStatusAssigned
	}
}
