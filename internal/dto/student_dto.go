package dto

import (
	"time"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// StudentResponse serializes a learner.
type StudentResponse struct {
	ID        uint      `json:"id"`
	AccountID uint      `json:"account_id"`
	GitHub    string    `json:"github"`
	IsActive  bool      `json:"is_active"`
	ProgramID uint      `json:"program_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStudentResponse converts a Student model into a DTO.
func NewStudentResponse(model models.Student) StudentResponse {
	return StudentResponse{
		ID:        model.ID,
		AccountID: model.AccountID,
		GitHub:    model.GitHub,
		IsActive:  model.IsActive,
		ProgramID: model.ProgramID,
		CreatedAt: model.CreatedAt,
	}
}

// NewStudentResponses maps a student collection.
func NewStudentResponses(items []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewStudentResponse(item))
	}
	return responses
}

// StudentDashboardResponse aggregates a learner's standing: reachable
// courses, submission-state counts and the completion-weighted average grade.
// AverageGrade is nil while the student has no rows or no grades.
type StudentDashboardResponse struct {
	Student      StudentResponse  `json:"student"`
	Courses      []CourseResponse `json:"courses"`
	TotalRows    int              `json:"total_rows"`
	Submitted    int              `json:"submitted"`
	Unsubmitted  int              `json:"unsubmitted"`
	Graded       int              `json:"graded"`
	AverageGrade *float64         `json:"average_grade"`
	CoursesLink  string           `json:"courses_link,omitempty"`
	CacheHit     bool             `json:"-"`
}

// StudentAssignmentLine is one row of the student-assignments view: the
// assignment together with the student's average grade for it and how many
// submission rows they hold against it.
type StudentAssignmentLine struct {
	Assignment      AssignmentResponse `json:"assignment"`
	AverageGrade    *float64           `json:"average_grade"`
	SubmissionCount int64              `json:"submission_count"`
}

// StudentAssignmentsResponse is the full student-assignments view.
type StudentAssignmentsResponse struct {
	Student StudentResponse         `json:"student"`
	Items   []StudentAssignmentLine `json:"items"`
}
