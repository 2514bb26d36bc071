package dto

import (
	"time"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// AssignmentCreateRequest carries the assignment creation form. All fields
// are required; Due is an RFC 3339 or YYYY-MM-DD date.
type AssignmentCreateRequest struct {
	ProgramID    uint   `json:"program_id" validate:"required,gt=0"`
	CourseID     uint   `json:"course_id" validate:"required,gt=0"`
	ContentID    uint   `json:"content_id" validate:"required,gt=0"`
	Due          string `json:"due" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
	Rubric       string `json:"rubric" validate:"required"`
}

// AssignmentResponse serializes an assignment with the names of the entities
// it ties together when they were preloaded.
type AssignmentResponse struct {
	ID           uint      `json:"id"`
	ProgramID    uint      `json:"program_id"`
	CourseID     uint      `json:"course_id"`
	ContentID    uint      `json:"content_id"`
	ProgramName  string    `json:"program_name,omitempty"`
	CourseName   string    `json:"course_name,omitempty"`
	ContentName  string    `json:"content_name,omitempty"`
	Due          time.Time `json:"due"`
	Instructions string    `json:"instructions"`
	Rubric       string    `json:"rubric"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewAssignmentResponse converts an Assignment model into a DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           model.ID,
		ProgramID:    model.ProgramID,
		CourseID:     model.CourseID,
		ContentID:    model.ContentID,
		ProgramName:  model.Program.Name,
		CourseName:   model.Course.Name,
		ContentName:  model.Content.Name,
		Due:          model.Due,
		Instructions: model.Instructions,
		Rubric:       model.Rubric,
		CreatedAt:    model.CreatedAt,
	}
}

// NewAssignmentResponses maps an assignment collection.
func NewAssignmentResponses(items []models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewAssignmentResponse(item))
	}
	return responses
}

// AssignmentDetailResponse adds the derived statistics to an assignment view.
// AverageGrade is nil when the assignment has no rows or no grades yet.
type AssignmentDetailResponse struct {
	Assignment      AssignmentResponse   `json:"assignment"`
	AverageGrade    *float64             `json:"average_grade"`
	Submissions     []SubmissionResponse `json:"submissions"`
	SubmissionsLink string               `json:"submissions_link,omitempty"`
}
