package dto

import (
	"time"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// FacultyResponse serializes an instructor.
type FacultyResponse struct {
	ID        uint      `json:"id"`
	AccountID uint      `json:"account_id"`
	GitHub    string    `json:"github"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFacultyResponse converts a Faculty model into a DTO.
func NewFacultyResponse(model models.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:        model.ID,
		AccountID: model.AccountID,
		GitHub:    model.GitHub,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
	}
}

// NewFacultyResponses maps a faculty collection.
func NewFacultyResponses(items []models.Faculty) []FacultyResponse {
	responses := make([]FacultyResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewFacultyResponse(item))
	}
	return responses
}

// FacultyDashboardResponse aggregates an instructor's footprint: the programs
// and courses reached through their content, the assignments they created and
// the number of submissions they have graded.
type FacultyDashboardResponse struct {
	Faculty            FacultyResponse      `json:"faculty"`
	Programs           []ProgramResponse    `json:"programs"`
	Courses            []CourseResponse     `json:"courses"`
	AssignmentsCreated []AssignmentResponse `json:"assignments_created"`
	GradedCount        int                  `json:"graded_count"`
	CoursesLink        string               `json:"courses_link,omitempty"`
	AssignmentsLink    string               `json:"assignments_link,omitempty"`
	GradedLink         string               `json:"graded_link,omitempty"`
}
