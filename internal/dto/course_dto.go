package dto

import (
	"time"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// CourseCreateRequest carries the course creation form.
type CourseCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=128"`
}

// CourseResponse serializes a course.
type CourseResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCourseResponse converts a Course model into a DTO.
func NewCourseResponse(model models.Course) CourseResponse {
	return CourseResponse{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}

// NewCourseResponses maps a course collection.
func NewCourseResponses(items []models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewCourseResponse(item))
	}
	return responses
}

// CourseDetailResponse aggregates everything keyed by one course: programs
// scheduling it, the roster, the content and assignments under it, and the
// full set of submission rows (historically named "completed").
type CourseDetailResponse struct {
	Course          CourseResponse       `json:"course"`
	Programs        []ProgramResponse    `json:"programs"`
	Students        []StudentResponse    `json:"students"`
	Content         []ContentResponse    `json:"content"`
	Assignments     []AssignmentResponse `json:"assignments"`
	Completed       []SubmissionResponse `json:"completed"`
	StudentsLink    string               `json:"students_link,omitempty"`
	AssignmentsLink string               `json:"assignments_link,omitempty"`
}
