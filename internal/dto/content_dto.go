package dto

import (
	"time"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// ContentResponse serializes faculty-owned content.
type ContentResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	FacultyID uint      `json:"faculty_id"`
	Repo      string    `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContentResponse converts a Content model into a DTO.
func NewContentResponse(model models.Content) ContentResponse {
	return ContentResponse{
		ID:        model.ID,
		Name:      model.Name,
		FacultyID: model.FacultyID,
		Repo:      model.Repo,
		CreatedAt: model.CreatedAt,
	}
}

// NewContentResponses maps a content collection.
func NewContentResponses(items []models.Content) []ContentResponse {
	responses := make([]ContentResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewContentResponse(item))
	}
	return responses
}

// ContentDetailResponse shows where a body of content is used.
type ContentDetailResponse struct {
	Content         ContentResponse      `json:"content"`
	Courses         []CourseResponse     `json:"courses"`
	Assignments     []AssignmentResponse `json:"assignments"`
	CoursesLink     string               `json:"courses_link,omitempty"`
	AssignmentsLink string               `json:"assignments_link,omitempty"`
}
