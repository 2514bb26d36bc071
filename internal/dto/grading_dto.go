package dto

import (
	"time"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// GradeSubmissionRequest is the grading form: score and feedback are recorded
// together with the reviewing faculty and the review instant.
type GradeSubmissionRequest struct {
	Score    float64 `json:"score" validate:"gte=0,lte=100"`
	Feedback string  `json:"feedback" validate:"required,min=3"`
}

// SubmissionResponse serializes one student-assignment row.
type SubmissionResponse struct {
	ID           uint       `json:"id"`
	StudentID    uint       `json:"student_id"`
	AssignmentID uint       `json:"assignment_id"`
	Status       string     `json:"status"`
	Grade        *float64   `json:"grade"`
	Submitted    *time.Time `json:"submitted"`
	Reviewed     *time.Time `json:"reviewed"`
	ReviewerID   *uint      `json:"reviewer_id"`
	Feedback     *string    `json:"feedback"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewSubmissionResponse converts a StudentAssignment model into a DTO.
func NewSubmissionResponse(model models.StudentAssignment) SubmissionResponse {
	return SubmissionResponse{
		ID:           model.ID,
		StudentID:    model.StudentID,
		AssignmentID: model.AssignmentID,
		Status:       model.Status(),
		Grade:        model.Grade,
		Submitted:    model.Submitted,
		Reviewed:     model.Reviewed,
		ReviewerID:   model.ReviewerID,
		Feedback:     model.Feedback,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// NewSubmissionResponses maps a submission-row collection.
func NewSubmissionResponses(items []models.StudentAssignment) []SubmissionResponse {
	responses := make([]SubmissionResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewSubmissionResponse(item))
	}
	return responses
}
