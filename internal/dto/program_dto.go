package dto

import (
	"time"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// ProgramResponse serializes a cohort program.
type ProgramResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProgramResponse converts a Program model into a DTO.
func NewProgramResponse(model models.Program) ProgramResponse {
	return ProgramResponse{
		ID:        model.ID,
		Name:      model.Name,
		Start:     model.Start,
		End:       model.End,
		CreatedAt: model.CreatedAt,
	}
}

// NewProgramResponses maps a program collection.
func NewProgramResponses(items []models.Program) []ProgramResponse {
	responses := make([]ProgramResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewProgramResponse(item))
	}
	return responses
}

// ProgramDetailResponse is the program dashboard payload: the cohort plus its
// courses and roster, with cross-reference links into the related listings.
type ProgramDetailResponse struct {
	Program      ProgramResponse   `json:"program"`
	Courses      []CourseResponse  `json:"courses"`
	Students     []StudentResponse `json:"students"`
	CoursesLink  string            `json:"courses_link,omitempty"`
	StudentsLink string            `json:"students_link,omitempty"`
}
