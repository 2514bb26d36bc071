package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/models"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ErrAssignmentNotFound indicates the assignment was not located.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrAssignmentExists indicates the (program, course, content) triple is
// already scheduled.
var ErrAssignmentExists = errors.New("assignment already exists for program, course and content")

// ErrInvalidDueDate indicates the due date could not be parsed.
var ErrInvalidDueDate = errors.New("invalid due date")

// AssignmentService exposes assignment listings, the creation form and the
// per-assignment statistics.
type AssignmentService interface {
	List(ctx context.Context) ([]dto.AssignmentResponse, error)
	Create(ctx context.Context, payload dto.AssignmentCreateRequest, actor ActivityActor) (dto.AssignmentResponse, error)
	Detail(ctx context.Context, assignmentID uint) (dto.AssignmentDetailResponse, error)
	AverageGrade(ctx context.Context, assignmentID uint) (float64, error)
	Delete(ctx context.Context, assignmentID uint, actor ActivityActor) error
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	validator *validator.Validate
	activity  ActivityRecorder
	crossref  utils.CrossRef
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

// NewAssignmentService constructs the assignment service.
func NewAssignmentService(repo repository.AssignmentRepository, validator *validator.Validate, activity ActivityRecorder, crossref utils.CrossRef, logger zerolog.Logger) AssignmentService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("p", "strong", "em", "a", "ul", "ol", "li", "br", "code", "pre")
	policy.AllowAttrs("href", "title", "target").OnElements("a")

	return &assignmentService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		crossref:  crossref,
		policy:    policy,
		logger:    logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) List(ctx context.Context) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewAssignmentResponses(assignments), nil
}

func (s *assignmentService) Create(ctx context.Context, payload dto.AssignmentCreateRequest, actor ActivityActor) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	due, err := parseDueDate(payload.Due)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	assignment := models.Assignment{
		ProgramID:    payload.ProgramID,
		CourseID:     payload.CourseID,
		ContentID:    payload.ContentID,
		Due:          due,
		Instructions: s.policy.Sanitize(strings.TrimSpace(payload.Instructions)),
		Rubric:       s.policy.Sanitize(strings.TrimSpace(payload.Rubric)),
	}

	if err := s.repo.Create(ctx, &assignment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return dto.AssignmentResponse{}, ErrAssignmentExists
		}
		return dto.AssignmentResponse{}, err
	}

	if s.activity != nil {
		_, _ = s.activity.Record(ctx, ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "assignment.created",
			EntityType: "assignment",
			EntityID:   &assignment.ID,
			Metadata: map[string]interface{}{
				"program_id": assignment.ProgramID,
				"course_id":  assignment.CourseID,
				"content_id": assignment.ContentID,
			},
		})
	}

	s.logger.Info().Uint("assignment_id", assignment.ID).Msg("assignment created")
	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) Detail(ctx context.Context, assignmentID uint) (dto.AssignmentDetailResponse, error) {
	assignment, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.AssignmentDetailResponse{}, ErrAssignmentNotFound
		}
		return dto.AssignmentDetailResponse{}, err
	}

	submissions, err := s.repo.Submissions(ctx, assignmentID, nil)
	if err != nil {
		return dto.AssignmentDetailResponse{}, err
	}

	detail := dto.AssignmentDetailResponse{
		Assignment:      dto.NewAssignmentResponse(assignment),
		Submissions:     dto.NewSubmissionResponses(submissions),
		SubmissionsLink: s.crossref.Link("submissions", submissionIDs(submissions)),
	}

	average, err := completionWeightedAverage(submissions)
	switch {
	case err == nil:
		detail.AverageGrade = &average
	case errors.Is(err, ErrNoRecords), errors.Is(err, ErrNoGrades):
		// no data yet, leave the average null
	default:
		return dto.AssignmentDetailResponse{}, err
	}

	return detail, nil
}

// AverageGrade returns the assignment's completion-weighted average: graded
// submissions summed over the total row count, rounded to 2 decimals.
func (s *assignmentService) AverageGrade(ctx context.Context, assignmentID uint) (float64, error) {
	if _, err := s.repo.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrAssignmentNotFound
		}
		return 0, err
	}

	rows, err := s.repo.Submissions(ctx, assignmentID, nil)
	if err != nil {
		return 0, err
	}

	return completionWeightedAverage(rows)
}

func (s *assignmentService) Delete(ctx context.Context, assignmentID uint, actor ActivityActor) error {
	if err := s.repo.Delete(ctx, assignmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}

	if s.activity != nil {
		_, _ = s.activity.Record(ctx, ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "assignment.deleted",
			EntityType: "assignment",
			EntityID:   &assignmentID,
		})
	}

	return nil
}

func parseDueDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if due, err := time.Parse(layout, raw); err == nil {
			return due, nil
		}
	}
	return time.Time{}, ErrInvalidDueDate
}
