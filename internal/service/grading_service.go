package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/observability"
	"github.com/voyage-hq/voyage-api/internal/repository"
)

// ErrSubmissionNotFound indicates the submission row was not located.
var ErrSubmissionNotFound = errors.New("submission not found")

// ErrAlreadySubmitted indicates the student already turned the work in.
var ErrAlreadySubmitted = errors.New("assignment already submitted")

// ErrNotSubmitted indicates grading was attempted before submission.
var ErrNotSubmitted = errors.New("assignment not yet submitted")

// GradingService drives the submission lifecycle: Assigned → Submitted →
// Graded, one direction only.
type GradingService interface {
	Submit(ctx context.Context, submissionID uint, actor ActivityActor) (dto.SubmissionResponse, error)
	Grade(ctx context.Context, submissionID uint, payload dto.GradeSubmissionRequest, actor ActivityActor) (dto.SubmissionResponse, error)
}

type gradingService struct {
	repo      repository.StudentAssignmentRepository
	validator *validator.Validate
	activity  ActivityRecorder
	policy    *bluemonday.Policy
	tracer    trace.Tracer
	logger    zerolog.Logger
	now       func() time.Time
}

// NewGradingService constructs the grading service.
func NewGradingService(repo repository.StudentAssignmentRepository, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) GradingService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("p", "strong", "em", "ul", "ol", "li", "br", "code", "pre")

	return &gradingService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		policy:    policy,
		tracer:    otel.Tracer("github.com/voyage-hq/voyage-api/internal/service/grading"),
		logger:    logger.With().Str("component", "grading_service").Logger(),
		now:       time.Now,
	}
}

func (s *gradingService) Submit(ctx context.Context, submissionID uint, actor ActivityActor) (dto.SubmissionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "grading.submit")
	span.SetAttributes(attribute.Int64("grading.submission_id", int64(submissionID)))
	defer span.End()

	row, err := s.repo.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			span.SetStatus(codes.Error, "submission_not_found")
			return dto.SubmissionResponse{}, ErrSubmissionNotFound
		}
		span.RecordError(err)
		return dto.SubmissionResponse{}, err
	}

	if row.IsSubmitted() {
		span.SetStatus(codes.Error, "already_submitted")
		return dto.SubmissionResponse{}, ErrAlreadySubmitted
	}

	submitted := s.now()
	row.Submitted = &submitted

	if err := s.repo.Update(ctx, &row); err != nil {
		span.RecordError(err)
		return dto.SubmissionResponse{}, err
	}

	observability.Submissions().Inc()

	if s.activity != nil {
		_, _ = s.activity.Record(ctx, ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "submission.submitted",
			EntityType: "student_assignment",
			EntityID:   &row.ID,
			Metadata: map[string]interface{}{
				"student_id":    row.StudentID,
				"assignment_id": row.AssignmentID,
			},
		})
	}

	s.logger.Info().Uint("submission_id", row.ID).Uint("student_id", row.StudentID).Msg("assignment submitted")
	return dto.NewSubmissionResponse(row), nil
}

// Grade records score, feedback, reviewer and the review instant together.
// Grading an unsubmitted row is rejected: allowing it would mint rows whose
// grade predates their submission.
func (s *gradingService) Grade(ctx context.Context, submissionID uint, payload dto.GradeSubmissionRequest, actor ActivityActor) (dto.SubmissionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "grading.grade")
	span.SetAttributes(
		attribute.Int64("grading.submission_id", int64(submissionID)),
		attribute.Int64("grading.actor_id", int64(actor.ID)),
	)
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.SetStatus(codes.Error, "validation_failed")
		return dto.SubmissionResponse{}, err
	}

	row, err := s.repo.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			span.SetStatus(codes.Error, "submission_not_found")
			return dto.SubmissionResponse{}, ErrSubmissionNotFound
		}
		span.RecordError(err)
		return dto.SubmissionResponse{}, err
	}

	if !row.IsSubmitted() {
		span.SetStatus(codes.Error, "not_submitted")
		return dto.SubmissionResponse{}, ErrNotSubmitted
	}

	feedback := s.policy.Sanitize(strings.TrimSpace(payload.Feedback))

	if row.Grade != nil && math.Abs(*row.Grade-payload.Score) < 1e-6 &&
		row.Feedback != nil && *row.Feedback == feedback &&
		row.ReviewerID != nil && *row.ReviewerID == actor.ID {
		span.SetAttributes(attribute.Bool("grading.idempotent", true))
		return dto.NewSubmissionResponse(row), nil
	}

	grade := payload.Score
	reviewed := s.now()
	reviewer := actor.ID
	row.Grade = &grade
	row.Reviewed = &reviewed
	row.ReviewerID = &reviewer
	row.Feedback = &feedback

	if err := s.repo.Update(ctx, &row); err != nil {
		span.RecordError(err)
		return dto.SubmissionResponse{}, err
	}

	observability.Gradings().Inc()

	if s.activity != nil {
		_, _ = s.activity.Record(ctx, ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "submission.graded",
			EntityType: "student_assignment",
			EntityID:   &row.ID,
			Metadata: map[string]interface{}{
				"student_id":    row.StudentID,
				"assignment_id": row.AssignmentID,
				"score":         payload.Score,
			},
		})
	}

	span.SetAttributes(attribute.Float64("grading.score", payload.Score))
	s.logger.Info().Uint("submission_id", row.ID).Float64("score", payload.Score).Msg("submission graded")
	return dto.NewSubmissionResponse(row), nil
}
