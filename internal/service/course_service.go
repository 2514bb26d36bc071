package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/models"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ErrCourseNotFound indicates the course was not located.
var ErrCourseNotFound = errors.New("course not found")

// ErrCourseExists indicates the course name is already taken.
var ErrCourseExists = errors.New("course name already exists")

// CourseService exposes course listings, the course detail view and the
// creation form.
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Create(ctx context.Context, payload dto.CourseCreateRequest, actor ActivityActor) (dto.CourseResponse, error)
	Detail(ctx context.Context, courseID uint) (dto.CourseDetailResponse, error)
	Delete(ctx context.Context, courseID uint, actor ActivityActor) error
}

type courseService struct {
	repo      repository.CourseRepository
	validator *validator.Validate
	activity  ActivityRecorder
	crossref  utils.CrossRef
	logger    zerolog.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo repository.CourseRepository, validator *validator.Validate, activity ActivityRecorder, crossref utils.CrossRef, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:      repo,
		validator: validator,
		activity:  activity,
		crossref:  crossref,
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCourseResponses(courses), nil
}

func (s *courseService) Create(ctx context.Context, payload dto.CourseCreateRequest, actor ActivityActor) (dto.CourseResponse, error) {
	payload.Name = strings.TrimSpace(payload.Name)
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	course := models.Course{Name: payload.Name}
	if err := s.repo.Create(ctx, &course); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return dto.CourseResponse{}, ErrCourseExists
		}
		return dto.CourseResponse{}, err
	}

	if s.activity != nil {
		_, _ = s.activity.Record(ctx, ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "course.created",
			EntityType: "course",
			EntityID:   &course.ID,
			Metadata:   map[string]interface{}{"name": course.Name},
		})
	}

	s.logger.Info().Uint("course_id", course.ID).Str("name", course.Name).Msg("course created")
	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Detail(ctx context.Context, courseID uint) (dto.CourseDetailResponse, error) {
	course, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.CourseDetailResponse{}, ErrCourseNotFound
		}
		return dto.CourseDetailResponse{}, err
	}

	programs, err := s.repo.Programs(ctx, courseID)
	if err != nil {
		return dto.CourseDetailResponse{}, err
	}

	students, err := s.repo.Students(ctx, courseID)
	if err != nil {
		return dto.CourseDetailResponse{}, err
	}

	content, err := s.repo.Content(ctx, courseID)
	if err != nil {
		return dto.CourseDetailResponse{}, err
	}

	assignments, err := s.repo.Assignments(ctx, courseID)
	if err != nil {
		return dto.CourseDetailResponse{}, err
	}

	completed, err := s.repo.CompletedAssignments(ctx, courseID)
	if err != nil {
		return dto.CourseDetailResponse{}, err
	}

	return dto.CourseDetailResponse{
		Course:          dto.NewCourseResponse(course),
		Programs:        dto.NewProgramResponses(programs),
		Students:        dto.NewStudentResponses(students),
		Content:         dto.NewContentResponses(content),
		Assignments:     dto.NewAssignmentResponses(assignments),
		Completed:       dto.NewSubmissionResponses(completed),
		StudentsLink:    s.crossref.Link("students", studentIDs(students)),
		AssignmentsLink: s.crossref.Link("assignments", assignmentIDs(assignments)),
	}, nil
}

func (s *courseService) Delete(ctx context.Context, courseID uint, actor ActivityActor) error {
	if err := s.repo.Delete(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if s.activity != nil {
		_, _ = s.activity.Record(ctx, ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "course.deleted",
			EntityType: "course",
			EntityID:   &courseID,
		})
	}

	return nil
}
