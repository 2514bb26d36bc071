package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ErrProgramNotFound indicates the program was not located.
var ErrProgramNotFound = errors.New("program not found")

// ProgramService exposes cohort listings and the program detail view.
type ProgramService interface {
	List(ctx context.Context) ([]dto.ProgramResponse, error)
	Detail(ctx context.Context, programID uint) (dto.ProgramDetailResponse, error)
	Delete(ctx context.Context, programID uint, actor ActivityActor) error
}

type programService struct {
	repo     repository.ProgramRepository
	activity ActivityRecorder
	crossref utils.CrossRef
	logger   zerolog.Logger
}

// NewProgramService constructs the program service.
func NewProgramService(repo repository.ProgramRepository, activity ActivityRecorder, crossref utils.CrossRef, logger zerolog.Logger) ProgramService {
	return &programService{
		repo:     repo,
		activity: activity,
		crossref: crossref,
		logger:   logger.With().Str("component", "program_service").Logger(),
	}
}

func (s *programService) List(ctx context.Context) ([]dto.ProgramResponse, error) {
	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewProgramResponses(programs), nil
}

func (s *programService) Detail(ctx context.Context, programID uint) (dto.ProgramDetailResponse, error) {
	program, err := s.repo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.ProgramDetailResponse{}, ErrProgramNotFound
		}
		return dto.ProgramDetailResponse{}, err
	}

	courses, err := s.repo.Courses(ctx, programID)
	if err != nil {
		return dto.ProgramDetailResponse{}, err
	}

	students, err := s.repo.Students(ctx, programID)
	if err != nil {
		return dto.ProgramDetailResponse{}, err
	}

	return dto.ProgramDetailResponse{
		Program:      dto.NewProgramResponse(program),
		Courses:      dto.NewCourseResponses(courses),
		Students:     dto.NewStudentResponses(students),
		CoursesLink:  s.crossref.Link("courses", courseIDs(courses)),
		StudentsLink: s.crossref.Link("students", studentIDs(students)),
	}, nil
}

// Delete removes the program; dependent assignments and their submission rows
// go with it.
func (s *programService) Delete(ctx context.Context, programID uint, actor ActivityActor) error {
	if err := s.repo.Delete(ctx, programID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}

	if s.activity != nil {
		_, _ = s.activity.Record(ctx, ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "program.deleted",
			EntityType: "program",
			EntityID:   &programID,
		})
	}

	s.logger.Info().Uint("program_id", programID).Msg("program deleted")
	return nil
}
