package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ErrFacultyNotFound indicates the faculty was not located.
var ErrFacultyNotFound = errors.New("faculty not found")

// FacultyService exposes instructor listings and the faculty dashboard.
type FacultyService interface {
	List(ctx context.Context) ([]dto.FacultyResponse, error)
	Dashboard(ctx context.Context, facultyID uint) (dto.FacultyDashboardResponse, error)
	Content(ctx context.Context, facultyID uint, filter repository.FacultyContentFilter) ([]dto.ContentResponse, error)
	GradedSubmissions(ctx context.Context, facultyID uint) ([]dto.SubmissionResponse, error)
	CountGraded(ctx context.Context, facultyID, assignmentID uint) (int64, error)
}

type facultyService struct {
	repo     repository.FacultyRepository
	crossref utils.CrossRef
	logger   zerolog.Logger
}

// NewFacultyService constructs the faculty service.
func NewFacultyService(repo repository.FacultyRepository, crossref utils.CrossRef, logger zerolog.Logger) FacultyService {
	return &facultyService{
		repo:     repo,
		crossref: crossref,
		logger:   logger.With().Str("component", "faculty_service").Logger(),
	}
}

func (s *facultyService) List(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculties, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewFacultyResponses(faculties), nil
}

func (s *facultyService) Dashboard(ctx context.Context, facultyID uint) (dto.FacultyDashboardResponse, error) {
	faculty, err := s.repo.GetByID(ctx, facultyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.FacultyDashboardResponse{}, ErrFacultyNotFound
		}
		return dto.FacultyDashboardResponse{}, err
	}

	programs, err := s.repo.Programs(ctx, facultyID)
	if err != nil {
		return dto.FacultyDashboardResponse{}, err
	}

	courses, err := s.repo.Courses(ctx, facultyID)
	if err != nil {
		return dto.FacultyDashboardResponse{}, err
	}

	assignments, err := s.repo.AssignmentsCreated(ctx, facultyID)
	if err != nil {
		return dto.FacultyDashboardResponse{}, err
	}

	graded, err := s.repo.GradedSubmissions(ctx, facultyID)
	if err != nil {
		return dto.FacultyDashboardResponse{}, err
	}

	return dto.FacultyDashboardResponse{
		Faculty:            dto.NewFacultyResponse(faculty),
		Programs:           dto.NewProgramResponses(programs),
		Courses:            dto.NewCourseResponses(courses),
		AssignmentsCreated: dto.NewAssignmentResponses(assignments),
		GradedCount:        len(graded),
		CoursesLink:        s.crossref.Link("courses", courseIDs(courses)),
		AssignmentsLink:    s.crossref.Link("assignments", assignmentIDs(assignments)),
		GradedLink:         s.crossref.Link("submissions", submissionIDs(graded)),
	}, nil
}

func (s *facultyService) Content(ctx context.Context, facultyID uint, filter repository.FacultyContentFilter) ([]dto.ContentResponse, error) {
	if _, err := s.repo.GetByID(ctx, facultyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}

	content, err := s.repo.Content(ctx, facultyID, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewContentResponses(content), nil
}

func (s *facultyService) GradedSubmissions(ctx context.Context, facultyID uint) ([]dto.SubmissionResponse, error) {
	if _, err := s.repo.GetByID(ctx, facultyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}

	rows, err := s.repo.GradedSubmissions(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	return dto.NewSubmissionResponses(rows), nil
}

func (s *facultyService) CountGraded(ctx context.Context, facultyID, assignmentID uint) (int64, error) {
	return s.repo.CountGraded(ctx, facultyID, assignmentID)
}
