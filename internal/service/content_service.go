package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ErrContentNotFound indicates the content was not located.
var ErrContentNotFound = errors.New("content not found")

// ContentService exposes the content usage view.
type ContentService interface {
	List(ctx context.Context) ([]dto.ContentResponse, error)
	Detail(ctx context.Context, contentID uint) (dto.ContentDetailResponse, error)
}

type contentService struct {
	repo     repository.ContentRepository
	crossref utils.CrossRef
	logger   zerolog.Logger
}

// NewContentService constructs the content service.
func NewContentService(repo repository.ContentRepository, crossref utils.CrossRef, logger zerolog.Logger) ContentService {
	return &contentService{
		repo:     repo,
		crossref: crossref,
		logger:   logger.With().Str("component", "content_service").Logger(),
	}
}

func (s *contentService) List(ctx context.Context) ([]dto.ContentResponse, error) {
	content, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewContentResponses(content), nil
}

func (s *contentService) Detail(ctx context.Context, contentID uint) (dto.ContentDetailResponse, error) {
	content, err := s.repo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.ContentDetailResponse{}, ErrContentNotFound
		}
		return dto.ContentDetailResponse{}, err
	}

	courses, err := s.repo.Courses(ctx, contentID)
	if err != nil {
		return dto.ContentDetailResponse{}, err
	}

	assignments, err := s.repo.Assignments(ctx, contentID)
	if err != nil {
		return dto.ContentDetailResponse{}, err
	}

	return dto.ContentDetailResponse{
		Content:         dto.NewContentResponse(content),
		Courses:         dto.NewCourseResponses(courses),
		Assignments:     dto.NewAssignmentResponses(assignments),
		CoursesLink:     s.crossref.Link("courses", courseIDs(courses)),
		AssignmentsLink: s.crossref.Link("assignments", assignmentIDs(assignments)),
	}, nil
}
