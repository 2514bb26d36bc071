package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ErrStudentNotFound indicates the student was not located.
var ErrStudentNotFound = errors.New("student not found")

// StudentService exposes learner listings, the cached dashboard and the
// per-assignment grade/submission statistics.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Dashboard(ctx context.Context, studentID uint) (dto.StudentDashboardResponse, error)
	Assignments(ctx context.Context, studentID uint) (dto.StudentAssignmentsResponse, error)
	Submissions(ctx context.Context, studentID uint, filter repository.StudentAssignmentFilter) ([]dto.SubmissionResponse, error)
	AverageGrade(ctx context.Context, studentID uint) (float64, error)
	GradesByAssignment(ctx context.Context, studentID uint, assignmentIDs []uint) (map[uint]float64, error)
	SubmissionCountsByAssignment(ctx context.Context, studentID uint, assignmentIDs []uint) (map[uint]int64, error)
}

type studentService struct {
	students    repository.StudentRepository
	submissions repository.StudentAssignmentRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	crossref    utils.CrossRef
	logger      zerolog.Logger
}

// NewStudentService constructs the student service. The cache client may be
// nil, in which case every dashboard read hits the store.
func NewStudentService(students repository.StudentRepository, submissions repository.StudentAssignmentRepository, cache *redis.Client, ttl time.Duration, crossref utils.CrossRef, logger zerolog.Logger) StudentService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &studentService{
		students:    students,
		submissions: submissions,
		cache:       cache,
		cacheTTL:    ttl,
		crossref:    crossref,
		logger:      logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(students), nil
}

func (s *studentService) Dashboard(ctx context.Context, studentID uint) (dto.StudentDashboardResponse, error) {
	cacheKey := fmt.Sprintf("dashboard:student:%d", studentID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.StudentDashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Uint("student_id", studentID).Msg("dashboard cache hit")
				response.CacheHit = true
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.StudentDashboardResponse{}, ErrStudentNotFound
		}
		return dto.StudentDashboardResponse{}, err
	}

	courses, err := s.students.Courses(ctx, studentID)
	if err != nil {
		return dto.StudentDashboardResponse{}, err
	}

	rows, err := s.submissions.ListByStudent(ctx, studentID, repository.StudentAssignmentFilter{})
	if err != nil {
		return dto.StudentDashboardResponse{}, err
	}

	response := dto.StudentDashboardResponse{
		Student:     dto.NewStudentResponse(student),
		Courses:     dto.NewCourseResponses(courses),
		TotalRows:   len(rows),
		CoursesLink: s.crossref.Link("courses", courseIDs(courses)),
	}

	for _, row := range rows {
		if row.IsSubmitted() {
			response.Submitted++
		} else {
			response.Unsubmitted++
		}
		if row.IsGraded() {
			response.Graded++
		}
	}

	average, err := completionWeightedAverage(rows)
	switch {
	case err == nil:
		response.AverageGrade = &average
	case errors.Is(err, ErrNoRecords), errors.Is(err, ErrNoGrades):
		// nothing graded yet, leave the average null
	default:
		return dto.StudentDashboardResponse{}, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

// Assignments builds the student-assignments view: one line per assignment
// the student holds rows for, with the per-assignment grade average and the
// submission-row count. Duplicate rows for the same assignment collapse into
// a single line whose count reflects them.
func (s *studentService) Assignments(ctx context.Context, studentID uint) (dto.StudentAssignmentsResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.StudentAssignmentsResponse{}, ErrStudentNotFound
		}
		return dto.StudentAssignmentsResponse{}, err
	}

	assignments, err := s.students.Assignments(ctx, studentID)
	if err != nil {
		return dto.StudentAssignmentsResponse{}, err
	}

	ids := make([]uint, 0, len(assignments))
	seen := map[uint]struct{}{}
	for _, assignment := range assignments {
		if _, ok := seen[assignment.ID]; ok {
			continue
		}
		seen[assignment.ID] = struct{}{}
		ids = append(ids, assignment.ID)
	}

	grades, err := s.GradesByAssignment(ctx, studentID, ids)
	if err != nil {
		return dto.StudentAssignmentsResponse{}, err
	}

	counts, err := s.SubmissionCountsByAssignment(ctx, studentID, ids)
	if err != nil {
		return dto.StudentAssignmentsResponse{}, err
	}

	items := make([]dto.StudentAssignmentLine, 0, len(ids))
	seen = map[uint]struct{}{}
	for _, assignment := range assignments {
		if _, ok := seen[assignment.ID]; ok {
			continue
		}
		seen[assignment.ID] = struct{}{}

		line := dto.StudentAssignmentLine{
			Assignment:      dto.NewAssignmentResponse(assignment),
			SubmissionCount: counts[assignment.ID],
		}
		if grade, ok := grades[assignment.ID]; ok {
			value := grade
			line.AverageGrade = &value
		}
		items = append(items, line)
	}

	return dto.StudentAssignmentsResponse{
		Student: dto.NewStudentResponse(student),
		Items:   items,
	}, nil
}

func (s *studentService) Submissions(ctx context.Context, studentID uint, filter repository.StudentAssignmentFilter) ([]dto.SubmissionResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	rows, err := s.submissions.ListByStudent(ctx, studentID, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewSubmissionResponses(rows), nil
}

// AverageGrade returns the student's completion-weighted average: grades of
// submitted rows summed over the total row count, submitted or not, rounded
// to 2 decimals. ErrNoRecords when the student holds no rows at all.
func (s *studentService) AverageGrade(ctx context.Context, studentID uint) (float64, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrStudentNotFound
		}
		return 0, err
	}

	rows, err := s.submissions.ListByStudent(ctx, studentID, repository.StudentAssignmentFilter{})
	if err != nil {
		return 0, err
	}

	return completionWeightedAverage(rows)
}

// GradesByAssignment maps each assignment to the student's average grade
// across their rows for it: recorded grades summed over the matching row
// count. Assignments with no matching rows yield ErrNoRecords.
func (s *studentService) GradesByAssignment(ctx context.Context, studentID uint, assignmentIDs []uint) (map[uint]float64, error) {
	grades := make(map[uint]float64, len(assignmentIDs))
	for _, assignmentID := range assignmentIDs {
		id := assignmentID
		rows, err := s.submissions.ListByStudent(ctx, studentID, repository.StudentAssignmentFilter{AssignmentID: &id})
		if err != nil {
			return nil, err
		}

		average, err := plainAverage(rows)
		if err != nil {
			return nil, fmt.Errorf("assignment %d: %w", assignmentID, err)
		}
		grades[assignmentID] = average
	}
	return grades, nil
}

// SubmissionCountsByAssignment maps each assignment to the number of rows the
// student holds for it, regardless of submission status.
func (s *studentService) SubmissionCountsByAssignment(ctx context.Context, studentID uint, assignmentIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(assignmentIDs))
	for _, assignmentID := range assignmentIDs {
		id := assignmentID
		total, err := s.submissions.CountByStudent(ctx, studentID, &id)
		if err != nil {
			return nil, err
		}
		counts[assignmentID] = total
	}
	return counts, nil
}
