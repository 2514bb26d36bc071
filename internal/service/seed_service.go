package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/models"
	"github.com/voyage-hq/voyage-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

var seedCourseNames = []string{
	"Python", "Django", "Logic", "HTML", "CSS",
	"JavaScript", "Java", "MySQL", "React", "Angular",
}

// SeedSummary reports how many rows a seeding run created.
type SeedSummary struct {
	Programs           int `json:"programs"`
	Courses            int `json:"courses"`
	Faculty            int `json:"faculty"`
	Content            int `json:"content"`
	Students           int `json:"students"`
	Assignments        int `json:"assignments"`
	StudentAssignments int `json:"student_assignments"`
}

// SeedService populates the store with demo cohorts, courses, content and
// submission rows. Demo-only tooling: gated behind a flag and a shared token.
type SeedService interface {
	Seed(ctx context.Context, token string) (SeedSummary, error)
}

type seedService struct {
	programs    repository.ProgramRepository
	courses     repository.CourseRepository
	faculty     repository.FacultyRepository
	content     repository.ContentRepository
	students    repository.StudentRepository
	assignments repository.AssignmentRepository
	submissions repository.StudentAssignmentRepository
	enabled     bool
	token       string
	logger      zerolog.Logger
	rng         *rand.Rand
	now         func() time.Time
}

// SeedRepositories groups the repositories a seeding run writes through.
type SeedRepositories struct {
	Programs    repository.ProgramRepository
	Courses     repository.CourseRepository
	Faculty     repository.FacultyRepository
	Content     repository.ContentRepository
	Students    repository.StudentRepository
	Assignments repository.AssignmentRepository
	Submissions repository.StudentAssignmentRepository
}

// NewSeedService constructs a seeding service.
func NewSeedService(repos SeedRepositories, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		programs:    repos.Programs,
		courses:     repos.Courses,
		faculty:     repos.Faculty,
		content:     repos.Content,
		students:    repos.Students,
		assignments: repos.Assignments,
		submissions: repos.Submissions,
		enabled:     enabled,
		token:       token,
		logger:      logger.With().Str("component", "seed_service").Logger(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
}

func (s *seedService) Seed(ctx context.Context, token string) (SeedSummary, error) {
	if !s.enabled {
		return SeedSummary{}, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return SeedSummary{}, ErrSeedUnauthorized
	}

	summary := SeedSummary{}
	now := s.now()

	var programs []models.Program
	for i := 1; i <= 3; i++ {
		program := models.Program{
			Name:  fmt.Sprintf("Cohort-%d", i),
			Start: now.AddDate(0, -i, 0),
			End:   now.AddDate(0, 6-i, 0),
		}
		if err := s.programs.Create(ctx, &program); err != nil {
			return summary, err
		}
		programs = append(programs, program)
		summary.Programs++
	}

	var courses []models.Course
	for _, name := range seedCourseNames[:4] {
		course := models.Course{Name: name}
		if err := s.courses.Create(ctx, &course); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return summary, err
		}
		courses = append(courses, course)
		summary.Courses++
	}

	var faculties []models.Faculty
	for i := 1; i <= 3; i++ {
		faculty := models.Faculty{
			AccountID: uint(1000 + i),
			GitHub:    fmt.Sprintf("demo-faculty-%d", i),
			IsActive:  true,
		}
		if err := s.faculty.Create(ctx, &faculty); err != nil {
			return summary, err
		}
		faculties = append(faculties, faculty)
		summary.Faculty++
	}

	var contents []models.Content
	for i := 1; i <= 6; i++ {
		owner := faculties[s.rng.Intn(len(faculties))]
		content := models.Content{
			Name:      fmt.Sprintf("Module %d", i),
			FacultyID: owner.ID,
			Repo:      fmt.Sprintf("https://github.com/voyage-demo/module-%d", i),
		}
		if err := s.content.Create(ctx, &content); err != nil {
			return summary, err
		}
		contents = append(contents, content)
		summary.Content++
	}

	var students []models.Student
	for i := 1; i <= 8; i++ {
		program := programs[s.rng.Intn(len(programs))]
		student := models.Student{
			AccountID: uint(2000 + i),
			GitHub:    fmt.Sprintf("demo-student-%d", i),
			IsActive:  true,
			ProgramID: program.ID,
		}
		if err := s.students.Create(ctx, &student); err != nil {
			return summary, err
		}
		students = append(students, student)
		summary.Students++
	}

	var assignments []models.Assignment
	for _, program := range programs {
		for i, course := range courses {
			if i >= len(contents) {
				break
			}
			assignment := models.Assignment{
				ProgramID:    program.ID,
				CourseID:     course.ID,
				ContentID:    contents[i].ID,
				Due:          now.AddDate(0, 0, 7+7*i),
				Instructions: fmt.Sprintf("Complete the %s exercises.", course.Name),
				Rubric:       "Correctness 70%, style 30%.",
			}
			if err := s.assignments.Create(ctx, &assignment); err != nil {
				if errors.Is(err, repository.ErrDuplicate) {
					continue
				}
				return summary, err
			}
			assignments = append(assignments, assignment)
			summary.Assignments++
		}
	}

	for _, student := range students {
		for _, assignment := range assignments {
			if assignment.ProgramID != student.ProgramID {
				continue
			}
			row := models.StudentAssignment{
				StudentID:    student.ID,
				AssignmentID: assignment.ID,
			}
			if s.rng.Intn(2) == 0 {
				submitted := now.AddDate(0, 0, -s.rng.Intn(14))
				row.Submitted = &submitted
				if s.rng.Intn(2) == 0 {
					grade := float64(s.rng.Intn(10001)) / 100
					reviewer := faculties[s.rng.Intn(len(faculties))].ID
					feedback := "Good work overall."
					row.Grade = &grade
					row.Reviewed = &submitted
					row.ReviewerID = &reviewer
					row.Feedback = &feedback
				}
			}
			if err := s.submissions.Create(ctx, &row); err != nil {
				return summary, err
			}
			summary.StudentAssignments++
		}
	}

	s.logger.Info().
		Int("programs", summary.Programs).
		Int("students", summary.Students).
		Int("student_assignments", summary.StudentAssignments).
		Msg("demo data seeded")
	return summary, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	if expected == "" {
		return false
	}
	return constantTimeEqual(expected, strings.TrimSpace(token))
}

func constantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	mismatch := byte(0)
	for i := 0; i < len(a); i++ {
		mismatch |= a[i] ^ b[i]
	}
	return mismatch == 0
}
