package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// FacultyContentFilter narrows a faculty's content to assignments under a
// given program and/or course.
type FacultyContentFilter struct {
	ProgramID *uint
	CourseID  *uint
}

// FacultyRepository provides access to faculty records and the derived
// queries hanging off them.
type FacultyRepository interface {
	List(ctx context.Context) ([]models.Faculty, error)
	GetByID(ctx context.Context, id uint) (models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id uint) error
	Programs(ctx context.Context, facultyID uint) ([]models.Program, error)
	Courses(ctx context.Context, facultyID uint) ([]models.Course, error)
	Content(ctx context.Context, facultyID uint, filter FacultyContentFilter) ([]models.Content, error)
	AssignmentsCreated(ctx context.Context, facultyID uint) ([]models.Assignment, error)
	GradedSubmissions(ctx context.Context, facultyID uint) ([]models.StudentAssignment, error)
	CountGraded(ctx context.Context, facultyID, assignmentID uint) (int64, error)
}

type facultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository constructs a GORM-backed faculty repository.
func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) List(ctx context.Context) ([]models.Faculty, error) {
	var faculties []models.Faculty
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&faculties).Error; err != nil {
		return nil, translate(err)
	}
	return faculties, nil
}

func (r *facultyRepository) GetByID(ctx context.Context, id uint) (models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).First(&faculty, id).Error; err != nil {
		return models.Faculty{}, translate(err)
	}
	return faculty, nil
}

func (r *facultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	return translate(r.db.WithContext(ctx).Create(faculty).Error)
}

// Delete removes the faculty row only. Content and reviewed submissions
// survive faculty removal.
func (r *facultyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Faculty{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Programs returns the distinct programs reachable via any assignment whose
// content belongs to the faculty.
func (r *facultyRepository) Programs(ctx context.Context, facultyID uint) ([]models.Program, error) {
	var programs []models.Program
	err := r.db.WithContext(ctx).Model(&models.Program{}).
		Distinct("programs.*").
		Joins("JOIN assignments ON assignments.program_id = programs.id").
		Joins("JOIN contents ON contents.id = assignments.content_id").
		Where("contents.faculty_id = ?", facultyID).
		Order("programs.id ASC").
		Find(&programs).Error
	if err != nil {
		return nil, translate(err)
	}
	return programs, nil
}

// Courses returns the distinct courses reachable via any assignment whose
// content belongs to the faculty.
func (r *facultyRepository) Courses(ctx context.Context, facultyID uint) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Model(&models.Course{}).
		Distinct("courses.*").
		Joins("JOIN assignments ON assignments.course_id = courses.id").
		Joins("JOIN contents ON contents.id = assignments.content_id").
		Where("contents.faculty_id = ?", facultyID).
		Order("courses.id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// Content lists the faculty's content, optionally narrowed to content used by
// assignments under the given program and/or course.
func (r *facultyRepository) Content(ctx context.Context, facultyID uint, filter FacultyContentFilter) ([]models.Content, error) {
	query := r.db.WithContext(ctx).Model(&models.Content{}).
		Where("contents.faculty_id = ?", facultyID)

	if filter.ProgramID != nil || filter.CourseID != nil {
		query = query.
			Distinct("contents.*").
			Joins("JOIN assignments ON assignments.content_id = contents.id")
		if filter.ProgramID != nil {
			query = query.Where("assignments.program_id = ?", *filter.ProgramID)
		}
		if filter.CourseID != nil {
			query = query.Where("assignments.course_id = ?", *filter.CourseID)
		}
	}

	var content []models.Content
	if err := query.Order("contents.id ASC").Find(&content).Error; err != nil {
		return nil, translate(err)
	}
	return content, nil
}

// AssignmentsCreated returns the distinct assignments whose content belongs
// to the faculty.
func (r *facultyRepository) AssignmentsCreated(ctx context.Context, facultyID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Distinct("assignments.*").
		Joins("JOIN contents ON contents.id = assignments.content_id").
		Where("contents.faculty_id = ?", facultyID).
		Order("assignments.id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, translate(err)
	}
	return assignments, nil
}

// GradedSubmissions returns the submissions this faculty has graded.
func (r *facultyRepository) GradedSubmissions(ctx context.Context, facultyID uint) ([]models.StudentAssignment, error) {
	var rows []models.StudentAssignment
	err := r.db.WithContext(ctx).Model(&models.StudentAssignment{}).
		Preload("Student").
		Preload("Assignment").
		Where("reviewer_id = ?", facultyID).
		Where("grade IS NOT NULL").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// CountGraded counts the submissions this faculty has graded for a single
// assignment.
func (r *facultyRepository) CountGraded(ctx context.Context, facultyID, assignmentID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.StudentAssignment{}).
		Where("reviewer_id = ?", facultyID).
		Where("assignment_id = ?", assignmentID).
		Where("grade IS NOT NULL").
		Count(&total).Error
	if err != nil {
		return 0, translate(err)
	}
	return total, nil
}
