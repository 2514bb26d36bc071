package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// StudentRepository provides access to students and their course reachability.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id uint) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
	Courses(ctx context.Context, studentID uint) ([]models.Course, error)
	Assignments(ctx context.Context, studentID uint) ([]models.Assignment, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a GORM-backed student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&students).Error; err != nil {
		return nil, translate(err)
	}
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Preload("Program").First(&student, id).Error; err != nil {
		return models.Student{}, translate(err)
	}
	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return translate(r.db.WithContext(ctx).Create(student).Error)
}

// Delete removes the student and their submission rows.
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).
			Delete(&models.StudentAssignment{}).Error; err != nil {
			return translate(err)
		}

		result := tx.Delete(&models.Student{}, id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Courses returns the distinct courses reachable via the assignments of the
// student's program.
func (r *studentRepository) Courses(ctx context.Context, studentID uint) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Model(&models.Course{}).
		Distinct("courses.*").
		Joins("JOIN assignments ON assignments.course_id = courses.id").
		Joins("JOIN students ON students.program_id = assignments.program_id").
		Where("students.id = ?", studentID).
		Order("courses.id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// Assignments returns one assignment per student-assignment row. Duplicates
// are preserved when a student holds several rows for the same assignment.
func (r *studentRepository) Assignments(ctx context.Context, studentID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Select("assignments.*").
		Joins("JOIN student_assignments ON student_assignments.assignment_id = assignments.id").
		Where("student_assignments.student_id = ?", studentID).
		Order("student_assignments.id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, translate(err)
	}
	return assignments, nil
}
