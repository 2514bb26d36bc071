package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// AssignmentRepository provides access to assignments and their submissions.
type AssignmentRepository interface {
	List(ctx context.Context) ([]models.Assignment, error)
	GetByID(ctx context.Context, id uint) (models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id uint) error
	Students(ctx context.Context, assignmentID uint) ([]models.Student, error)
	Submissions(ctx context.Context, assignmentID uint, graded *bool) ([]models.StudentAssignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository constructs a GORM-backed assignment repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Preload("Program").
		Preload("Course").
		Preload("Content").
		Order("due ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, translate(err)
	}
	return assignments, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id uint) (models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).
		Preload("Program").
		Preload("Course").
		Preload("Content").
		First(&assignment, id).Error
	if err != nil {
		return models.Assignment{}, translate(err)
	}
	return assignment, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return translate(r.db.WithContext(ctx).Create(assignment).Error)
}

// Delete removes the assignment and its submission rows.
func (r *assignmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).
			Delete(&models.StudentAssignment{}).Error; err != nil {
			return translate(err)
		}

		result := tx.Delete(&models.Assignment{}, id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Students returns the distinct students holding a submission row for the
// assignment.
func (r *assignmentRepository) Students(ctx context.Context, assignmentID uint) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).Model(&models.Student{}).
		Distinct("students.*").
		Joins("JOIN student_assignments ON student_assignments.student_id = students.id").
		Where("student_assignments.assignment_id = ?", assignmentID).
		Order("students.id ASC").
		Find(&students).Error
	if err != nil {
		return nil, translate(err)
	}
	return students, nil
}

// Submissions returns the assignment's student-assignment rows: all of them
// when graded is nil, only graded rows when true, only ungraded when false.
func (r *assignmentRepository) Submissions(ctx context.Context, assignmentID uint, graded *bool) ([]models.StudentAssignment, error) {
	query := r.db.WithContext(ctx).Model(&models.StudentAssignment{}).
		Preload("Student").
		Where("assignment_id = ?", assignmentID)

	if graded != nil {
		if *graded {
			query = query.Where("grade IS NOT NULL")
		} else {
			query = query.Where("grade IS NULL")
		}
	}

	var rows []models.StudentAssignment
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
