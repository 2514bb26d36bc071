package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// ProgramRepository provides access to cohort programs.
type ProgramRepository interface {
	List(ctx context.Context) ([]models.Program, error)
	GetByID(ctx context.Context, id uint) (models.Program, error)
	Create(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id uint) error
	Courses(ctx context.Context, programID uint) ([]models.Course, error)
	Students(ctx context.Context, programID uint) ([]models.Student, error)
}

type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository constructs a GORM-backed program repository.
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) List(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&programs).Error; err != nil {
		return nil, translate(err)
	}
	return programs, nil
}

func (r *programRepository) GetByID(ctx context.Context, id uint) (models.Program, error) {
	var program models.Program
	if err := r.db.WithContext(ctx).First(&program, id).Error; err != nil {
		return models.Program{}, translate(err)
	}
	return program, nil
}

func (r *programRepository) Create(ctx context.Context, program *models.Program) error {
	return translate(r.db.WithContext(ctx).Create(program).Error)
}

// Delete removes the program and cascades: dependent assignments go first,
// then the submission rows hanging off those assignments. Done explicitly in
// a transaction so the rule holds regardless of driver-level FK enforcement.
func (r *programRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteAssignmentsWhere(tx, "program_id = ?", id); err != nil {
			return err
		}

		result := tx.Delete(&models.Program{}, id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Courses returns the distinct courses reachable via the program's assignments.
func (r *programRepository) Courses(ctx context.Context, programID uint) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Model(&models.Course{}).
		Distinct("courses.*").
		Joins("JOIN assignments ON assignments.course_id = courses.id").
		Where("assignments.program_id = ?", programID).
		Order("courses.id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// Students returns the program roster.
func (r *programRepository) Students(ctx context.Context, programID uint) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("id ASC").
		Find(&students).Error
	if err != nil {
		return nil, translate(err)
	}
	return students, nil
}

// deleteAssignmentsWhere removes the assignments matching the condition along
// with their student-assignment rows. Shared by the program/course/content
// cascade paths.
func deleteAssignmentsWhere(tx *gorm.DB, condition string, args ...interface{}) error {
	var assignmentIDs []uint
	if err := tx.Model(&models.Assignment{}).
		Where(condition, args...).
		Pluck("id", &assignmentIDs).Error; err != nil {
		return translate(err)
	}
	if len(assignmentIDs) == 0 {
		return nil
	}

	if err := tx.Where("assignment_id IN ?", assignmentIDs).
		Delete(&models.StudentAssignment{}).Error; err != nil {
		return translate(err)
	}

	return translate(tx.Where("id IN ?", assignmentIDs).Delete(&models.Assignment{}).Error)
}
