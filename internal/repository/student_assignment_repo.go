package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// StudentAssignmentFilter narrows submission-row queries. Submitted filters on
// whether the row carries a submission instant; GradedOnly additionally
// requires a grade.
type StudentAssignmentFilter struct {
	AssignmentID *uint
	Submitted    *bool
	GradedOnly   bool
}

// StudentAssignmentRepository provides access to individual submission rows.
type StudentAssignmentRepository interface {
	GetByID(ctx context.Context, id uint) (models.StudentAssignment, error)
	Create(ctx context.Context, row *models.StudentAssignment) error
	Update(ctx context.Context, row *models.StudentAssignment) error
	ListByStudent(ctx context.Context, studentID uint, filter StudentAssignmentFilter) ([]models.StudentAssignment, error)
	CountByStudent(ctx context.Context, studentID uint, assignmentID *uint) (int64, error)
}

type studentAssignmentRepository struct {
	db *gorm.DB
}

// NewStudentAssignmentRepository constructs the repository.
func NewStudentAssignmentRepository(db *gorm.DB) StudentAssignmentRepository {
	return &studentAssignmentRepository{db: db}
}

func (r *studentAssignmentRepository) GetByID(ctx context.Context, id uint) (models.StudentAssignment, error) {
	var row models.StudentAssignment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Assignment").
		First(&row, id).Error
	if err != nil {
		return models.StudentAssignment{}, translate(err)
	}
	return row, nil
}

func (r *studentAssignmentRepository) Create(ctx context.Context, row *models.StudentAssignment) error {
	return translate(r.db.WithContext(ctx).Create(row).Error)
}

func (r *studentAssignmentRepository) Update(ctx context.Context, row *models.StudentAssignment) error {
	return translate(r.db.WithContext(ctx).Save(row).Error)
}

// ListByStudent returns the student's submission rows in creation order,
// narrowed by the filter. Rows carrying a grade without a submission instant
// are excluded from submitted/graded views by construction.
func (r *studentAssignmentRepository) ListByStudent(ctx context.Context, studentID uint, filter StudentAssignmentFilter) ([]models.StudentAssignment, error) {
	query := r.db.WithContext(ctx).Model(&models.StudentAssignment{}).
		Where("student_id = ?", studentID)

	if filter.AssignmentID != nil {
		query = query.Where("assignment_id = ?", *filter.AssignmentID)
	}
	if filter.Submitted != nil {
		if *filter.Submitted {
			query = query.Where("submitted IS NOT NULL")
		} else {
			query = query.Where("submitted IS NULL")
		}
	}
	if filter.GradedOnly {
		query = query.Where("submitted IS NOT NULL").Where("grade IS NOT NULL")
	}

	var rows []models.StudentAssignment
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// CountByStudent counts the student's submission rows regardless of
// submission status, optionally narrowed to one assignment.
func (r *studentAssignmentRepository) CountByStudent(ctx context.Context, studentID uint, assignmentID *uint) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.StudentAssignment{}).
		Where("student_id = ?", studentID)
	if assignmentID != nil {
		query = query.Where("assignment_id = ?", *assignmentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, translate(err)
	}
	return total, nil
}
