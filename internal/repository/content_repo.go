package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// ContentRepository provides access to faculty-owned content.
type ContentRepository interface {
	List(ctx context.Context) ([]models.Content, error)
	GetByID(ctx context.Context, id uint) (models.Content, error)
	Create(ctx context.Context, content *models.Content) error
	Delete(ctx context.Context, id uint) error
	Courses(ctx context.Context, contentID uint) ([]models.Course, error)
	Assignments(ctx context.Context, contentID uint) ([]models.Assignment, error)
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository constructs a GORM-backed content repository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) List(ctx context.Context) ([]models.Content, error) {
	var content []models.Content
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&content).Error; err != nil {
		return nil, translate(err)
	}
	return content, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id uint) (models.Content, error) {
	var content models.Content
	if err := r.db.WithContext(ctx).First(&content, id).Error; err != nil {
		return models.Content{}, translate(err)
	}
	return content, nil
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	return translate(r.db.WithContext(ctx).Create(content).Error)
}

// Delete removes the content and cascades through its assignments to their
// submission rows.
func (r *contentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteAssignmentsWhere(tx, "content_id = ?", id); err != nil {
			return err
		}

		result := tx.Delete(&models.Content{}, id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Courses returns the distinct courses whose assignments use this content.
func (r *contentRepository) Courses(ctx context.Context, contentID uint) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Model(&models.Course{}).
		Distinct("courses.*").
		Joins("JOIN assignments ON assignments.course_id = courses.id").
		Where("assignments.content_id = ?", contentID).
		Order("courses.id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// Assignments returns the assignments referencing this content.
func (r *contentRepository) Assignments(ctx context.Context, contentID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, translate(err)
	}
	return assignments, nil
}
