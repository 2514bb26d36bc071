package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voyage-hq/voyage-api/internal/models"
)

func TestCourseRepositoryRejectsDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	repo := NewCourseRepository(db)

	duplicate := models.Course{Name: "Python"}
	require.ErrorIs(t, repo.Create(context.Background(), &duplicate), ErrDuplicate)
}

func TestCourseRepositoryCrossReferences(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewCourseRepository(db)

	// Both programs schedule both courses, so each course sees both programs
	// exactly once.
	programs, err := repo.Programs(context.Background(), fx.Courses[0].ID)
	require.NoError(t, err)
	require.Len(t, programs, 2)

	enrollStudent(t, db, 300, "course-learner-a", fx.Programs[0].ID)
	enrollStudent(t, db, 301, "course-learner-b", fx.Programs[1].ID)

	students, err := repo.Students(context.Background(), fx.Courses[0].ID)
	require.NoError(t, err)
	require.Len(t, students, 2)

	content, err := repo.Content(context.Background(), fx.Courses[0].ID)
	require.NoError(t, err)
	require.Len(t, content, 1)
	require.Equal(t, fx.Contents[0].ID, content[0].ID)

	assignments, err := repo.Assignments(context.Background(), fx.Courses[0].ID)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
}

func TestCourseRepositoryCompletedAssignmentsReturnsEveryRow(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewCourseRepository(db)

	student := enrollStudent(t, db, 302, "course-learner-c", fx.Programs[0].ID)
	now := time.Now().UTC()

	// One ungraded, one submitted, one graded row under the Python course.
	rows := []models.StudentAssignment{
		{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID},
		{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID, Submitted: timePtr(now)},
		{StudentID: student.ID, AssignmentID: fx.Assignments[2].ID, Submitted: timePtr(now), Grade: floatPtr(55), Reviewed: timePtr(now), ReviewerID: &fx.Faculty.ID},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	// A row under the Django course must not leak into the Python listing.
	other := models.StudentAssignment{StudentID: student.ID, AssignmentID: fx.Assignments[1].ID}
	require.NoError(t, db.Create(&other).Error)

	completed, err := repo.CompletedAssignments(context.Background(), fx.Courses[0].ID)
	require.NoError(t, err)
	require.Len(t, completed, 3, "every row under the course counts, graded or not")
}

func TestCourseRepositoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewCourseRepository(db)

	student := enrollStudent(t, db, 303, "course-learner-d", fx.Programs[0].ID)
	row := models.StudentAssignment{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID}
	require.NoError(t, db.Create(&row).Error)

	require.NoError(t, repo.Delete(context.Background(), fx.Courses[0].ID))

	var assignments int64
	require.NoError(t, db.Model(&models.Assignment{}).Where("course_id = ?", fx.Courses[0].ID).Count(&assignments).Error)
	require.Zero(t, assignments)

	var submissions int64
	require.NoError(t, db.Model(&models.StudentAssignment{}).Count(&submissions).Error)
	require.Zero(t, submissions)

	require.ErrorIs(t, repo.Delete(context.Background(), fx.Courses[0].ID), ErrNotFound)
}
