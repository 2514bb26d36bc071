package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voyage-hq/voyage-api/internal/models"
)

func TestAssignmentRepositoryRejectsDuplicateTriple(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewAssignmentRepository(db)

	duplicate := models.Assignment{
		ProgramID:    fx.Programs[0].ID,
		CourseID:     fx.Courses[0].ID,
		ContentID:    fx.Contents[0].ID,
		Due:          time.Now().AddDate(0, 0, 30),
		Instructions: "Again.",
		Rubric:       "Again.",
	}

	err := repo.Create(context.Background(), &duplicate)
	require.ErrorIs(t, err, ErrDuplicate)

	// A different content under the same program+course is fine.
	fresh := models.Assignment{
		ProgramID:    fx.Programs[0].ID,
		CourseID:     fx.Courses[0].ID,
		ContentID:    fx.Contents[1].ID,
		Due:          time.Now().AddDate(0, 0, 30),
		Instructions: "New material.",
		Rubric:       "New rubric.",
	}
	require.NoError(t, repo.Create(context.Background(), &fresh))
}

func TestAssignmentRepositoryListPreloadsAndOrders(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewAssignmentRepository(db)

	assignments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assignments, len(fx.Assignments))
	for _, assignment := range assignments {
		require.NotZero(t, assignment.Program.ID)
		require.NotZero(t, assignment.Course.ID)
		require.NotZero(t, assignment.Content.ID)
	}
}

func TestAssignmentRepositorySubmissionsGradedFilter(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewAssignmentRepository(db)

	student := enrollStudent(t, db, 200, "learner-one", fx.Programs[0].ID)
	now := time.Now().UTC()

	graded := models.StudentAssignment{
		StudentID:    student.ID,
		AssignmentID: fx.Assignments[0].ID,
		Submitted:    timePtr(now),
		Grade:        floatPtr(88),
		Reviewed:     timePtr(now),
		ReviewerID:   &fx.Faculty.ID,
	}
	pending := models.StudentAssignment{
		StudentID:    student.ID,
		AssignmentID: fx.Assignments[0].ID,
		Submitted:    timePtr(now),
	}
	require.NoError(t, db.Create(&graded).Error)
	require.NoError(t, db.Create(&pending).Error)

	all, err := repo.Submissions(context.Background(), fx.Assignments[0].ID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	isGraded := true
	onlyGraded, err := repo.Submissions(context.Background(), fx.Assignments[0].ID, &isGraded)
	require.NoError(t, err)
	require.Len(t, onlyGraded, 1)
	require.Equal(t, graded.ID, onlyGraded[0].ID)

	isGraded = false
	ungraded, err := repo.Submissions(context.Background(), fx.Assignments[0].ID, &isGraded)
	require.NoError(t, err)
	require.Len(t, ungraded, 1)
	require.Equal(t, pending.ID, ungraded[0].ID)
}

func TestAssignmentRepositoryDeleteCascadesToSubmissions(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewAssignmentRepository(db)

	student := enrollStudent(t, db, 201, "learner-two", fx.Programs[0].ID)
	row := models.StudentAssignment{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID}
	require.NoError(t, db.Create(&row).Error)

	require.NoError(t, repo.Delete(context.Background(), fx.Assignments[0].ID))

	var remaining int64
	require.NoError(t, db.Model(&models.StudentAssignment{}).Where("assignment_id = ?", fx.Assignments[0].ID).Count(&remaining).Error)
	require.Zero(t, remaining)

	_, err := repo.GetByID(context.Background(), fx.Assignments[0].ID)
	require.ErrorIs(t, err, ErrNotFound)
}
