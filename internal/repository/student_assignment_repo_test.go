package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voyage-hq/voyage-api/internal/models"
)

func TestStudentAssignmentRepositoryListFilters(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewStudentAssignmentRepository(db)

	student := enrollStudent(t, db, 700, "sa-learner-a", fx.Programs[0].ID)
	now := time.Now().UTC()

	assigned := models.StudentAssignment{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID}
	submitted := models.StudentAssignment{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID, Submitted: timePtr(now)}
	graded := models.StudentAssignment{
		StudentID:    student.ID,
		AssignmentID: fx.Assignments[1].ID,
		Submitted:    timePtr(now),
		Grade:        floatPtr(64),
		Reviewed:     timePtr(now),
		ReviewerID:   &fx.Faculty.ID,
	}
	// Grade recorded without a submission instant: storable, but never
	// counted as submitted or graded.
	orphanGrade := models.StudentAssignment{StudentID: student.ID, AssignmentID: fx.Assignments[1].ID, Grade: floatPtr(99)}

	for _, row := range []*models.StudentAssignment{&assigned, &submitted, &graded, &orphanGrade} {
		require.NoError(t, db.Create(row).Error)
	}

	ctx := context.Background()

	all, err := repo.ListByStudent(ctx, student.ID, StudentAssignmentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	yes := true
	submittedOnly, err := repo.ListByStudent(ctx, student.ID, StudentAssignmentFilter{Submitted: &yes})
	require.NoError(t, err)
	require.Len(t, submittedOnly, 2)

	no := false
	unsubmitted, err := repo.ListByStudent(ctx, student.ID, StudentAssignmentFilter{Submitted: &no})
	require.NoError(t, err)
	require.Len(t, unsubmitted, 2)

	gradedOnly, err := repo.ListByStudent(ctx, student.ID, StudentAssignmentFilter{GradedOnly: true})
	require.NoError(t, err)
	require.Len(t, gradedOnly, 1)
	require.Equal(t, graded.ID, gradedOnly[0].ID)

	byAssignment, err := repo.ListByStudent(ctx, student.ID, StudentAssignmentFilter{AssignmentID: &fx.Assignments[0].ID})
	require.NoError(t, err)
	require.Len(t, byAssignment, 2)
}

func TestStudentAssignmentRepositoryCountByStudent(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewStudentAssignmentRepository(db)

	student := enrollStudent(t, db, 701, "sa-learner-b", fx.Programs[0].ID)

	rows := []models.StudentAssignment{
		{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID},
		{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID},
		{StudentID: student.ID, AssignmentID: fx.Assignments[1].ID},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	total, err := repo.CountByStudent(context.Background(), student.ID, nil)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)

	perAssignment, err := repo.CountByStudent(context.Background(), student.ID, &fx.Assignments[0].ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), perAssignment)
}

func TestStudentAssignmentRepositoryGetByIDPreloads(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewStudentAssignmentRepository(db)

	student := enrollStudent(t, db, 702, "sa-learner-c", fx.Programs[0].ID)
	row := models.StudentAssignment{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID}
	require.NoError(t, db.Create(&row).Error)

	stored, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	require.Equal(t, student.ID, stored.Student.ID)
	require.Equal(t, fx.Assignments[0].ID, stored.Assignment.ID)

	_, err = repo.GetByID(context.Background(), 9999)
	require.ErrorIs(t, err, ErrNotFound)
}
