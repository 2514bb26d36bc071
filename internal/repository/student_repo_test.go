package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voyage-hq/voyage-api/internal/models"
)

func TestStudentRepositoryCoursesFollowProgramAssignments(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewStudentRepository(db)

	student := enrollStudent(t, db, 500, "student-learner-a", fx.Programs[0].ID)

	courses, err := repo.Courses(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2, "both courses are scheduled in the student's program")
}

func TestStudentRepositoryAssignmentsPreservesDuplicates(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewStudentRepository(db)

	student := enrollStudent(t, db, 501, "student-learner-b", fx.Programs[0].ID)

	// Two rows against the same assignment plus one against another.
	rows := []models.StudentAssignment{
		{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID},
		{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID},
		{StudentID: student.ID, AssignmentID: fx.Assignments[1].ID},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	assignments, err := repo.Assignments(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 3, "one entry per submission row, duplicates included")
	require.Equal(t, fx.Assignments[0].ID, assignments[0].ID)
	require.Equal(t, fx.Assignments[0].ID, assignments[1].ID)
	require.Equal(t, fx.Assignments[1].ID, assignments[2].ID)
}

func TestStudentRepositoryDeleteRemovesSubmissionRows(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewStudentRepository(db)

	student := enrollStudent(t, db, 502, "student-learner-c", fx.Programs[0].ID)
	row := models.StudentAssignment{StudentID: student.ID, AssignmentID: fx.Assignments[0].ID}
	require.NoError(t, db.Create(&row).Error)

	require.NoError(t, repo.Delete(context.Background(), student.ID))

	var submissions int64
	require.NoError(t, db.Model(&models.StudentAssignment{}).Where("student_id = ?", student.ID).Count(&submissions).Error)
	require.Zero(t, submissions)

	_, err := repo.GetByID(context.Background(), student.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStudentRepositoryRejectsDuplicateAccount(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewStudentRepository(db)

	enrollStudent(t, db, 503, "student-learner-d", fx.Programs[0].ID)

	clash := models.Student{AccountID: 503, GitHub: "someone-else", IsActive: true, ProgramID: fx.Programs[0].ID}
	require.ErrorIs(t, repo.Create(context.Background(), &clash), ErrDuplicate)
}
