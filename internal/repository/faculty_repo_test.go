package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voyage-hq/voyage-api/internal/models"
)

func TestFacultyRepositoryProgramsAndCoursesAreDistinct(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewFacultyRepository(db)

	// The faculty owns both contents, which appear in assignments under both
	// programs and both courses. Each must still be listed once.
	programs, err := repo.Programs(context.Background(), fx.Faculty.ID)
	require.NoError(t, err)
	require.Len(t, programs, 2)

	courses, err := repo.Courses(context.Background(), fx.Faculty.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assignments, err := repo.AssignmentsCreated(context.Background(), fx.Faculty.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 4)
}

func TestFacultyRepositoryContentFilter(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewFacultyRepository(db)

	all, err := repo.Content(context.Background(), fx.Faculty.ID, FacultyContentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	byCourse, err := repo.Content(context.Background(), fx.Faculty.ID, FacultyContentFilter{CourseID: &fx.Courses[0].ID})
	require.NoError(t, err)
	require.Len(t, byCourse, 1)
	require.Equal(t, fx.Contents[0].ID, byCourse[0].ID)

	narrowed, err := repo.Content(context.Background(), fx.Faculty.ID, FacultyContentFilter{
		ProgramID: &fx.Programs[0].ID,
		CourseID:  &fx.Courses[1].ID,
	})
	require.NoError(t, err)
	require.Len(t, narrowed, 1)
	require.Equal(t, fx.Contents[1].ID, narrowed[0].ID)
}

func TestFacultyRepositoryGradedSubmissionsAndCount(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewFacultyRepository(db)

	other := models.Faculty{AccountID: 101, GitHub: "prof-grace", IsActive: true}
	require.NoError(t, db.Create(&other).Error)

	student := enrollStudent(t, db, 600, "faculty-learner-a", fx.Programs[0].ID)
	now := time.Now().UTC()

	mine := models.StudentAssignment{
		StudentID:    student.ID,
		AssignmentID: fx.Assignments[0].ID,
		Submitted:    timePtr(now),
		Grade:        floatPtr(92),
		Reviewed:     timePtr(now),
		ReviewerID:   &fx.Faculty.ID,
	}
	theirs := models.StudentAssignment{
		StudentID:    student.ID,
		AssignmentID: fx.Assignments[0].ID,
		Submitted:    timePtr(now),
		Grade:        floatPtr(71),
		Reviewed:     timePtr(now),
		ReviewerID:   &other.ID,
	}
	unreviewed := models.StudentAssignment{
		StudentID:    student.ID,
		AssignmentID: fx.Assignments[0].ID,
		Submitted:    timePtr(now),
	}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&theirs).Error)
	require.NoError(t, db.Create(&unreviewed).Error)

	graded, err := repo.GradedSubmissions(context.Background(), fx.Faculty.ID)
	require.NoError(t, err)
	require.Len(t, graded, 1)
	require.Equal(t, mine.ID, graded[0].ID)
	require.NotZero(t, graded[0].Student.ID)
	require.NotZero(t, graded[0].Assignment.ID)

	count, err := repo.CountGraded(context.Background(), fx.Faculty.ID, fx.Assignments[0].ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestFacultyRepositoryDeleteLeavesContentAndReviews(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	repo := NewFacultyRepository(db)

	student := enrollStudent(t, db, 601, "faculty-learner-b", fx.Programs[0].ID)
	now := time.Now().UTC()
	reviewed := models.StudentAssignment{
		StudentID:    student.ID,
		AssignmentID: fx.Assignments[0].ID,
		Submitted:    timePtr(now),
		Grade:        floatPtr(80),
		Reviewed:     timePtr(now),
		ReviewerID:   &fx.Faculty.ID,
	}
	require.NoError(t, db.Create(&reviewed).Error)

	require.NoError(t, repo.Delete(context.Background(), fx.Faculty.ID))

	var content int64
	require.NoError(t, db.Model(&models.Content{}).Where("faculty_id = ?", fx.Faculty.ID).Count(&content).Error)
	require.Equal(t, int64(2), content, "content outlives the instructor")

	var stored models.StudentAssignment
	require.NoError(t, db.First(&stored, reviewed.ID).Error)
	require.NotNil(t, stored.ReviewerID)
	require.Equal(t, fx.Faculty.ID, *stored.ReviewerID, "reviewed rows keep their reviewer reference")
}
