package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/voyage-hq/voyage-api/internal/models"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

func TestFacultyServiceDashboard(t *testing.T) {
	db := setupTestDB(t)
	gx := seedGraph(t, db)

	now := time.Now().UTC()
	graded := models.StudentAssignment{
		StudentID:    gx.Student.ID,
		AssignmentID: gx.Assignments[0].ID,
		Submitted:    timePtr(now),
		Grade:        floatPtr(90),
		Reviewed:     timePtr(now),
		ReviewerID:   &gx.Faculty.ID,
	}
	require.NoError(t, db.Create(&graded).Error)

	svc := NewFacultyService(repository.NewFacultyRepository(db), utils.NewCrossRef("/admin"), zerolog.Nop())

	dashboard, err := svc.Dashboard(context.Background(), gx.Faculty.ID)
	require.NoError(t, err)
	require.Equal(t, gx.Faculty.ID, dashboard.Faculty.ID)
	require.Len(t, dashboard.Programs, 1)
	require.Len(t, dashboard.Courses, 2)
	require.Len(t, dashboard.AssignmentsCreated, 2)
	require.Equal(t, 1, dashboard.GradedCount)
	require.NotEmpty(t, dashboard.CoursesLink)
	require.NotEmpty(t, dashboard.GradedLink)

	_, err = svc.Dashboard(context.Background(), 9999)
	require.ErrorIs(t, err, ErrFacultyNotFound)
}

func TestFacultyServiceContentFilter(t *testing.T) {
	db := setupTestDB(t)
	gx := seedGraph(t, db)

	svc := NewFacultyService(repository.NewFacultyRepository(db), utils.NewCrossRef("/admin"), zerolog.Nop())
	ctx := context.Background()

	all, err := svc.Content(ctx, gx.Faculty.ID, repository.FacultyContentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	narrowed, err := svc.Content(ctx, gx.Faculty.ID, repository.FacultyContentFilter{CourseID: &gx.Courses[1].ID})
	require.NoError(t, err)
	require.Len(t, narrowed, 1)
	require.Equal(t, "Django Apps", narrowed[0].Name)

	_, err = svc.Content(ctx, 9999, repository.FacultyContentFilter{})
	require.ErrorIs(t, err, ErrFacultyNotFound)
}
