package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/models"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

func TestCourseServiceCreateTrimsAndRecordsActivity(t *testing.T) {
	db := setupTestDB(t)
	seedGraph(t, db)

	repo := repository.NewCourseRepository(db)
	validate := validator.New(validator.WithRequiredStructEnabled())
	activity := NewActivityService(repository.NewActivityLogRepository(db), zerolog.Nop())
	svc := NewCourseService(repo, validate, activity, utils.NewCrossRef("/admin"), zerolog.Nop())

	ctx := context.Background()
	actor := ActivityActor{ID: 1, Role: models.ActorRoleAdmin}

	created, err := svc.Create(ctx, dto.CourseCreateRequest{Name: "  Logic  "}, actor)
	require.NoError(t, err)
	require.Equal(t, "Logic", created.Name)

	recent, err := activity.Recent(ctx, 5)
	require.NoError(t, err)
	require.NotEmpty(t, recent)
	require.Equal(t, "course.created", recent[0].Action)
}

func TestCourseServiceCreateRejectsDuplicateAndBlankName(t *testing.T) {
	db := setupTestDB(t)
	seedGraph(t, db)

	repo := repository.NewCourseRepository(db)
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewCourseService(repo, validate, nil, utils.NewCrossRef("/admin"), zerolog.Nop())

	ctx := context.Background()
	actor := ActivityActor{ID: 1, Role: models.ActorRoleAdmin}

	_, err := svc.Create(ctx, dto.CourseCreateRequest{Name: "Python"}, actor)
	require.ErrorIs(t, err, ErrCourseExists)

	_, err = svc.Create(ctx, dto.CourseCreateRequest{Name: "   "}, actor)
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestCourseServiceDetailIncludesAllRowsAsCompleted(t *testing.T) {
	db := setupTestDB(t)
	gx := seedGraph(t, db)

	now := time.Now().UTC()
	rows := []models.StudentAssignment{
		{StudentID: gx.Student.ID, AssignmentID: gx.Assignments[0].ID},
		{StudentID: gx.Student.ID, AssignmentID: gx.Assignments[0].ID, Submitted: timePtr(now)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	repo := repository.NewCourseRepository(db)
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewCourseService(repo, validate, nil, utils.NewCrossRef("/admin"), zerolog.Nop())

	detail, err := svc.Detail(context.Background(), gx.Courses[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Python", detail.Course.Name)
	require.Len(t, detail.Programs, 1)
	require.Len(t, detail.Students, 1)
	require.Len(t, detail.Content, 1)
	require.Len(t, detail.Assignments, 1)
	require.Len(t, detail.Completed, 2, "unsubmitted rows count as completed by contract")
	require.NotEmpty(t, detail.StudentsLink)
	require.NotEmpty(t, detail.AssignmentsLink)

	_, err = svc.Detail(context.Background(), 9999)
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseServiceDelete(t *testing.T) {
	db := setupTestDB(t)
	gx := seedGraph(t, db)

	repo := repository.NewCourseRepository(db)
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewCourseService(repo, validate, nil, utils.NewCrossRef("/admin"), zerolog.Nop())

	ctx := context.Background()
	actor := ActivityActor{ID: 1, Role: models.ActorRoleAdmin}

	require.NoError(t, svc.Delete(ctx, gx.Courses[0].ID, actor))
	require.ErrorIs(t, svc.Delete(ctx, gx.Courses[0].ID, actor), ErrCourseNotFound)
}
