package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

func TestContentServiceDetail(t *testing.T) {
	db := setupTestDB(t)
	gx := seedGraph(t, db)

	svc := NewContentService(repository.NewContentRepository(db), utils.NewCrossRef("/admin"), zerolog.Nop())

	detail, err := svc.Detail(context.Background(), gx.Contents[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Python Basics", detail.Content.Name)
	require.Len(t, detail.Courses, 1)
	require.Equal(t, "Python", detail.Courses[0].Name)
	require.Len(t, detail.Assignments, 1)
	require.NotEmpty(t, detail.CoursesLink)

	_, err = svc.Detail(context.Background(), 9999)
	require.ErrorIs(t, err, ErrContentNotFound)
}
