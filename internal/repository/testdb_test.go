package repository

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/voyage-hq/voyage-api/internal/models"
)

var testDBCounter atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Faculty{},
		&models.Program{},
		&models.Course{},
		&models.Content{},
		&models.Student{},
		&models.Assignment{},
		&models.StudentAssignment{},
		&models.ActivityLog{},
	))
	return db
}

// fixture is a small academic graph shared by the repository tests: two
// programs, two courses, one instructor with one content item per course,
// and one assignment per program/course pair.
type fixture struct {
	Faculty     models.Faculty
	Programs    []models.Program
	Courses     []models.Course
	Contents    []models.Content
	Assignments []models.Assignment
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	now := time.Now().UTC()

	faculty := models.Faculty{AccountID: 100, GitHub: "prof-ada", IsActive: true}
	require.NoError(t, db.Create(&faculty).Error)

	programs := []models.Program{
		{Name: "Cohort-1", Start: now.AddDate(0, -2, 0), End: now.AddDate(0, 4, 0)},
		{Name: "Cohort-2", Start: now.AddDate(0, -1, 0), End: now.AddDate(0, 5, 0)},
	}
	for i := range programs {
		require.NoError(t, db.Create(&programs[i]).Error)
	}

	courses := []models.Course{{Name: "Python"}, {Name: "Django"}}
	for i := range courses {
		require.NoError(t, db.Create(&courses[i]).Error)
	}

	contents := []models.Content{
		{Name: "Python Basics", FacultyID: faculty.ID, Repo: "https://github.com/voyage-demo/python-basics"},
		{Name: "Django Apps", FacultyID: faculty.ID, Repo: "https://github.com/voyage-demo/django-apps"},
	}
	for i := range contents {
		require.NoError(t, db.Create(&contents[i]).Error)
	}

	var assignments []models.Assignment
	for _, program := range programs {
		for i, course := range courses {
			assignment := models.Assignment{
				ProgramID:    program.ID,
				CourseID:     course.ID,
				ContentID:    contents[i].ID,
				Due:          now.AddDate(0, 0, 14),
				Instructions: "Do the exercises.",
				Rubric:       "Correctness.",
			}
			require.NoError(t, db.Create(&assignment).Error)
			assignments = append(assignments, assignment)
		}
	}

	return fixture{
		Faculty:     faculty,
		Programs:    programs,
		Courses:     courses,
		Contents:    contents,
		Assignments: assignments,
	}
}

func enrollStudent(t *testing.T, db *gorm.DB, accountID uint, github string, programID uint) models.Student {
	t.Helper()
	student := models.Student{AccountID: accountID, GitHub: github, IsActive: true, ProgramID: programID}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func floatPtr(v float64) *float64 {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}
