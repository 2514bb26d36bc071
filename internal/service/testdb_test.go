package service

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

	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
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

// seedGraph creates a minimal academic graph: one program, two courses, one
// instructor with one content item per course, one assignment per course, and
// one enrolled student.
type graph struct {
	Faculty     models.Faculty
	Program     models.Program
	Courses     []models.Course
	Contents    []models.Content
	Assignments []models.Assignment
	Student     models.Student
}

func seedGraph(t *testing.T, db *gorm.DB) graph {
	t.Helper()

	now := time.Now().UTC()

	faculty := models.Faculty{AccountID: 100, GitHub: "prof-ada", IsActive: true}
	require.NoError(t, db.Create(&faculty).Error)

	program := models.Program{Name: "Cohort-1", Start: now.AddDate(0, -1, 0), End: now.AddDate(0, 5, 0)}
	require.NoError(t, db.Create(&program).Error)

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

	student := models.Student{AccountID: 200, GitHub: "learner-one", IsActive: true, ProgramID: program.ID}
	require.NoError(t, db.Create(&student).Error)

	return graph{
		Faculty:     faculty,
		Program:     program,
		Courses:     courses,
		Contents:    contents,
		Assignments: assignments,
		Student:     student,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}
