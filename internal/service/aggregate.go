package service

import (
	"errors"
	"math"

	"github.com/voyage-hq/voyage-api/internal/models"
)

// ErrNoRecords indicates an average was requested over zero submission rows.
// The store never divides by zero; callers map this to a "no data" result.
var ErrNoRecords = errors.New("no submission records")

// ErrNoGrades indicates submission rows exist but none carries a grade yet.
var ErrNoGrades = errors.New("no grades recorded")

// round2 rounds to two decimal places. All grade rounding happens here.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// completionWeightedAverage sums grades over submitted+graded rows and
// divides by the total row count, submitted or not. Partially-submitted
// students therefore see a deflated average; that is the defined contract,
// not an accident. Rows carrying a grade without a submission instant are
// treated as not yet submitted and excluded from the numerator.
func completionWeightedAverage(rows []models.StudentAssignment) (float64, error) {
	if len(rows) == 0 {
		return 0, ErrNoRecords
	}

	var sum float64
	graded := 0
	for _, row := range rows {
		if row.IsGraded() {
			sum += *row.Grade
			graded++
		}
	}
	if graded == 0 {
		return 0, ErrNoGrades
	}

	return round2(sum / float64(len(rows))), nil
}

// plainAverage sums every recorded grade across the rows and divides by the
// row count. Used for the per-assignment grade map on the student view.
func plainAverage(rows []models.StudentAssignment) (float64, error) {
	if len(rows) == 0 {
		return 0, ErrNoRecords
	}

	var sum float64
	for _, row := range rows {
		if row.Grade != nil {
			sum += *row.Grade
		}
	}

	return round2(sum / float64(len(rows))), nil
}

func programIDs(items []models.Program) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func courseIDs(items []models.Course) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func studentIDs(items []models.Student) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func assignmentIDs(items []models.Assignment) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func submissionIDs(items []models.StudentAssignment) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
