package models

import "time"

// Program is a time-boxed cohort that students enroll into (e.g. "Cohort-2").
type Program struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Start     time.Time `gorm:"not null" json:"start"`
	End       time.Time `gorm:"not null" json:"end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether the instant falls inside the program window.
func (p Program) Contains(reference time.Time) bool {
	return !reference.Before(p.Start) && !reference.After(p.End)
}
