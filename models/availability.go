package models

import (
	"time"
)

// DoctorAvailability is a doctor's declared open window for a single date.
// Date is "2006-01-02", StartTime and EndTime are "15:04" in 24h format.
// Overlapping windows for the same doctor and date are accepted as-is; there
// is no conflict detection.
type DoctorAvailability struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	DoctorID       string    `json:"doctorId"`
	DoctorName     string    `json:"doctorName"`
	Specialization string    `json:"specialization"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	IsAvailable    bool      `json:"isAvailable" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
