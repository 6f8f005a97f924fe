package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AppointmentSource tags how an appointment entered the system: submitted by
// a patient as a request, or entered directly by an admin.
type AppointmentSource string

const (
	SourcePatientRequest AppointmentSource = "patient-request"
	SourceAdminDirect    AppointmentSource = "admin-direct"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment is a single visit record. Patient requests and admin-entered
// bookings share this shape; Source tells them apart and the admin-only
// fields (hospitalName, doctorName, specialization) stay empty on requests.
// Date is "2006-01-02" and Time is "15:04".
type Appointment struct {
	ID             uint              `json:"id" gorm:"primaryKey"`
	Source         AppointmentSource `json:"source"`
	PatientID      string            `json:"patientId"`
	PatientName    string            `json:"patientName"`
	Email          string            `json:"email"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Reason         string            `json:"reason"`
	HospitalName   string            `json:"hospitalName"`
	DoctorName     string            `json:"doctorName"`
	Specialization string            `json:"specialization"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Source == "" {
		a.Source = SourcePatientRequest
	}
	return nil
}

// UpdateStatus applies a guarded status transition and saves the record in a
// single write. Completed and canceled are terminal.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if newStatus != StatusCompleted && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}
