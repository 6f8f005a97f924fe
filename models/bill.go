package models

import (
	"time"
)

// PaidStatus describes a bill's settlement state.
type PaidStatus string

const (
	PaidStatusUnpaid        PaidStatus = "unpaid"
	PaidStatusPartiallyPaid PaidStatus = "partially paid"
	PaidStatusPaid          PaidStatus = "paid"
)

func (s PaidStatus) Valid() bool {
	switch s {
	case PaidStatusUnpaid, PaidStatusPartiallyPaid, PaidStatusPaid:
		return true
	}
	return false
}

// MedicalBill is an admin-entered bill. BalanceAmount is whatever the caller
// supplied; the server never derives it from TotalAmount - PaidAmount.
type MedicalBill struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	PatientName   string     `json:"patientName"`
	PatientID     string     `json:"patientID"`
	AppointmentID string     `json:"appointmentID"`
	TotalAmount   float64    `json:"totalAmount"`
	PaidAmount    float64    `json:"paidAmount"`
	BalanceAmount float64    `json:"balanceAmount"`
	PaidStatus    PaidStatus `json:"paidStatus" gorm:"default:unpaid"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
