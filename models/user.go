package models

import (
	"time"
)

// Role is the closed set of account roles. It is stored on the user record
// and carried in the JWT claims, so every protected route can check it
// server-side.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleAdmin, RoleDoctor:
		return true
	}
	return false
}

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"unique"`
	Password       string    `json:"password,omitempty"`
	Role           Role      `json:"role" gorm:"default:patient"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email" gorm:"unique"`
	Address        string    `json:"address"`
	PhoneNumber    string    `json:"phoneNumber"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
