package domain

import (
	"fmt"
	"time"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User models an authenticated actor in the system. Every user carries
// exactly one role and a display employee identifier in the form EMP###.
type User struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleManager
}

// FormatEmployeeID renders a sequence number as a display identifier,
// e.g. 7 -> "EMP007". Sequences beyond 999 simply widen the number.
func FormatEmployeeID(seq int64) string {
	return fmt.Sprintf("EMP%03d", seq)
}

// EmployeeRef is the profile snapshot embedded in each attendance record at
// check-in time. Denormalising it keeps department a plain query field, so
// filtered listings paginate correctly, and makes report joins free.
type EmployeeRef struct {
	UserID     string `json:"user_id" bson:"user_id"`
	EmployeeID string `json:"employee_id" bson:"employee_id"`
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Department string `json:"department" bson:"department"`
}
