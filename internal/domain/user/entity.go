package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Team-wide oversight
	RoleEmployee Role = "employee" // Self-service only
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeCode *string // EMP###, assigned only to role=employee
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if user has team-wide oversight
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	return r == RoleManager || r == RoleEmployee
}
