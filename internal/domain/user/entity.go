package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"  // Full access, manages users
	RoleHR     Role = "hr"     // Maintains employees, attendance and payroll
	RoleViewer Role = "viewer" // Read-only
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanEdit checks if user may change data
func (u *User) CanEdit() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR
}
