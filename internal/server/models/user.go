package models

import "time"

// Role is the closed set of user roles known to the ERP.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleInstructor:
		return true
	}
	return false
}

// Status of a credential record. Only active records may authenticate;
// anything else is invisible to login.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusDisabled Status = "DISABLED"
)

// AuthUser is one credential record of the users_auth table.
//
// FailedAttempts and LockoutUntil implement the lockout state machine:
// every wrong password while unlocked bumps the counter, reaching the
// configured threshold sets LockoutUntil, and a successful login resets
// both. LockoutUntil in the past is cleared lazily on the next attempt.
type AuthUser struct {
	ID             string
	Username       string
	PasswordHash   string
	Role           Role
	Status         Status
	FailedAttempts int
	LockoutUntil   *time.Time
	LastLogin      *time.Time
	CreatedAt      time.Time
}

// Identity is the authenticated result handed back to callers. It never
// carries the password hash or lockout bookkeeping.
type Identity struct {
	UserID   string
	Username string
	Role     Role
}
