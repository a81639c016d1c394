package users

import (
	"context"
	"time"

	"github.com/univerp/authd/internal/server/models"
)

// Repository is the credential store contract the auth service depends on.
// All mutating methods address the record by its immutable user id.
type Repository interface {
	// Create inserts a new credential record and returns it with the
	// store-assigned created_at.
	Create(ctx context.Context, user *models.AuthUser) (*models.AuthUser, error)

	// FindActiveByUsernameForUpdate fetches the ACTIVE record for username,
	// locking the row for the rest of the transaction so concurrent login
	// attempts against the same account serialize. Missing and non-active
	// records both return common.ErrorNotFound.
	FindActiveByUsernameForUpdate(ctx context.Context, username string) (*models.AuthUser, error)

	// GetByID fetches a record regardless of status.
	GetByID(ctx context.Context, userID string) (*models.AuthUser, error)

	// IncrementFailedAttempts bumps the failure counter by one and, when
	// lockUntil is non-nil, sets the lockout expiry in the same update.
	IncrementFailedAttempts(ctx context.Context, userID string, lockUntil *time.Time) error

	// ResetFailedAttemptsAndClearLockout zeroes the counter and clears any
	// lockout, the successful-login write.
	ResetFailedAttemptsAndClearLockout(ctx context.Context, userID string) error

	// ClearLockout removes an expired lockout without touching the counter.
	ClearLockout(ctx context.Context, userID string) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// TouchLastLogin stamps last_login with the store's current time.
	TouchLastLogin(ctx context.Context, userID string) error
}
