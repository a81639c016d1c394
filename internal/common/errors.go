// Package common defines shared constants and sentinel errors used across
// client and server layers of the auth service. Callers should use errors.Is
// to match these values.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential-logic errors. These are expected, user-facing outcomes,
	// never infrastructure faults.
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountLocked        = errors.New("account locked")
	ErrIncorrectOldPassword = errors.New("incorrect old password")
	ErrUserNotFound         = errors.New("user not found")
	ErrMaintenanceMode      = errors.New("maintenance mode is on")

	// Infrastructure failure while talking to the credential store. The only
	// kind a caller may reasonably retry.
	ErrStore = errors.New("credential store error")

	// Auth token errors (invalid, malformed or expired session token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// InvalidCredentialsError is returned when the username or the password is
// wrong; the two cases are indistinguishable by kind. When the password was
// wrong for an existing account, Attempt/Limit carry the failed-attempt
// progress ("attempt 3/5"); for an unknown username both are zero.
type InvalidCredentialsError struct {
	Attempt int
	Limit   int
}

func (e *InvalidCredentialsError) Error() string {
	if e.Attempt == 0 {
		return "invalid credentials"
	}
	return fmt.Sprintf("invalid credentials (attempt %d/%d)", e.Attempt, e.Limit)
}

// Is makes errors.Is(err, ErrInvalidCredentials) match.
func (e *InvalidCredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// AccountLockedError is returned while an account is locked out, carrying
// the time left until the lockout expires.
type AccountLockedError struct {
	Remaining time.Duration
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %d min", e.RemainingMinutes())
}

// RemainingMinutes reports the remaining lockout rounded up to the next
// whole minute, the granularity shown to users.
func (e *AccountLockedError) RemainingMinutes() int {
	return int((e.Remaining + time.Minute - 1) / time.Minute)
}

// Is makes errors.Is(err, ErrAccountLocked) match.
func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}

// StoreError wraps a credential store failure (connectivity, constraint
// violation, transaction error) so it stays distinguishable from
// credential-logic failures.
type StoreError struct {
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("credential store error: %v", e.Cause)
}

func (e *StoreError) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, ErrStore) match.
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}
