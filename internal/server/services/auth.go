// Package services contains server-side business logic. This file implements
// AuthService: credential verification with failed-attempt counting and
// temporary lockout, plus password changes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/univerp/authd/internal/common"
	"github.com/univerp/authd/internal/dbx"
	"github.com/univerp/authd/internal/logging"
	"github.com/univerp/authd/internal/server/auth"
	"github.com/univerp/authd/internal/server/config"
	"github.com/univerp/authd/internal/server/models"
	"github.com/univerp/authd/internal/server/repositories/repomanager"
)

// dummyHash keeps password verification for unknown usernames as slow as for
// known ones, so response timing does not reveal whether an account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)

// LoginResult is the successful outcome of a login: who authenticated and
// the session token to present on subsequent requests.
type LoginResult struct {
	Identity     *models.Identity
	SessionToken string
}

// AuthService decides accept/reject for username/password pairs and updates
// the failed-attempt and lockout bookkeeping of the credential store. It
// holds no per-session state; every call is independent.
//
// Per account the lockout behaves as a small state machine: wrong passwords
// bump the counter until the threshold locks the account for the configured
// window; a correct password from any state resets the counter and clears
// the lockout; an elapsed lockout is cleared lazily on the next attempt.
type AuthService struct {
	db               *sql.DB
	repos            repomanager.RepositoryManager
	logger           logging.Logger
	jwtSecret        []byte
	tokenValidity    time.Duration
	lockoutThreshold int
	lockoutDuration  time.Duration

	// now is a seam for lockout-expiry tests.
	now func() time.Time
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *AuthService {
	return &AuthService{
		db:               db,
		repos:            m,
		logger:           l.With("module", "auth_service"),
		jwtSecret:        []byte(cfg.SecretKey),
		tokenValidity:    cfg.SessionTokenValidityDuration,
		lockoutThreshold: cfg.LockoutThreshold,
		lockoutDuration:  cfg.LockoutDuration,
		now:              time.Now,
	}
}

// Login verifies the username/password pair and returns the authenticated
// identity with a fresh session token.
//
// Rejections: an unknown username and a wrong password both return an
// *common.InvalidCredentialsError; a locked account returns an
// *common.AccountLockedError with the remaining time; maintenance mode
// refuses non-admins with common.ErrMaintenanceMode. Store failures wrap
// into *common.StoreError.
//
// The read-decide-write sequence runs in one transaction with the record
// row-locked, so concurrent failures against the same account can neither
// lose an increment nor race the lockout decision. A failed attempt is
// committed even though the login itself is rejected.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {

	var ident *models.Identity
	var authErr error

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		user, err := repo.FindActiveByUsernameForUpdate(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				// burn a hash comparison anyway, see dummyHash
				_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
				authErr = &common.InvalidCredentialsError{}
				return nil
			}
			return err
		}

		now := s.now()

		if user.LockoutUntil != nil {
			if user.LockoutUntil.After(now) {
				// still locked: no writes on this path
				authErr = &common.AccountLockedError{Remaining: user.LockoutUntil.Sub(now)}
				return nil
			}
			// lockout elapsed, clear it lazily and continue
			if err := repo.ClearLockout(ctx, user.ID); err != nil {
				return err
			}
			user.LockoutUntil = nil
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			attempts := user.FailedAttempts + 1
			var lockUntil *time.Time
			if attempts >= s.lockoutThreshold {
				t := now.Add(s.lockoutDuration)
				lockUntil = &t
			}
			if err := repo.IncrementFailedAttempts(ctx, user.ID, lockUntil); err != nil {
				return err
			}
			if lockUntil != nil {
				authErr = &common.AccountLockedError{Remaining: s.lockoutDuration}
			} else {
				authErr = &common.InvalidCredentialsError{Attempt: attempts, Limit: s.lockoutThreshold}
			}
			return nil
		}

		if err := repo.ResetFailedAttemptsAndClearLockout(ctx, user.ID); err != nil {
			return err
		}
		if err := repo.TouchLastLogin(ctx, user.ID); err != nil {
			return err
		}

		ident = &models.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
		return nil
	})
	if err != nil {
		return nil, &common.StoreError{Cause: err}
	}
	if authErr != nil {
		s.logger.Info(ctx, "login rejected", "username", username, "reason", authErr.Error())
		return nil, authErr
	}

	if ident.Role != models.RoleAdmin {
		on, err := s.maintenanceModeOn(ctx)
		if err != nil {
			return nil, err
		}
		if on {
			s.logger.Info(ctx, "login refused, maintenance mode", "username", username)
			return nil, common.ErrMaintenanceMode
		}
	}

	token, err := auth.GenerateToken(ident, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "login ok", "username", username, "role", ident.Role)
	return &LoginResult{Identity: ident, SessionToken: token}, nil
}

// ChangePassword re-verifies the current credential and replaces the stored
// hash with a fresh one (bcrypt salts every hash anew). A wrong old password
// returns common.ErrIncorrectOldPassword and leaves the stored hash and the
// failed-attempt counter untouched; this flow never counts towards lockout.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserNotFound
		}
		return &common.StoreError{Cause: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return common.ErrIncorrectOldPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.ErrorInternal
	}

	if err := repo.UpdatePasswordHash(ctx, userID, string(newHash)); err != nil {
		return &common.StoreError{Cause: err}
	}

	s.logger.Info(ctx, "password changed", "user_id", userID)
	return nil
}

func (s *AuthService) maintenanceModeOn(ctx context.Context) (bool, error) {
	value, err := s.repos.Settings(s.db).Get(ctx, common.MaintenanceSettingKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, &common.StoreError{Cause: err}
	}

	on, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return on, nil
}
