// This file implements AdminService: user registration and the
// maintenance-mode switch. Both are admin-only at the transport layer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/univerp/authd/internal/common"
	"github.com/univerp/authd/internal/logging"
	"github.com/univerp/authd/internal/server/models"
	"github.com/univerp/authd/internal/server/repositories/repomanager"
)

// ErrInvalidRole rejects registration with an unknown role.
var ErrInvalidRole = errors.New("invalid role")

// AdminService covers the administrative operations of the auth subsystem.
type AdminService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *AdminService {
	return &AdminService{
		db:     db,
		repos:  m,
		logger: l.With("module", "admin_service"),
	}
}

// RegisterUser creates a credential record: fresh UUID, bcrypt hash, ACTIVE
// status, zero failed attempts, no lockout. Returns the new user id.
func (s *AdminService) RegisterUser(ctx context.Context, username, password string, role models.Role) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.AuthUser{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.StatusActive,
	}

	if _, err := s.repos.Users(s.db).Create(ctx, user); err != nil {
		return "", &common.StoreError{Cause: err}
	}

	s.logger.Info(ctx, "user registered", "username", username, "role", role)
	return user.ID, nil
}

// SetMaintenanceMode flips the maintenance switch gating non-admin logins.
func (s *AdminService) SetMaintenanceMode(ctx context.Context, on bool) error {
	if err := s.repos.Settings(s.db).Set(ctx, common.MaintenanceSettingKey, strconv.FormatBool(on)); err != nil {
		return &common.StoreError{Cause: err}
	}

	s.logger.Info(ctx, "maintenance mode set", "on", on)
	return nil
}

// MaintenanceModeOn reports the current maintenance switch; an absent
// setting counts as off.
func (s *AdminService) MaintenanceModeOn(ctx context.Context) (bool, error) {
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
