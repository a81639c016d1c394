package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/univerp/authd/internal/common"
	"github.com/univerp/authd/internal/dbx"
	"github.com/univerp/authd/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.AuthUser) (*models.AuthUser, error) {

	query :=
		`INSERT INTO users_auth (user_id, username, password_hash, role, status)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.Role, user.Status).Scan(&user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindActiveByUsernameForUpdate(ctx context.Context, username string) (*models.AuthUser, error) {
	query :=
		`SELECT user_id, username, password_hash, role, status, failed_attempts, lockout_until, last_login
		 FROM users_auth
		 WHERE username = $1 AND status = 'ACTIVE'
		 FOR UPDATE
		 `

	user := &models.AuthUser{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.Status,
		&user.FailedAttempts, &user.LockoutUntil, &user.LastLogin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string) (*models.AuthUser, error) {
	query :=
		`SELECT user_id, username, password_hash, role, status, failed_attempts, lockout_until, last_login
		 FROM users_auth
		 WHERE user_id = $1
		 `

	user := &models.AuthUser{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.Status,
		&user.FailedAttempts, &user.LockoutUntil, &user.LastLogin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// IncrementFailedAttempts writes the counter bump and, when the attempt
// crosses the threshold, the lockout expiry in one UPDATE, so a failure is
// never half-recorded.
func (r *PostgresRepository) IncrementFailedAttempts(ctx context.Context, userID string, lockUntil *time.Time) error {
	query :=
		`UPDATE users_auth
		 SET failed_attempts = failed_attempts + 1, lockout_until = $2
		 WHERE user_id = $1
		 `

	return r.exec(ctx, query, userID, lockUntil)
}

func (r *PostgresRepository) ResetFailedAttemptsAndClearLockout(ctx context.Context, userID string) error {
	query :=
		`UPDATE users_auth
		 SET failed_attempts = 0, lockout_until = NULL
		 WHERE user_id = $1
		 `

	return r.exec(ctx, query, userID)
}

func (r *PostgresRepository) ClearLockout(ctx context.Context, userID string) error {
	query :=
		`UPDATE users_auth
		 SET lockout_until = NULL
		 WHERE user_id = $1
		 `

	return r.exec(ctx, query, userID)
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	query :=
		`UPDATE users_auth
		 SET password_hash = $2
		 WHERE user_id = $1
		 `

	return r.exec(ctx, query, userID, newHash)
}

func (r *PostgresRepository) TouchLastLogin(ctx context.Context, userID string) error {
	query :=
		`UPDATE users_auth
		 SET last_login = now()
		 WHERE user_id = $1
		 `

	return r.exec(ctx, query, userID)
}

// exec runs an UPDATE addressed by user id and treats a zero row count as
// common.ErrorNotFound.
func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
