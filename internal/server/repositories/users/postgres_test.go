package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/univerp/authd/internal/common"
	"github.com/univerp/authd/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users_auth\s*\(user_id,\s*username,\s*password_hash,\s*role,\s*status\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at\s*$`

	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(created)
	mock.ExpectQuery(q).
		WithArgs("u-1", "alice", "$2a$hash", models.RoleStudent, models.StatusActive).
		WillReturnRows(rows)

	u := &models.AuthUser{ID: "u-1", Username: "alice", PasswordHash: "$2a$hash", Role: models.RoleStudent, Status: models.StatusActive}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users_auth`).
		WillReturnError(errors.New("duplicate key"))

	_, err := repo.Create(context.Background(), &models.AuthUser{ID: "u-1", Username: "alice"})
	if err == nil || !regexp.MustCompile(`db error: .*duplicate key`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindActiveByUsernameForUpdate_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id,\s*username,\s*password_hash,\s*role,\s*status,\s*failed_attempts,\s*lockout_until,\s*last_login\s+FROM\s+users_auth\s+WHERE\s+username\s*=\s*\$1\s+AND\s+status\s*=\s*'ACTIVE'\s+FOR\s+UPDATE\s*$`

	until := time.Now().Add(5 * time.Minute)
	rows := sqlmock.NewRows([]string{"user_id", "username", "password_hash", "role", "status", "failed_attempts", "lockout_until", "last_login"}).
		AddRow("u-1", "alice", "$2a$hash", "STUDENT", "ACTIVE", 3, until, nil)
	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.FindActiveByUsernameForUpdate(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindActiveByUsernameForUpdate error: %v", err)
	}
	if got.ID != "u-1" || got.FailedAttempts != 3 {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.LockoutUntil == nil || !got.LockoutUntil.Equal(until) {
		t.Fatalf("unexpected lockout_until: %v", got.LockoutUntil)
	}
	if got.LastLogin != nil {
		t.Fatalf("expected nil last_login, got %v", got.LastLogin)
	}
}

func TestFindActiveByUsernameForUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+user_id,.*FOR\s+UPDATE`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindActiveByUsernameForUpdate(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+user_id,.*WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestIncrementFailedAttempts_WithoutLockout(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users_auth\s+SET\s+failed_attempts\s*=\s*failed_attempts\s*\+\s*1,\s*lockout_until\s*=\s*\$2\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementFailedAttempts(context.Background(), "u-1", nil); err != nil {
		t.Fatalf("IncrementFailedAttempts error: %v", err)
	}
}

func TestIncrementFailedAttempts_WithLockout(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	until := time.Now().Add(10 * time.Minute)
	mock.ExpectExec(`UPDATE\s+users_auth\s+SET\s+failed_attempts`).
		WithArgs("u-1", &until).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementFailedAttempts(context.Background(), "u-1", &until); err != nil {
		t.Fatalf("IncrementFailedAttempts error: %v", err)
	}
}

func TestResetFailedAttemptsAndClearLockout(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users_auth\s+SET\s+failed_attempts\s*=\s*0,\s*lockout_until\s*=\s*NULL\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ResetFailedAttemptsAndClearLockout(context.Background(), "u-1"); err != nil {
		t.Fatalf("ResetFailedAttemptsAndClearLockout error: %v", err)
	}
}

func TestClearLockout(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users_auth\s+SET\s+lockout_until\s*=\s*NULL\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearLockout(context.Background(), "u-1"); err != nil {
		t.Fatalf("ClearLockout error: %v", err)
	}
}

func TestUpdatePasswordHash_NoSuchUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users_auth\s+SET\s+password_hash`).
		WithArgs("missing", "$2a$new").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordHash(context.Background(), "missing", "$2a$new")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestTouchLastLogin(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users_auth\s+SET\s+last_login\s*=\s*now\(\)\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchLastLogin(context.Background(), "u-1"); err != nil {
		t.Fatalf("TouchLastLogin error: %v", err)
	}
}
