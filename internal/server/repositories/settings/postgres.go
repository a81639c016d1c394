package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/univerp/authd/internal/common"
	"github.com/univerp/authd/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (string, error) {
	query :=
		`SELECT setting_value FROM settings
		 WHERE setting_key = $1
		 `

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return value, nil
}

func (r *PostgresRepository) Set(ctx context.Context, key, value string) error {
	query :=
		`INSERT INTO settings (setting_key, setting_value)
		 VALUES ($1, $2)
		 ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value
		 `

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
