package settings

import "context"

// Repository stores the small key/value settings table, currently only the
// maintenance-mode switch.
type Repository interface {
	// Get returns the value for key, or common.ErrorNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value for key.
	Set(ctx context.Context, key, value string) error
}
