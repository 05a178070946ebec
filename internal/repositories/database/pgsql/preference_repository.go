package pgsql

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPreferenceRepository implements the key/value preference store using pgxpool.
type PgxPreferenceRepository struct {
	BaseRepository
}

func newPgxPreferenceRepository(db *pgxpool.Pool) *PgxPreferenceRepository {
	return &PgxPreferenceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindPreference retrieves the stored value for a key.
func (r *PgxPreferenceRepository) FindPreference(ctx context.Context, key string) (string, error) {
	var value string
	err := r.Pool.QueryRow(ctx,
		`SELECT value FROM user_preferences WHERE key = $1;`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: preference %q not set", apperrors.ErrNotFound, key)
		}
		return "", fmt.Errorf("%w: failed to read preference %q: %v", apperrors.ErrPersistence, key, err)
	}
	return value, nil
}

// SavePreference upserts a single key/value row.
func (r *PgxPreferenceRepository) SavePreference(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO user_preferences (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();
	`
	if _, err := r.Pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: failed to save preference %q: %v", apperrors.ErrPersistence, key, err)
	}
	return nil
}
