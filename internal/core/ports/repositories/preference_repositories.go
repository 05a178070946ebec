package repositories

import "context"

// PreferenceReader defines read operations for user preferences.
type PreferenceReader interface {
	// FindPreference returns the stored value for a key, or
	// apperrors.ErrNotFound when the key has never been written.
	FindPreference(ctx context.Context, key string) (string, error)
}

// PreferenceWriter defines write operations for user preferences.
type PreferenceWriter interface {
	// SavePreference upserts a single key/value row, overwriting any
	// previous value.
	SavePreference(ctx context.Context, key, value string) error
}

// PreferenceRepositoryFacade combines all preference repository interfaces.
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
