package storage

import "context"

// Storage keys. Each is an independent record; any may be absent.
const (
	KeyUser              = "user"
	KeyAccessToken       = "access_token"
	KeyRefreshToken      = "refresh_token"
	KeyParentDetails     = "parentDetails"
	KeyLastCheckin       = "lastCheckin"
	KeyCheckinData       = "checkinData"
	KeyDarkMode          = "darkMode"
	KeyPreferredLanguage = "preferredLanguage"
	KeyJournalEntries    = "zenJournalEntries"
)

// Store is the durable key/value store that survives app restarts.
// Values are opaque strings; structured records are stored as JSON.
// Last write wins; there is no cross-record consistency.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every record in the store.
	Clear(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}
