// File: session/store.go
package session

import (
	"context"

	"github.com/FADHEEL1234/Online-Medical/models"
)

// Store persists one session snapshot per browser session id. Only the auth
// service and the API client's 401 handler write through it; views read the
// snapshot fresh on every navigation.
type Store interface {
	// Get returns the stored snapshot, or the anonymous default when the id
	// is unknown or expired. No validation is performed; values are trusted
	// as written.
	Get(ctx context.Context, sid string) (models.Session, error)

	// Set replaces the whole snapshot in a single batch. There are no
	// partial updates; a concurrent write simply wins last.
	Set(ctx context.Context, sid string, sess models.Session) error

	// Clear resets the snapshot to the anonymous default. Idempotent.
	Clear(ctx context.Context, sid string) error
}
