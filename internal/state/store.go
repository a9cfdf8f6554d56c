package state

import (
	"context"
	"errors"
)

// Fixed document names; both applications rely on them surviving restarts.
const (
	CartDocument = "cart-storage"
	AuthDocument = "auth-storage"
)

// ErrNotFound is returned when no document exists under the given name.
var ErrNotFound = errors.New("state: document not found")

// Store persists named JSON documents across process restarts. Writes are
// synchronous; callers that treat durability as fire-and-forget log the
// error instead of propagating it.
type Store interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}
