package store

import (
	"context"
	"errors"
)

// Collection keys. Each key holds one JSON array blob,
// rewritten in full whenever its collection changes.
const (
	KeyParts   = "kintore:parts"
	KeyLifts   = "kintore:lifts"
	KeyEntries = "kintore:entries"
	KeyEvents  = "kintore:events"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a key-value blob store for the four kintore collections.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, blob []byte) error
}
