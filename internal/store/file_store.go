package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/2beens/kintorelog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// FileStore keeps each key in its own JSON file under the root dir.
type FileStore struct {
	rootPath string
	mutex    sync.RWMutex
}

func NewFileStore(rootPath string) (*FileStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create store root dir: %w", err)
	}
	return &FileStore{
		rootPath: rootPath,
	}, nil
}

func (fs *FileStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "store.file.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	blob, err := os.ReadFile(fs.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read key file: %w", err)
	}
	return blob, nil
}

func (fs *FileStore) Set(ctx context.Context, key string, blob []byte) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "store.file.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))
	span.SetAttributes(attribute.Int("size", len(blob)))

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	// write to a temp file first, then rename, so a crash mid-write
	// never leaves a truncated collection behind
	keyPath := fs.keyPath(key)
	tmpPath := keyPath + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0o644); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	if err := os.Rename(tmpPath, keyPath); err != nil {
		return fmt.Errorf("rename key file: %w", err)
	}
	return nil
}

func (fs *FileStore) keyPath(key string) string {
	return filepath.Join(fs.rootPath, strings.ReplaceAll(key, ":", "_")+".json")
}
