package metadata

import "context"

// Reader looks up stored values. A missing key yields (nil, nil).
type Reader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Writer stores and removes values.
type Writer interface {
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Repository is the full key/value store.
type Repository interface {
	Reader
	Writer
}

var _ Repository = (*SQLiteRepository)(nil)
