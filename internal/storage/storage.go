package storage

import (
	"context"
	"errors"
)

// KeyValue is the durable persistence boundary. The core uses it for exactly
// one record (the remembered login identity), but the contract is a plain
// string KV so other collaborators can snapshot state through it too.
type KeyValue interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

var ErrKeyNotFound = errors.New("key not found")
