// Package kv holds the key-value surfaces the order history can live on.
// Every surface stores opaque byte values under string keys and has
// last-write-wins semantics.
package kv

import "context"

// Store is a minimal key-value surface.
type Store interface {
	// Get returns the value under key. found is false when the key was never written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put replaces the value under key.
	Put(ctx context.Context, key string, value []byte) error
}
