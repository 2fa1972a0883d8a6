package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values by key. A miss is (nil, false, nil).
// ttl <= 0 means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// FakeCache runs the configured functions or panics, for tests.
type FakeCache struct {
	GetFn   func(ctx context.Context, key string) ([]byte, bool, error)
	SetFn   func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	CloseFn func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, ttl)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
