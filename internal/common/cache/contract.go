package cache

import (
	"context"
	"errors"
	"time"
)

// Client caches JSON-serialisable values keyed by string. Used to avoid
// re-fetching slow-moving downstream records (gateway accounts, service
// metadata) on every request.
type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error)
}

var (
	ErrNotExists           = errors.New("key not exists on cache storage")
	ErrCallbackNotProvided = errors.New("callback not provided")
	ErrInvalidType         = errors.New("invalid type result")
)

type GetOrSetOpts[T any] struct {
	Key      string
	TTL      time.Duration
	Callback func() (T, error)
}
