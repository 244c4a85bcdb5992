package session

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by [Cache.Get] when no entry exists for the token.
var ErrCacheMiss = errors.New("session cache miss")

// ErrCacheUnavailable wraps transport failures talking to the cache backend.
var ErrCacheUnavailable = errors.New("session cache unavailable")

// Payload is the identity stored per refresh token and embedded in issued
// tokens. Field names match the token claim keys.
type Payload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Cache defines a public type used by orgAuth APIs.
//
// Cache instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Cache interface {
	Set(ctx context.Context, token string, payload Payload, ttl time.Duration) error
	Get(ctx context.Context, token string) (Payload, error)
	Delete(ctx context.Context, token string) error
}
