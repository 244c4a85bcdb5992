package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the Redis-backed [Cache]. Values are JSON-encoded [Payload]
// documents keyed by "<prefix>:rt:<token>" with a per-entry TTL.
type Store struct {
	client *redis.Client
	prefix string
}

var _ Cache = (*Store)(nil)

// NewStore describes the newstore operation and its observable behavior.
//
// NewStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewStore(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "oa"
	}
	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (s *Store) key(token string) string {
	return s.prefix + ":rt:" + token
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Store) Set(ctx context.Context, token string, payload Payload, ttl time.Duration) error {
	if token == "" {
		return errors.New("empty token")
	}
	if ttl <= 0 {
		return errors.New("invalid ttl")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Store) Get(ctx context.Context, token string) (Payload, error) {
	if token == "" {
		return Payload{}, ErrCacheMiss
	}

	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Payload{}, ErrCacheMiss
		}
		return Payload{}, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		// Corrupt entries are treated as absent so the caller falls back
		// to the durable directory.
		return Payload{}, ErrCacheMiss
	}
	return p, nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Store) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return nil
}
