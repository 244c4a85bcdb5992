package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemorySetGetDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	in := Payload{ID: "u1", Email: "a@x.com", Name: "Alice"}
	if err := m.Set(ctx, "tok", in, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	out, err := m.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}

	if err := m.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := m.Get(ctx, "tok"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after delete, got %v", err)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "tok", Payload{ID: "u1"}, -time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := m.Get(ctx, "tok"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss for expired entry, got %v", err)
	}
}

func TestMemoryFlush(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "tok", Payload{ID: "u1"}, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	m.Flush()
	if _, err := m.Get(ctx, "tok"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after flush, got %v", err)
	}
}
