package jwt

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		SigningMethod: MethodHS256,
		SigningKey:    testKey,
		Issuer:        "test",
	})
	if err != nil {
		t.Fatalf("manager init failed: %v", err)
	}
	return m
}

func TestIssueParseRoundtrip(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Issue(Payload{ID: "u1", Email: "a@x.com", Name: "Alice"}, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	p, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.ID != "u1" || p.Email != "a@x.com" || p.Name != "Alice" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestIssueRejectsNonPositiveTTL(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Issue(Payload{ID: "u1"}, 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
	if _, err := m.Issue(Payload{ID: "u1"}, -time.Minute); err == nil {
		t.Fatal("expected error for negative ttl")
	}
}

func TestIssuedTokensAreUnique(t *testing.T) {
	m := newTestManager(t)
	p := Payload{ID: "u1", Email: "a@x.com", Name: "Alice"}

	a, err := m.Issue(p, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	b, err := m.Issue(p, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct tokens for the same payload")
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m := newTestManager(t)
	token, err := m.Issue(Payload{ID: "u1"}, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	other, err := NewManager(Config{
		SigningMethod: MethodHS256,
		SigningKey:    []byte("ffffffffffffffffffffffffffffffff"),
		Issuer:        "test",
	})
	if err != nil {
		t.Fatalf("manager init failed: %v", err)
	}

	if _, err := other.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m := newTestManager(t)

	claims := tokenClaims{
		ID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "test",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := m.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	for _, s := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Parse(s); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("%q: expected ErrTokenInvalid, got %v", s, err)
		}
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	issuerA, err := NewManager(Config{SigningMethod: MethodHS256, SigningKey: testKey, Issuer: "a"})
	if err != nil {
		t.Fatalf("manager init failed: %v", err)
	}
	issuerB, err := NewManager(Config{SigningMethod: MethodHS256, SigningKey: testKey, Issuer: "b"})
	if err != nil {
		t.Fatalf("manager init failed: %v", err)
	}

	token, err := issuerA.Issue(Payload{ID: "u1"}, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := issuerB.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager(Config{SigningMethod: MethodHS256}); err == nil {
		t.Fatal("expected error for missing hs256 key")
	}
	if _, err := NewManager(Config{SigningMethod: "rs256", SigningKey: testKey}); err == nil {
		t.Fatal("expected error for unsupported method")
	}
	if _, err := NewManager(Config{SigningMethod: MethodHS256, SigningKey: testKey, Leeway: 5 * time.Minute}); err == nil {
		t.Fatal("expected error for excessive leeway")
	}
}

func TestEd25519Roundtrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	m, err := NewManager(Config{
		SigningMethod: MethodEd25519,
		SigningKey:    priv,
		PublicKey:     pub,
	})
	if err != nil {
		t.Fatalf("manager init failed: %v", err)
	}

	token, err := m.Issue(Payload{ID: "u1", Email: "a@x.com"}, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	p, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.ID != "u1" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}
