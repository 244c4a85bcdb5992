package orgAuth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config defines a public type used by orgAuth APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	JWT      JWTConfig
	Session  SessionConfig
	Password PasswordConfig
	Metrics  MetricsConfig
}

/*
====================================
JWT CONFIG
====================================
*/

// JWTConfig defines a public type used by orgAuth APIs.
//
// JWTConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type JWTConfig struct {
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	SigningMethod string // "hs256" (default), "ed25519" optional
	SigningKey    []byte
	PublicKey     []byte
	Issuer        string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by orgAuth APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	RedisPrefix string
	// CacheTTL bounds how long a refresh-token cache entry lives.
	// Zero means "follow JWT.RefreshTTL".
	CacheTTL time.Duration
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig defines a public type used by orgAuth APIs.
//
// PasswordConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PasswordConfig struct {
	Cost int
}

// MetricsConfig defines a public type used by orgAuth APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTTL:     1 * time.Hour,
			RefreshTTL:    7 * 24 * time.Hour,
			SigningMethod: "hs256",
		},
		Session: SessionConfig{
			RedisPrefix: "oa",
			CacheTTL:    0,
		},
		Password: PasswordConfig{
			Cost: 10,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

// DefaultConfig returns the baseline configuration used by [New] before
// any WithConfig override.
func DefaultConfig() Config {
	return defaultConfig()
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.JWT.SigningKey = cloneBytes(cfg.JWT.SigningKey)
	out.JWT.PublicKey = cloneBytes(cfg.JWT.PublicKey)
	return out
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// JWT
	if c.JWT.AccessTTL <= 0 {
		return errors.New("JWT AccessTTL must be > 0")
	}
	if c.JWT.RefreshTTL <= 0 {
		return errors.New("JWT RefreshTTL must be > 0")
	}
	if c.JWT.RefreshTTL < c.JWT.AccessTTL {
		return errors.New("JWT RefreshTTL must be >= AccessTTL")
	}

	if c.JWT.SigningMethod != "hs256" && c.JWT.SigningMethod != "ed25519" {
		return errors.New("unsupported JWT signing method")
	}

	if c.JWT.SigningMethod == "hs256" && len(c.JWT.SigningKey) < 32 {
		return errors.New("hs256 requires SigningKey of at least 32 bytes")
	}
	if c.JWT.SigningMethod == "ed25519" && len(c.JWT.SigningKey) == 0 {
		return errors.New("ed25519 requires SigningKey")
	}
	if c.JWT.SigningMethod == "ed25519" && len(c.JWT.PublicKey) == 0 {
		return errors.New("ed25519 requires PublicKey")
	}

	// Session
	if c.Session.CacheTTL < 0 {
		return errors.New("Session CacheTTL must be >= 0")
	}
	if c.Session.CacheTTL > c.JWT.RefreshTTL {
		return errors.New("Session CacheTTL must not exceed JWT RefreshTTL")
	}

	// Password
	if c.Password.Cost < bcrypt.MinCost || c.Password.Cost > bcrypt.MaxCost {
		return errors.New("Password Cost is outside the bcrypt range")
	}

	return nil
}

// cacheTTL resolves the effective session-cache entry lifetime.
func (c *Config) cacheTTL() time.Duration {
	if c.Session.CacheTTL > 0 {
		return c.Session.CacheTTL
	}
	return c.JWT.RefreshTTL
}
