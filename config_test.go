package orgAuth

import (
	"bytes"
	"testing"
	"time"
)

func testConfig() Config {
	cfg := defaultConfig()
	cfg.JWT.SigningKey = []byte("0123456789abcdef0123456789abcdef")
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := defaultConfig()

	if cfg.JWT.AccessTTL != time.Hour {
		t.Fatalf("expected access ttl 1h, got %v", cfg.JWT.AccessTTL)
	}
	if cfg.JWT.RefreshTTL != 7*24*time.Hour {
		t.Fatalf("expected refresh ttl 168h, got %v", cfg.JWT.RefreshTTL)
	}
	if cfg.Password.Cost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cfg.Password.Cost)
	}
	if cfg.JWT.SigningMethod != "hs256" {
		t.Fatalf("expected hs256 default, got %q", cfg.JWT.SigningMethod)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "baseline valid",
			mutate:    func(c *Config) {},
			wantValid: true,
		},
		{
			name: "access ttl invalid",
			mutate: func(c *Config) {
				c.JWT.AccessTTL = 0
			},
			wantValid: false,
		},
		{
			name: "refresh ttl invalid",
			mutate: func(c *Config) {
				c.JWT.RefreshTTL = -time.Hour
			},
			wantValid: false,
		},
		{
			name: "refresh shorter than access invalid",
			mutate: func(c *Config) {
				c.JWT.RefreshTTL = 30 * time.Minute
			},
			wantValid: false,
		},
		{
			name: "signing method invalid",
			mutate: func(c *Config) {
				c.JWT.SigningMethod = "rs256"
			},
			wantValid: false,
		},
		{
			name: "hs256 short key invalid",
			mutate: func(c *Config) {
				c.JWT.SigningKey = []byte("short")
			},
			wantValid: false,
		},
		{
			name: "ed25519 missing public key invalid",
			mutate: func(c *Config) {
				c.JWT.SigningMethod = "ed25519"
				c.JWT.PublicKey = nil
			},
			wantValid: false,
		},
		{
			name: "cache ttl above refresh ttl invalid",
			mutate: func(c *Config) {
				c.Session.CacheTTL = 30 * 24 * time.Hour
			},
			wantValid: false,
		},
		{
			name: "cache ttl within refresh ttl valid",
			mutate: func(c *Config) {
				c.Session.CacheTTL = 24 * time.Hour
			},
			wantValid: true,
		},
		{
			name: "cost out of range invalid",
			mutate: func(c *Config) {
				c.Password.Cost = 99
			},
			wantValid: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantValid && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tc.wantValid && err == nil {
				t.Fatal("expected invalid config, got nil")
			}
		})
	}
}

func TestConfigCacheTTLFallsBackToRefreshTTL(t *testing.T) {
	cfg := testConfig()

	if got := cfg.cacheTTL(); got != cfg.JWT.RefreshTTL {
		t.Fatalf("expected cache ttl %v, got %v", cfg.JWT.RefreshTTL, got)
	}

	cfg.Session.CacheTTL = time.Hour
	if got := cfg.cacheTTL(); got != time.Hour {
		t.Fatalf("expected cache ttl 1h, got %v", got)
	}
}

func TestCloneConfigCopiesKeys(t *testing.T) {
	cfg := testConfig()
	clone := cloneConfig(cfg)

	clone.JWT.SigningKey[0] ^= 0xff
	if bytes.Equal(cfg.JWT.SigningKey[:1], clone.JWT.SigningKey[:1]) {
		t.Fatal("expected cloned signing key to be independent")
	}
}
