package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("CONFIG_FILE", "")
	if _, err := LoadConfig(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("err=%v want ErrMissingJWTSecret", err)
	}
}

func TestLoadConfigDefaultsAndAlias(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("SECRET_KEY", "legacy")
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Auth.JWTSecretKey != "legacy" {
		t.Fatalf("secret=%q", cfg.Auth.JWTSecretKey)
	}
	if cfg.Addr() != ":8080" || cfg.Auth.AccessTokenTTL != 30*time.Minute || cfg.AI.Provider != ProviderGemini {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigLayersYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlDoc := `
http:
  port: "9000"
auth:
  jwt_secret_key: from-file
  access_token_ttl: 15m
ai:
  provider: openai
  timeout: 5s
redis:
  addr: localhost:6379
`
	if err := os.WriteFile(path, []byte(yamlDoc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_TIMEOUT_SECONDS", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("PORT", "7000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Auth.JWTSecretKey != "from-file" || cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("auth=%+v", cfg.Auth)
	}
	if cfg.AI.Provider != ProviderOpenAI || cfg.AI.Timeout != 5*time.Second {
		t.Fatalf("ai=%+v", cfg.AI)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis=%+v", cfg.Redis)
	}
	if cfg.HTTP.Port != "7000" {
		t.Fatalf("env did not override file port: %q", cfg.HTTP.Port)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Auth.JWTSecretKey = "x"
	cfg.AI.Provider = "claude"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error")
	}
}
