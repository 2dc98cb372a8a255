package config

import (
	"os"
	"testing"
)

func unsetBuildEnv() {
	_ = os.Unsetenv("COASTER_BUILD_TARGET")
	_ = os.Unsetenv("COASTER_DB_DRIVER")
	_ = os.Unsetenv("COASTER_POSTGRES_DSN")
}

func TestConfigLoad_AIDefaults(t *testing.T) {
	unsetBuildEnv()
	_ = os.Unsetenv("COASTER_AI_MODEL")
	_ = os.Unsetenv("COASTER_AI_MAX_TOKENS")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.AIModel != "gpt-4.1-nano" || cfg.AIMaxTokens != 500 {
		t.Fatalf("unexpected default AI config: %+v", cfg)
	}
}

func TestConfigLoad_AIEnvOverride(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("COASTER_AI_MODEL", "test-model")
	defer func() { _ = os.Unsetenv("COASTER_AI_MODEL") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.AIModel != "test-model" {
		t.Fatalf("AI model env override failed, got %s", cfg.AIModel)
	}
}

func TestResolveDefaultsLocal(t *testing.T) {
	unsetBuildEnv()
	defer unsetBuildEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("unexpected mapping for local: %s", cfg.DBDriver)
	}
}

func TestResolveDefaultsCloud(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("COASTER_BUILD_TARGET", "cloud")
	_ = os.Setenv("COASTER_POSTGRES_DSN", "postgres://localhost/coaster")
	defer unsetBuildEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("unexpected mapping for cloud: %s", cfg.DBDriver)
	}
}

func TestResolveDefaultsCloudRequiresDSN(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("COASTER_BUILD_TARGET", "cloud")
	defer unsetBuildEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error when postgres DSN missing")
	}
}

func TestResolveDefaultsOverride(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("COASTER_BUILD_TARGET", "cloud")
	_ = os.Setenv("COASTER_DB_DRIVER", "sqlite")
	defer unsetBuildEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("override failed, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaultsRejectsUnknownTarget(t *testing.T) {
	unsetBuildEnv()
	_ = os.Setenv("COASTER_BUILD_TARGET", "mainframe")
	defer unsetBuildEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for unknown build target")
	}
}
