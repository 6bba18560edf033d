package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ARTICLES_ENV", "ARTICLES_ADDR", "ARTICLES_DIAG_ADDR", "ARTICLES_DATABASE_URL", "ARTICLES_SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if cfg.Production() {
		t.Error("default env must not be production")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ARTICLES_ENV", "production")
	t.Setenv("ARTICLES_ADDR", ":8080")
	t.Setenv("ARTICLES_DATABASE_URL", "postgres://localhost/articles")
	t.Setenv("ARTICLES_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Env:             EnvProduction,
		Addr:            ":8080",
		DiagAddr:        ":9999",
		DatabaseURL:     "postgres://localhost/articles",
		ShutdownTimeout: 3 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Production() {
		t.Error("Production() = false")
	}
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	t.Setenv("ARTICLES_ENV", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}
