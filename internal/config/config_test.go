package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetPort clears PORT for the duration of the test.
func unsetPort(t *testing.T) {
	t.Helper()
	t.Setenv(envPort, "")
	if err := os.Unsetenv(envPort); err != nil {
		t.Fatalf("unset %s: %v", envPort, err)
	}
}

func TestLoadDefaultsWhenPortUnset(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetPort(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Fatalf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Addr() != ":5000" {
		t.Fatalf("expected addr :5000, got %q", cfg.Addr())
	}
}

func TestLoadDefaultsWhenPortEmpty(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envPort, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Fatalf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
}

func TestLoadReadsPort(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
		addr string
	}{
		{name: "explicit", raw: "8080", want: 8080, addr: ":8080"},
		{name: "ephemeral", raw: "0", want: 0, addr: ":0"},
		{name: "surrounding whitespace", raw: " 9090 ", want: 9090, addr: ":9090"},
		{name: "out of range passes through", raw: "70000", want: 70000, addr: ":70000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(envPort, tt.raw)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Port != tt.want {
				t.Fatalf("expected port %d, got %d", tt.want, cfg.Port)
			}
			if cfg.Addr() != tt.addr {
				t.Fatalf("expected addr %q, got %q", tt.addr, cfg.Addr())
			}
		})
	}
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envPort, "http")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric PORT")
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, envFile), []byte("PORT=7070\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	unsetPort(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Fatalf("expected port 7070 from .env, got %d", cfg.Port)
	}
}

func TestLoadEnvironmentOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, envFile), []byte("PORT=7070\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	t.Setenv(envPort, "6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 6060 {
		t.Fatalf("expected environment port 6060, got %d", cfg.Port)
	}
}
