package configs

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv removes every PONG_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PONG_SPECTATE_ADDR", "PONG_SERVER_URL", "PONG_TPS", "PONG_WINDOW_SCALE", "PONG_DEBUG"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != New() {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, New())
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "PONG_SPECTATE_ADDR=:9090\nPONG_TPS=120\nPONG_WINDOW_SCALE=1.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv não sobrescreve variáveis já definidas.
	clearEnv(t)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SpectateAddr != ":9090" {
		t.Fatalf("SpectateAddr = %q, want :9090", cfg.SpectateAddr)
	}
	if cfg.TPS != 120 {
		t.Fatalf("TPS = %d, want 120", cfg.TPS)
	}
	if cfg.WindowScale != 1.5 {
		t.Fatalf("WindowScale = %f, want 1.5", cfg.WindowScale)
	}
}

func TestLoadRejectsBadTPS(t *testing.T) {
	clearEnv(t)
	t.Setenv("PONG_TPS", "fast")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for PONG_TPS=fast")
	}
}

func TestLoadDebugFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv("PONG_DEBUG", "true")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Fatalf("expected Debug to be set")
	}
}
