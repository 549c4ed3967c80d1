package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() diverge:\nyaml: %+v\ncode: %+v", cfg, DefaultConfig())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() without files should return defaults, got %+v", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeFile(t, work, "configs/bubbles.yaml", "gameplay:\n  health: 7\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Gameplay.Health != 7 {
		t.Errorf("local config should be used, health = %d", cfg.Gameplay.Health)
	}

	// User config wins over the local directory
	writeFile(t, home, ".bubbles/configs/bubbles.yaml", "gameplay:\n  health: 9\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Gameplay.Health != 9 {
		t.Errorf("user config should win, health = %d", cfg.Gameplay.Health)
	}

	// Custom path wins over everything
	custom := writeFile(t, work, "custom.yaml", "gameplay:\n  health: 1\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error: %v", err)
	}
	if cfg.Gameplay.Health != 1 {
		t.Errorf("custom config should win, health = %d", cfg.Gameplay.Health)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "partial.yaml", `
physics:
  reflection: exact
bubbles:
  - { x: 100, y: 100, radius: 10, vx: 1, vy: 2 }
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Physics.Reflection != ReflectionExact {
		t.Errorf("reflection = %q, expected exact", cfg.Physics.Reflection)
	}
	if cfg.Physics.Timestep != 0.02 {
		t.Errorf("timestep should keep default, got %g", cfg.Physics.Timestep)
	}
	if len(cfg.Bubbles) != 1 {
		t.Errorf("bubble list should be replaced, got %d bubbles", len(cfg.Bubbles))
	}
	if cfg.Field.Width != 800 {
		t.Errorf("field width should keep default, got %g", cfg.Field.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := writeFile(t, dir, "bad.yaml", "field: [not, a, map")
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "gameplay:\n  health: 0\n")
	_, err := Load(invalid)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Code != "INVALID_HEALTH" {
		t.Errorf("code = %s, expected INVALID_HEALTH", verr.Code)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, DefaultConfig()); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(buf.String(), "reflection: approximate") {
		t.Errorf("encoded YAML missing reflection mode:\n%s", buf.String())
	}

	cfg, err := decode(buf.Bytes())
	if err != nil {
		t.Fatalf("decode() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("encoded config should decode back to the defaults")
	}
}
