package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.Toggle != " " {
		t.Errorf("Default Toggle key = %q, want space", defaults.Toggle)
	}
	if defaults.Reset != "R" {
		t.Errorf("Default Reset key = %s, want R", defaults.Reset)
	}
}

func TestPathPrecedence(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("CARDS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	p, err := Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	if want := filepath.Join(tempDir, "cards", "config.yaml"); p != want {
		t.Errorf("Path() = %s, want %s", p, want)
	}

	t.Setenv("CARDS_CONFIG", "/elsewhere/c.yaml")
	p, _ = Path()
	if p != "/elsewhere/c.yaml" {
		t.Errorf("Path() = %s, want CARDS_CONFIG value", p)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("CARDS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %s, want %s", cfg.Theme, DefaultTheme)
	}
	if cfg.IDs != DefaultIDs {
		t.Errorf("IDs = %s, want %s", cfg.IDs, DefaultIDs)
	}
	if cfg.Seed.Count != DefaultSeedCount {
		t.Errorf("Seed.Count = %d, want %d", cfg.Seed.Count, DefaultSeedCount)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("CARDS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "cards")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `theme: neon
ids: uuid
seed:
  count: 3
  options: [red, green]
  rand_seed: 7
log:
  level: debug
key_mappings:
  quit: "x"
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Theme != "neon" || cfg.IDs != "uuid" {
		t.Errorf("Theme/IDs = %s/%s, want neon/uuid", cfg.Theme, cfg.IDs)
	}
	if cfg.Seed.Count != 3 || cfg.Seed.RandSeed != 7 {
		t.Errorf("Seed = %+v, want count 3 rand_seed 7", cfg.Seed)
	}
	if len(cfg.Seed.Options) != 2 || cfg.Seed.Options[0] != "red" {
		t.Errorf("Seed.Options = %v, want [red green]", cfg.Seed.Options)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.AddItem != "a" {
		t.Errorf("Loaded AddItem key = %s, want a (default)", cfg.KeyMappings.AddItem)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "theme: [\n"},
		{"unknown theme", "theme: disco\n"},
		{"unknown ids", "ids: snowflake\n"},
		{"unknown level", "log:\n  level: loud\n"},
		{"negative count", "seed:\n  count: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(p, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(p); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.content)
			}
		})
	}
}

func TestSaveConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Theme = "mono"
	cfg.KeyMappings.Quit = "x"

	if err := cfg.Save(p); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	cfg2, err := Load(p)
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.Theme != "mono" {
		t.Errorf("Reloaded Theme = %s, want mono", cfg2.Theme)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
}
