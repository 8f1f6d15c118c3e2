package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("reads defaults file", func(t *testing.T) {
		dir := t.TempDir()
		content := "level: 3\ngitignore: true\nignore:\n  - build/\n  - \"*.log\"\n"
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg := Load(dir)
		if cfg.Level != 3 {
			t.Errorf("Level = %d, want 3", cfg.Level)
		}
		if !cfg.Gitignore {
			t.Error("Gitignore = false, want true")
		}
		if len(cfg.Ignore) != 2 || cfg.Ignore[0] != "build/" || cfg.Ignore[1] != "*.log" {
			t.Errorf("Ignore = %v, want [build/ *.log]", cfg.Ignore)
		}
	})

	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg := Load(t.TempDir())
		if cfg.Level != 0 || cfg.Gitignore || cfg.Ignore != nil {
			t.Errorf("Load(empty dir) = %+v, want zero value", cfg)
		}
	})

	t.Run("invalid yaml yields zero config", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, FileName), []byte("level: [broken"), 0o644)

		cfg := Load(dir)
		if cfg.Level != 0 || cfg.Gitignore || cfg.Ignore != nil {
			t.Errorf("Load(invalid yaml) = %+v, want zero value", cfg)
		}
	})

	t.Run("negative level clamps to unlimited", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, FileName), []byte("level: -2\n"), 0o644)

		if cfg := Load(dir); cfg.Level != 0 {
			t.Errorf("Level = %d, want 0", cfg.Level)
		}
	})
}
