package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Backup || !cfg.Recursive || cfg.BackupSuffix != ".backup" {
		t.Errorf("defaults wrong: %+v", cfg)
	}
	if !cfg.HasExtension("a.FLAC") || !cfg.HasExtension("b.lrc") || cfg.HasExtension("c.wav") {
		t.Errorf("default extensions wrong: %v", cfg.Extensions)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "backup: false\nbackup_suffix: .bak\nextensions: [MP3, .lrc]\nexport: srt\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backup || cfg.BackupSuffix != ".bak" || cfg.Export != "srt" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != ".mp3" || cfg.Extensions[1] != ".lrc" {
		t.Errorf("extensions not normalized: %v", cfg.Extensions)
	}
}

func TestLoadBadExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("export: vtt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown export format")
	}
}
