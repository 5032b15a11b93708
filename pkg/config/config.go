package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Backup       bool     `yaml:"backup"`
	BackupSuffix string   `yaml:"backup_suffix"`
	Recursive    bool     `yaml:"recursive"`
	Extensions   []string `yaml:"extensions"`
	Export       string   `yaml:"export"`
	Normalize    bool     `yaml:"normalize"`
}

func Default() *Config {
	return &Config{
		Backup:       true,
		BackupSuffix: ".backup",
		Recursive:    true,
		Extensions:   []string{".flac", ".mp3", ".ogg", ".m4a", ".mp4", ".lrc", ".txt"},
		Export:       "",
		Normalize:    false,
	}
}

// Load reads a YAML config. A missing file just returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
	switch c.Export {
	case "", "srt", "ass":
	default:
		return fmt.Errorf("unknown export format %q", c.Export)
	}
	if c.BackupSuffix == "" {
		c.BackupSuffix = ".backup"
	}
	return nil
}

// HasExtension reports whether the path carries one of the configured
// lyrics-bearing extensions.
func (c *Config) HasExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
