package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunaway loads the configuration of a runner variant.
// Search order: customPath -> ~/.arcade/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default.
// Files are layered over the variant defaults, so a file only needs the keys it changes.
// A custom path must exist, parse strictly and validate; the implicit locations are
// skipped when broken.
func LoadRunaway(v Variant, customPath string) (RunawayConfig, error) {
	filename := string(v) + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunawayConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeOver(DefaultConfigFor(v), data, true)
		if err != nil {
			return RunawayConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RunawayConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeOver(DefaultConfigFor(v), data, false); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeOver(DefaultConfigFor(v), GetDefaultYAML(v), false)
	if err != nil {
		return DefaultConfigFor(v), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeOver unmarshals data on top of base. Strict mode rejects unknown keys.
func decodeOver(base RunawayConfig, data []byte, strict bool) (RunawayConfig, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML, for `config` dumps.
func Marshal(cfg RunawayConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRunawayPreset modifies the config based on a difficulty preset.
func ApplyRunawayPreset(cfg *RunawayConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust survivability based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Session.MaxLives = 5
		cfg.Hazards.InvincibilityMs *= 1.5
		cfg.Hazards.StunMs *= 0.7
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Session.MaxLives = 3
		cfg.Hazards.HitboxShrink /= 2
		cfg.Hazards.StunMs *= 1.4
	}
}
