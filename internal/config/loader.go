package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadReactor loads and validates the game configuration.
// Search order: customPath -> ~/.reactor/configs/reactor.yaml -> ./configs/reactor.yaml -> embedded default
func LoadReactor(customPath string) (ReactorConfig, error) {
	cfg, err := loadReactor(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadReactor(customPath string) (ReactorConfig, error) {
	var cfg ReactorConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("reactor.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/reactor.yaml"); err == nil {
		cfg = ReactorConfig{}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = ReactorConfig{}
	if err := yaml.Unmarshal(defaultReactorYAML, &cfg); err != nil {
		return DefaultReactorConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reactor", "configs", filename)
}

// ApplyReactorPreset modifies the config based on a difficulty preset.
func ApplyReactorPreset(cfg *ReactorConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the player's margins based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Hull *= 1.5
		cfg.Player.HeatCapacity += 2
	case DifficultyHard:
		cfg.Player.Hull *= 0.75
		cfg.Player.HeatCapacity -= 1
		cfg.Player.JamOverheat = true
	}
}
