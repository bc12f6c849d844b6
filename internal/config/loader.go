package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRiverRaid loads the rule constants.
// Search order: customPath -> ~/.riverraid/configs/riverraid.yaml -> ./configs/riverraid.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadRiverRaid(customPath string) (RiverRaidConfig, error) {
	cfg := embeddedDefault()

	// A custom path is explicit: failures are reported, never skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("riverraid.yaml"), filepath.Join("configs", "riverraid.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// Encode renders a configuration as YAML.
func Encode(cfg RiverRaidConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hard-coded constants.
func embeddedDefault() RiverRaidConfig {
	var cfg RiverRaidConfig
	if err := yaml.Unmarshal(defaultRiverRaidYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultRiverRaidConfig()
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".riverraid", "configs", filename)
}
