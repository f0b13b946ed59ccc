package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const beeFile = "bee.yaml"

// LoadBee loads the bee game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-bee/bee.yaml (and XDG_CONFIG_DIRS)
// -> ./configs/bee.yaml -> embedded default -> DefaultBeeConfig.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadBee(customPath string) (BeeConfig, error) {
	if customPath != "" {
		cfg, err := readBee(customPath)
		if err != nil {
			return DefaultBeeConfig(), err
		}
		return cfg, nil
	}

	// User and system config directories.
	if p, err := xdg.SearchConfigFile(filepath.Join(AppName, beeFile)); err == nil {
		if cfg, err := readBee(p); err == nil {
			return cfg, nil
		}
	}

	// Local configs directory.
	if cfg, err := readBee(filepath.Join("configs", beeFile)); err == nil {
		return cfg, nil
	}

	cfg := DefaultBeeConfig()
	if err := yaml.Unmarshal(defaultBeeYAML, &cfg); err != nil {
		return DefaultBeeConfig(), nil
	}
	return cfg, nil
}

func readBee(path string) (BeeConfig, error) {
	cfg := DefaultBeeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns where a user config file would live, without
// creating anything.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, beeFile)
}
