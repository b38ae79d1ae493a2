package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/onet.yaml"

// Load loads the Onet configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/onet.yaml -> ./configs/onet.yaml -> embedded default.
//
// Files are decoded on top of DefaultOnetConfig, so a file only needs the
// keys it changes. A custom path that cannot be read or parsed is an error;
// broken files on the implicit paths are skipped.
func Load(customPath string) (OnetConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return OnetConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return OnetConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("onet.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := decode(defaultOnetYAML); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultOnetConfig(), SourceBuiltin, nil
}

// decode unmarshals YAML over the built-in defaults.
func decode(data []byte) (OnetConfig, error) {
	cfg := DefaultOnetConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return OnetConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML, e.g. for `onet config`.
func Marshal(cfg OnetConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
