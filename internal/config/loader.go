package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDir overrides the user config directory when set via CLI.
var configDir string

// SetConfigDir sets a directory searched before ~/.nounours/configs.
func SetConfigDir(dir string) {
	configDir = dir
}

// LoadHub loads the hub configuration.
// Search order: customPath -> config dir -> ~/.nounours/configs/hub.yaml -> ./configs/hub.yaml -> embedded default
func LoadHub(customPath string) (HubConfig, error) {
	return load("hub.yaml", customPath, defaultHubYAML, DefaultHubConfig)
}

// LoadTraffic loads the Traffic runner configuration.
func LoadTraffic(customPath string) (TrafficConfig, error) {
	cfg, err := load("traffic.yaml", customPath, defaultTrafficYAML, DefaultTrafficConfig)
	return cfg.Sanitize(), err
}

// LoadPousse loads the puzzle configuration.
func LoadPousse(customPath string) (PousseConfig, error) {
	return load("pousse.yaml", customPath, defaultPousseYAML, DefaultPousseConfig)
}

// LoadGateau loads the cake configuration.
func LoadGateau(customPath string) (GateauConfig, error) {
	return load("gateau.yaml", customPath, defaultGateauYAML, DefaultGateauConfig)
}

// load decodes the first config found on the search path.
// Values start from the Go defaults, so files may set only some fields.
func load[T any](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(filename) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func searchPaths(filename string) []string {
	var paths []string
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, filename))
	}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nounours", "configs", filename)
}
