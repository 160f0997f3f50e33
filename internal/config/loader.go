package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"kubedeploy/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/kubedeploy"
	configFileName = "config.yaml"
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from a single specified directory.
// The directory should contain config.yaml; a missing file yields the
// built-in defaults. User targets merge over the built-in catalog by name.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		// config malformed
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	config = merge(config, overlay)
	if err := Validate(config); err != nil {
		return Config{}, fmt.Errorf("invalid config at %s: %w", configFilePath, err)
	}
	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}

// merge overlays user-supplied values on the defaults. Scalars replace when
// set; targets merge by name, each user target replacing the built-in one
// wholesale.
func merge(base, overlay Config) Config {
	if overlay.BaseDir != "" {
		base.BaseDir = overlay.BaseDir
	}
	if overlay.Principal != "" {
		base.Principal = overlay.Principal
	}
	if overlay.PollIntervalSeconds > 0 {
		base.PollIntervalSeconds = overlay.PollIntervalSeconds
	}
	if overlay.PollTimeoutSeconds > 0 {
		base.PollTimeoutSeconds = overlay.PollTimeoutSeconds
	}
	for name, target := range overlay.Targets {
		base.Targets[name] = target
	}
	return base
}
