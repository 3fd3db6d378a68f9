package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// GlobalConfig holds per-machine signing settings shared by every project
type GlobalConfig struct {
	Developer       string `yaml:"developer"`
	TeamID          string `yaml:"team_id"`
	SigningIdentity string `yaml:"signing_identity"`
}

// GetConfigDir returns the directory where helperprep stores its global config
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Use ~/.config/helperprep on Unix, %APPDATA%/helperprep on Windows
	var configDir string
	if runtime.GOOS == "windows" {
		configDir = filepath.Join(os.Getenv("APPDATA"), "helperprep")
	} else {
		configDir = filepath.Join(homeDir, ".config", "helperprep")
	}

	return configDir, nil
}

// GetConfigPath returns the path to the global helperprep config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadGlobal loads the global helperprep configuration.
// A missing file yields an empty config.
func LoadGlobal() (*GlobalConfig, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config GlobalConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return &config, nil
}

func (g *GlobalConfig) apply(p *Project) {
	if g.Developer != "" {
		p.Developer = g.Developer
	}
	if g.TeamID != "" {
		p.TeamID = g.TeamID
	}
	if g.SigningIdentity != "" {
		p.SigningIdentity = g.SigningIdentity
	}
}
