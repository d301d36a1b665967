package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "MATHGRAPH_CONFIG"
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "mathgraph.yaml"
	// ConfigDirName is the config directory name under XDG.
	ConfigDirName = "mathgraph"
)

// FindConfigPath searches for a config file in priority order:
// 1. $MATHGRAPH_CONFIG (explicit path)
// 2. ./mathgraph.yaml (working directory)
// 3. $XDG_CONFIG_HOME/mathgraph/config.yaml
// 4. ~/.config/mathgraph/config.yaml
//
// Returns empty string if no config file found.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// EnsureConfigDir creates the directory holding configPath if it doesn't exist.
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
