package internal

import (
	"os"
	"path/filepath"
)

const (
	ConfigHomeEnv    = "TORN_CONFIG_HOME"
	CacheHomeEnv     = "TORN_CACHE_HOME"
	DefaultConfigDir = ".torn-api"
	DefaultCacheDir  = "cache"
	HistoryFileName  = "history.json"
)

// GetConfigHome returns the directory holding the config file and the
// history journal, ~/.torn-api unless TORN_CONFIG_HOME overrides it.
func GetConfigHome() (string, error) {
	if custom := os.Getenv(ConfigHomeEnv); custom != "" {
		return custom, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// GetCacheHome returns the directory holding cached responses,
// ~/.torn-api/cache unless TORN_CACHE_HOME overrides it.
func GetCacheHome() (string, error) {
	if custom := os.Getenv(CacheHomeEnv); custom != "" {
		return custom, nil
	}

	configHome, err := GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(configHome, DefaultCacheDir), nil
}

// GetHistoryPath returns the location of the history journal.
func GetHistoryPath() (string, error) {
	configHome, err := GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(configHome, HistoryFileName), nil
}
