package config

import (
	"os"
	"path/filepath"

	"github.com/39C-wallenstein/torn-api/internal"
	"gopkg.in/yaml.v3"
)

const (
	tornName          = "torn"
	tornURL           = "https://api.torn.com"
	tornTimeout       = 30
	tornMaxRetries    = 3
	tornRetryDelay    = 1
	tornRateLimit     = 100
	tornCacheTTL      = 30
	tornCommandPrompt = "torn [Q%counter]>"
)

//go:generate mockgen -destination=configmocks_test.go -package=config_test github.com/39C-wallenstein/torn-api/config ConfigStore
type ConfigStore interface {
	Read() (Config, error)
	ReadDefaults() Config
	Write(Config) error
}

// Ensure FileIO implements ConfigStore interface
var _ ConfigStore = &FileIO{}

type FileIO struct {
	configFilePath string
}

func New() *FileIO {
	configPath, _ := getPath()
	return &FileIO{configFilePath: configPath}
}

func (f *FileIO) WithConfigPath(configFilePath string) *FileIO {
	f.configFilePath = configFilePath
	return f
}

func (f *FileIO) Read() (Config, error) {
	buf, err := os.ReadFile(f.configFilePath)
	if err != nil {
		return Config{}, err
	}

	var result Config
	if err := yaml.Unmarshal(buf, &result); err != nil {
		return Config{}, err
	}

	return result, nil
}

func (f *FileIO) ReadDefaults() Config {
	return Config{
		Name:          tornName,
		URL:           tornURL,
		Timeout:       tornTimeout,
		MaxRetries:    tornMaxRetries,
		RetryDelay:    tornRetryDelay,
		RateLimit:     tornRateLimit,
		CacheTTL:      tornCacheTTL,
		CommandPrompt: tornCommandPrompt,
		UserAgent:     internal.UserAgent,
	}
}

// Write persists the configuration. A sibling lock file guards against
// concurrent invocations clobbering each other.
func (f *FileIO) Write(config Config) error {
	if err := os.MkdirAll(filepath.Dir(f.configFilePath), 0o755); err != nil {
		return err
	}

	lock, err := lockFile(f.configFilePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.release()
	}()

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(f.configFilePath, data, 0644)
}

func getPath() (string, error) {
	configHome, err := internal.GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(configHome, "config.yaml"), nil
}
