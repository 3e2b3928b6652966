package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Manager struct {
	configStore ConfigStore
	Config      Config
}

func NewManager(cs ConfigStore) *Manager {
	configuration := cs.ReadDefaults()

	if userConfig, err := cs.Read(); err == nil {
		configuration = mergeFileConfig(configuration, userConfig)
	}

	return &Manager{configStore: cs, Config: configuration}
}

func (m *Manager) WithEnvironment() *Manager {
	m.Config = mergeEnvConfig(m.Config)
	return m
}

// ResolveAPIKey returns the API key, reading it from the configured key
// file when the key itself is unset. The resolved key is written back
// into the active configuration.
func (m *Manager) ResolveAPIKey() (string, error) {
	if m.Config.APIKey != "" {
		return m.Config.APIKey, nil
	}

	if m.Config.APIKeyFile != "" {
		key, err := ReadAPIKeyFile(m.Config.APIKeyFile)
		if err != nil {
			return "", err
		}
		m.Config.APIKey = key
		return key, nil
	}

	return "", nil
}

// ShowConfig serializes the active configuration to a YAML string.
func (m *Manager) ShowConfig() (string, error) {
	data, err := yaml.Marshal(m.Config)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// SaveConfig writes the active configuration to the config file.
func (m *Manager) SaveConfig() error {
	return m.configStore.Write(m.Config)
}

// mergeFileConfig lays the config file over the defaults. Zero values in
// the file keep the default, so a sparse file only overrides what it
// names.
func mergeFileConfig(base, file Config) Config {
	dst := reflect.ValueOf(&base).Elem()
	src := reflect.ValueOf(file)

	for i := 0; i < dst.NumField(); i++ {
		if field := src.Field(i); !field.IsZero() {
			dst.Field(i).Set(field)
		}
	}

	return base
}

// mergeEnvConfig lays NAME_ prefixed environment variables over cfg. The
// variable for a field is its upper cased yaml tag, TORN_API_KEY for
// api_key under the default name.
func mergeEnvConfig(cfg Config) Config {
	t := reflect.TypeOf(cfg)
	v := reflect.ValueOf(&cfg).Elem()

	prefix := strings.ToUpper(cfg.Name) + "_"
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "name" {
			continue
		}

		raw := os.Getenv(prefix + strings.ToUpper(tag))
		if raw == "" {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			if n, err := strconv.Atoi(raw); err == nil {
				field.SetInt(int64(n))
			}
		case reflect.Bool:
			if b, err := strconv.ParseBool(raw); err == nil {
				field.SetBool(b)
			}
		}
	}

	return cfg
}
