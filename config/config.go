package config

import "strings"

// Config is the fully resolved client configuration. Values merge in
// three layers: built in defaults, then the config file, then NAME_
// prefixed environment variables.
type Config struct {
	Name          string `yaml:"name"`
	APIKey        string `yaml:"api_key"`
	APIKeyFile    string `yaml:"api_key_file"`
	URL           string `yaml:"url"`
	Comment       string `yaml:"comment"`
	Timeout       int    `yaml:"timeout"`
	MaxRetries    int    `yaml:"max_retries"`
	RetryDelay    int    `yaml:"retry_delay"`
	RateLimit     int    `yaml:"rate_limit"`
	CacheTTL      int    `yaml:"cache_ttl"`
	OmitHistory   bool   `yaml:"omit_history"`
	CommandPrompt string `yaml:"command_prompt"`
	UserAgent     string `yaml:"user_agent"`
	HTTPProxy     string `yaml:"http_proxy"`
	HTTPSProxy    string `yaml:"https_proxy"`
	SOCKS5Proxy   string `yaml:"socks5_proxy"`
	NoProxy       string `yaml:"no_proxy"`
	SkipTLSVerify bool   `yaml:"skip_tls_verify"`
	Debug         bool   `yaml:"debug"`
}

func (c Config) APIKeyEnvVarName() string {
	return strings.ToUpper(c.Name) + "_API_KEY"
}
