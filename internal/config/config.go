package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AmperLab/solscan-go/pkg/solscan"
)

// Duration accepts "30s"-style values in yaml.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type SolscanConfig struct {
	APIKey         string   `yaml:"api_key"`
	BaseURL        string   `yaml:"base_url"`
	RequestTimeout Duration `yaml:"request_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Solscan SolscanConfig `yaml:"solscan"`
	Log     LogConfig     `yaml:"log"`
}

// Load reads a yaml config file and applies defaults. The SOLSCAN_API_KEY
// environment variable overrides the file's api_key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

// Default returns a config built from defaults and the environment alone,
// for running without a config file.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

func applyDefaults(config *Config) {
	if key := os.Getenv("SOLSCAN_API_KEY"); key != "" {
		config.Solscan.APIKey = key
	}
	if config.Solscan.BaseURL == "" {
		config.Solscan.BaseURL = solscan.DefaultBaseURL
	}
	if config.Solscan.RequestTimeout == 0 {
		config.Solscan.RequestTimeout = Duration(30 * time.Second)
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
}
