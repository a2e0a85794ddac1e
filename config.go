// config.go
// ----------
// Collector configuration. The defaults reproduce the canonical collection
// run: OpenF1 and Ergast base URLs, three attempts with a one-second base
// backoff and a ten-second socket timeout, seasons 2023-2024 written as CSV
// under data/.
//
// A YAML file and F1DATA_* environment variables can override any of it;
// both are optional and the zero-config path needs neither.
package f1data

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOpenF1BaseURL = "https://api.openf1.org/v1"
	DefaultErgastBaseURL = "http://ergast.com/api/f1"
)

// SourceConfig customizes the transport behavior for the upstream APIs.
type SourceConfig struct {
	MaxRetries  int
	BaseBackoff time.Duration
	Timeout     time.Duration
}

// Config is the constructor-time configuration for a Collector and its
// collaborators. Base URLs live here rather than as package constants so
// tests can point the adapters at a local server.
type Config struct {
	OpenF1BaseURL string
	ErgastBaseURL string

	Source SourceConfig

	Seasons        []int
	SampleSessions int
	SessionPause   time.Duration

	OutputDir string
	Format    string
}

// rawConfig is the YAML shape of Config. Durations are strings in
// time.ParseDuration syntax ("1s", "500ms").
type rawConfig struct {
	OpenF1BaseURL string `yaml:"openf1_base_url"`
	ErgastBaseURL string `yaml:"ergast_base_url"`
	Source        struct {
		MaxRetries  int    `yaml:"max_retries"`
		BaseBackoff string `yaml:"base_backoff"`
		Timeout     string `yaml:"timeout"`
	} `yaml:"source"`
	Seasons        []int  `yaml:"seasons"`
	SampleSessions int    `yaml:"sample_sessions"`
	SessionPause   string `yaml:"session_pause"`
	OutputDir      string `yaml:"output_dir"`
	Format         string `yaml:"format"`
}

// DefaultConfig returns the configuration of the canonical collection run.
func DefaultConfig() *Config {
	return &Config{
		OpenF1BaseURL: DefaultOpenF1BaseURL,
		ErgastBaseURL: DefaultErgastBaseURL,
		Source: SourceConfig{
			MaxRetries:  DefaultMaxRetries,
			BaseBackoff: DefaultBaseBackoff,
			Timeout:     DefaultTimeout,
		},
		Seasons:        []int{2023, 2024},
		SampleSessions: 3,
		SessionPause:   time.Second,
		OutputDir:      "data",
		Format:         "csv",
	}
}

// LoadConfig builds a Config from the defaults, an optional YAML file, and
// the F1DATA_* environment overrides, in that order.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
		if err := cfg.mergeYAML(data); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// mergeYAML overlays the values present in data onto the config. Omitted
// fields keep their current values.
func (c *Config) mergeYAML(data []byte) error {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.OpenF1BaseURL != "" {
		c.OpenF1BaseURL = raw.OpenF1BaseURL
	}
	if raw.ErgastBaseURL != "" {
		c.ErgastBaseURL = raw.ErgastBaseURL
	}
	if raw.Source.MaxRetries > 0 {
		c.Source.MaxRetries = raw.Source.MaxRetries
	}
	if err := mergeDuration(&c.Source.BaseBackoff, raw.Source.BaseBackoff); err != nil {
		return errors.Wrap(err, "source.base_backoff")
	}
	if err := mergeDuration(&c.Source.Timeout, raw.Source.Timeout); err != nil {
		return errors.Wrap(err, "source.timeout")
	}
	if len(raw.Seasons) > 0 {
		c.Seasons = raw.Seasons
	}
	if raw.SampleSessions > 0 {
		c.SampleSessions = raw.SampleSessions
	}
	if err := mergeDuration(&c.SessionPause, raw.SessionPause); err != nil {
		return errors.Wrap(err, "session_pause")
	}
	if raw.OutputDir != "" {
		c.OutputDir = raw.OutputDir
	}
	if raw.Format != "" {
		c.Format = raw.Format
	}
	return nil
}

func mergeDuration(dst *time.Duration, s string) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v, ok := os.LookupEnv("F1DATA_OPENF1_BASE_URL"); ok && v != "" {
		c.OpenF1BaseURL = v
	}
	if v, ok := os.LookupEnv("F1DATA_ERGAST_BASE_URL"); ok && v != "" {
		c.ErgastBaseURL = v
	}
	if v, ok := os.LookupEnv("F1DATA_OUTPUT_DIR"); ok && v != "" {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv("F1DATA_FORMAT"); ok && v != "" {
		c.Format = v
	}
	if v, ok := os.LookupEnv("F1DATA_SEASONS"); ok && v != "" {
		if seasons := parseSeasons(v); len(seasons) > 0 {
			c.Seasons = seasons
		}
	}
}

// parseSeasons reads a comma-separated year list such as "2023,2024".
// Entries that do not parse are skipped.
func parseSeasons(s string) []int {
	var seasons []int
	for _, part := range strings.Split(s, ",") {
		year, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		seasons = append(seasons, year)
	}
	return seasons
}
