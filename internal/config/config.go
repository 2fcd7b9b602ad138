package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mgpai22/srtmerge/internal/subtitle"
)

// file looked up when --config is not given
const DefaultPath = "srtmerge.yaml"

type Config struct {
	// literal tags stripped from every line
	Tags []string `yaml:"tags"`

	// parser and merger
	FlushTrailing bool `yaml:"flush_trailing"`
	UntilStable   bool `yaml:"until_stable"`

	// output
	OutputSuffix  string `yaml:"output_suffix"`
	SimplifiedDir string `yaml:"simplified_dir"`

	// batch
	Concurrency     int  `yaml:"concurrency"`
	ContinueOnError bool `yaml:"continue_on_error"`
}

func Default() *Config {
	return &Config{
		Tags:            subtitle.DefaultTags(),
		FlushTrailing:   false,
		UntilStable:     false,
		OutputSuffix:    ".merged",
		SimplifiedDir:   "",
		Concurrency:     4,
		ContinueOnError: true,
	}
}

// Load reads path over the defaults. An empty path falls back to
// DefaultPath; a missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if c.OutputSuffix == "" {
		return fmt.Errorf("output_suffix must not be empty")
	}
	for i, tag := range c.Tags {
		if tag == "" {
			return fmt.Errorf("tags[%d] is empty", i)
		}
	}
	return nil
}

// Save writes the config as YAML, refusing to overwrite an existing file.
func (c *Config) Save(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
