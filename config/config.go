package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/maastricht-university/chaprep/corpus"
)

var ErrNotFound = errors.New("config: file not found")

type Pipeline struct {
	Name      string `mapstructure:"name" yaml:"name"`
	Version   string `mapstructure:"version" yaml:"version"`
	LogLvl    string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`
}

type Extract struct {
	Speakers []string `mapstructure:"speakers" yaml:"speakers"`
}

type Paths struct {
	Outputs string `mapstructure:"outputs" yaml:"outputs"`
}

type Root struct {
	Pipeline Pipeline            `mapstructure:"pipeline" yaml:"pipeline"`
	Corpus   corpus.Layout       `mapstructure:"corpus" yaml:"corpus"`
	Split    corpus.SplitOptions `mapstructure:"split" yaml:"split"`
	Extract  Extract             `mapstructure:"extract" yaml:"extract"`
	Paths    Paths               `mapstructure:"paths" yaml:"paths"`

	// Source is the file the configuration was read from, empty when only
	// defaults and environment were used.
	Source string `mapstructure:"-" yaml:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "chaprep")
	v.SetDefault("pipeline.version", "0.1.0")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("pipeline.log_format", "text")
	v.SetDefault("pipeline.workers", 4)

	v.SetDefault("corpus.name", "gillam")
	v.SetDefault("corpus.root", ".")
	v.SetDefault("corpus.groups", []string{"SLI", "TD"})
	v.SetDefault("corpus.subgroups", []string{
		"5m", "5f", "6m", "6f", "7m", "7f", "8m", "8f", "9m", "9f", "10m", "10f", "11m", "11f",
	})
	v.SetDefault("corpus.pattern", "*.cha")

	v.SetDefault("split.train", 0.8)
	v.SetDefault("split.val", 0.1)
	v.SetDefault("split.test", 0.1)
	v.SetDefault("split.seed", 42)
	v.SetDefault("split.merge", []map[string]any{{"from": "SLI-11", "to": "SLI-10"}})

	v.SetDefault("extract.speakers", []string{"CHI", "EXA"})
	v.SetDefault("paths.outputs", "outputs")
}

// Load reads the configuration. An explicit path must exist; otherwise the
// first of config/$CONFIG_ENV/config.yaml and config.yaml is used, and
// defaults alone when neither exists. CHAPREP_* environment variables
// override file values (CHAPREP_PIPELINE_LOG_LEVEL=debug).
func Load(path string) (*Root, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("CHAPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
	} else {
		path = find()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func find() string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	guess := []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	}
	for _, p := range guess {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Root) Validate() error {
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("config: pipeline.workers must be at least 1, got %d", c.Pipeline.Workers)
	}
	if err := c.Corpus.Validate(); err != nil {
		return err
	}
	return c.Split.Validate()
}

// YAML renders the effective configuration.
func (c *Root) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
