package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for a pipeline run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Build  BuildConfig  `yaml:"build"`
	Layout LayoutConfig `yaml:"layout"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig describes where interaction data comes from.
type InputConfig struct {
	Path string `yaml:"path"`
}

// BuildConfig controls dataframe and network construction.
type BuildConfig struct {
	MergePolicy      string `yaml:"merge_policy"`
	StrictReferences *bool  `yaml:"strict_references"`
}

// LayoutConfig controls visualization layout.
type LayoutConfig struct {
	Algorithm  string `yaml:"algorithm"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Iterations int    `yaml:"iterations"`
	Seed       int64  `yaml:"seed"`
}

// StoreConfig controls the relational export target.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls structured log output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default creates a config with sensible defaults. The input path has no
// default and must be provided.
func Default() *Config {
	strict := true
	return &Config{
		Build: BuildConfig{
			MergePolicy:      "max_score",
			StrictReferences: &strict,
		},
		Layout: LayoutConfig{
			Algorithm:  "force",
			Width:      800,
			Height:     600,
			Iterations: 100,
			Seed:       1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	c.Build.MergePolicy = DefaultOr(c.Build.MergePolicy, d.Build.MergePolicy)
	if c.Build.StrictReferences == nil {
		c.Build.StrictReferences = d.Build.StrictReferences
	}
	c.Layout.Algorithm = DefaultOr(c.Layout.Algorithm, d.Layout.Algorithm)
	c.Layout.Width = DefaultOrInt(c.Layout.Width, d.Layout.Width)
	c.Layout.Height = DefaultOrInt(c.Layout.Height, d.Layout.Height)
	c.Layout.Iterations = DefaultOrInt(c.Layout.Iterations, d.Layout.Iterations)
	if c.Layout.Seed == 0 {
		c.Layout.Seed = d.Layout.Seed
	}
	c.Log.Level = DefaultOr(c.Log.Level, d.Log.Level)
}

// StrictReferences reports whether unresolved accession references should
// fail the build.
func (c *Config) StrictReferences() bool {
	return c.Build.StrictReferences == nil || *c.Build.StrictReferences
}

// Validate checks the config for invalid values. The input path is only
// required when set by file; callers may supply it per run.
func (c *Config) Validate() error {
	return NewValidator("config").
		OneOf("build.merge_policy", c.Build.MergePolicy, []string{"max_score", "keep_parallel"}).
		OneOf("layout.algorithm", c.Layout.Algorithm, []string{"force", "circular"}).
		Positive("layout.width", c.Layout.Width).
		Positive("layout.height", c.Layout.Height).
		Positive("layout.iterations", c.Layout.Iterations).
		OneOf("log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}).
		Validate()
}
