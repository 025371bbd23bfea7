package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/accrete/internal/accrete"
)

const (
	DefaultMass       = 1.0
	DefaultLuminosity = 1.0
	DefaultSeed       = 1660075613494
	DefaultSource     = "java"
	DefaultRuns       = 1
	DefaultFormat     = "text"
	DefaultLogLevel   = "info"
)

type Config struct {
	Star     StarConfig   `yaml:"star"`
	Seed     int64        `yaml:"seed"`
	Source   string       `yaml:"source"`
	Runs     int          `yaml:"runs"`
	LogLevel string       `yaml:"log_level"`
	Checks   bool         `yaml:"checks"`
	Output   OutputConfig `yaml:"output"`
}

type StarConfig struct {
	Mass       float64 `yaml:"mass"`
	Luminosity float64 `yaml:"luminosity"`
}

type OutputConfig struct {
	Format     string `yaml:"format"`
	SVG        string `yaml:"svg"`
	PostScript string `yaml:"postscript"`
	Save       bool   `yaml:"save"`
}

func DefaultConfig() *Config {
	return &Config{
		Star: StarConfig{
			Mass:       DefaultMass,
			Luminosity: DefaultLuminosity,
		},
		Seed:     DefaultSeed,
		Source:   DefaultSource,
		Runs:     DefaultRuns,
		LogLevel: DefaultLogLevel,
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the YAML file at path onto cfg. Fields the file leaves
// out keep their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var formats = map[string]bool{"text": true, "table": true, "json": true, "csv": true}

func (c *Config) Validate() error {
	if err := c.GetStar().Validate(); err != nil {
		return err
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if !formats[c.Output.Format] {
		return fmt.Errorf("unknown output format: %s", c.Output.Format)
	}
	return nil
}

func (c *Config) GetStar() accrete.Star {
	return accrete.Star{Mass: c.Star.Mass, Luminosity: c.Star.Luminosity}
}
