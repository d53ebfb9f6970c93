package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxSteps  = 100000
	DefaultFPS       = 10
	DefaultDelayMS   = 200
	DefaultTapeWidth = 21
	DefaultDataDir   = ".tmsim"
)

// Config drives a simulation run and its presentation. Values come from
// defaults, then an optional yaml file, then TMSIM_* environment
// variables; CLI flags override all of it.
type Config struct {
	Input     string   `yaml:"input"`
	MaxSteps  int      `yaml:"max_steps" env:"TMSIM_MAX_STEPS"`
	FPS       int      `yaml:"fps"`
	DelayMS   int      `yaml:"delay_ms"`
	TapeWidth int      `yaml:"tape_width"`
	NoColor   bool     `yaml:"no_color" env:"TMSIM_NO_COLOR"`
	DataDir   string   `yaml:"data_dir" env:"TMSIM_DATA"`
	Batch     []string `yaml:"batch"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxSteps:  DefaultMaxSteps,
		FPS:       DefaultFPS,
		DelayMS:   DefaultDelayMS,
		TapeWidth: DefaultTapeWidth,
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv returns the defaults with environment overrides applied, for
// invocations without a config file.
func FromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
