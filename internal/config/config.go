// Package config loads the settings of an annealing run from a YAML file,
// the environment and an optional .env file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/anneal/internal/anneal"
	"github.com/cwbudde/anneal/internal/problems"
)

// Point is a city position in the run file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config holds the settings of a run.
type Config struct {
	// Schedule
	Temperature     float64 `yaml:"temperature"`
	CoolingRate     float64 `yaml:"cooling_rate"`
	InnerSteps      int     `yaml:"inner_steps"`
	CoolProbability float64 `yaml:"cool_probability"`
	MinTemperature  float64 `yaml:"min_temperature"`
	TrackBest       bool    `yaml:"track_best"`

	// Seed for the randomness source, 0 derives one from the clock
	Seed int64 `yaml:"seed"`

	// Cities of the travelling-salesman demonstration
	Cities []Point `yaml:"cities"`
}

// Default returns the demonstration settings.
func Default() *Config {
	s := anneal.DefaultConfig()
	cfg := &Config{
		Temperature:     s.InitialTemperature,
		CoolingRate:     s.CoolingRate,
		InnerSteps:      s.InnerSteps,
		CoolProbability: s.CoolProbability,
		MinTemperature:  s.MinTemperature,
		TrackBest:       s.TrackBest,
	}
	for _, c := range problems.DemoCities() {
		cfg.Cities = append(cfg.Cities, Point{X: c.X, Y: c.Y})
	}
	return cfg
}

// Override adjusts a loaded configuration before it is validated.
type Override func(*Config)

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when empty), then ANNEAL_* environment variables, then the
// overrides in order. A .env file in the working directory is loaded first
// if present. The result is validated once, after every layer is applied.
func Load(path string, overrides ...Override) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	for _, o := range overrides {
		o(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Temperature = getFloatEnv("ANNEAL_TEMPERATURE", c.Temperature)
	c.CoolingRate = getFloatEnv("ANNEAL_COOLING_RATE", c.CoolingRate)
	c.InnerSteps = getIntEnv("ANNEAL_INNER_STEPS", c.InnerSteps)
	c.CoolProbability = getFloatEnv("ANNEAL_COOL_PROBABILITY", c.CoolProbability)
	c.MinTemperature = getFloatEnv("ANNEAL_MIN_TEMPERATURE", c.MinTemperature)
	c.TrackBest = getBoolEnv("ANNEAL_TRACK_BEST", c.TrackBest)
	c.Seed = getInt64Env("ANNEAL_SEED", c.Seed)
}

// Schedule converts the settings to an engine configuration.
func (c *Config) Schedule() anneal.Config {
	return anneal.Config{
		InitialTemperature: c.Temperature,
		CoolingRate:        c.CoolingRate,
		InnerSteps:         c.InnerSteps,
		CoolProbability:    c.CoolProbability,
		MinTemperature:     c.MinTemperature,
		TrackBest:          c.TrackBest,
	}
}

// CitySet converts the configured points to problem cities.
func (c *Config) CitySet() []problems.City {
	cities := make([]problems.City, len(c.Cities))
	for i, p := range c.Cities {
		cities[i] = problems.City{X: p.X, Y: p.Y}
	}
	return cities
}

// Validate checks the schedule and the city set.
func (c *Config) Validate() error {
	if err := c.Schedule().Validate(); err != nil {
		return err
	}
	if len(c.Cities) == 0 {
		return fmt.Errorf("at least one city is required")
	}
	return nil
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
