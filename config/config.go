package config

import (
	"os"
	"strconv"

	"github.com/jsphweid/chordcompanion/constants"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Channel         uint8   `yaml:"channel"`
	Velocity        uint8   `yaml:"velocity"`
	TicksPerQuarter uint16  `yaml:"ticks_per_quarter"`
	BPM             float64 `yaml:"bpm"`
	LogLevel        string  `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Channel:         0,
		Velocity:        100,
		TicksPerQuarter: 960,
		BPM:             120,
		LogLevel:        "info",
	}
}

// Load applies, in order, the defaults, the YAML file at path (skipped when
// path is empty) and the CHORDC_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		dat, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "could not read config file")
		}
		if err := yaml.Unmarshal(dat, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "could not parse config file %s", path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(constants.EnvChannel); v != "" {
		channel, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return errors.Wrapf(err, "%s", constants.EnvChannel)
		}
		cfg.Channel = uint8(channel)
	}
	if v := os.Getenv(constants.EnvVelocity); v != "" {
		velocity, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return errors.Wrapf(err, "%s", constants.EnvVelocity)
		}
		cfg.Velocity = uint8(velocity)
	}
	if v := os.Getenv(constants.EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Channel > 15 {
		return errors.Errorf("channel must be 0-15, got %d", c.Channel)
	}
	if c.Velocity == 0 || c.Velocity > 127 {
		return errors.Errorf("velocity must be 1-127, got %d", c.Velocity)
	}
	if c.TicksPerQuarter == 0 {
		return errors.New("ticks_per_quarter must be positive")
	}
	if c.BPM <= 0 {
		return errors.Errorf("bpm must be positive, got %v", c.BPM)
	}
	return nil
}
