package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata" // humanize.timezone must resolve without system zoneinfo

	"gopkg.in/yaml.v2"
	"olexsmir.xyz/ltwords/internal/humanize"
)

var ErrConfigNotFound = errors.New("no config file found")

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type HumanizeConfig struct {
	Variant    string `yaml:"variant"`
	Detailed   bool   `yaml:"detailed"`
	Timezone   string `yaml:"timezone"`
	Capitalize bool   `yaml:"capitalize"`
}

type CalendarConfig struct {
	Time    *bool `yaml:"time"`
	Seconds bool  `yaml:"seconds"`
	Weekday bool  `yaml:"weekday"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Humanize HumanizeConfig `yaml:"humanize"`
	Calendar CalendarConfig `yaml:"calendar"`

	loc *time.Location
}

// Load loads configuration with the following priority:
// 1. User provided fpath (if provided, it must exist)
// 2. /var/lib/ltwords/config.yaml
// 3. $XDG_CONFIG_HOME/ltwords/config.yaml or $HOME/.config/ltwords/config.yaml
// 4. /etc/ltwords/config.yaml
//
// If fpath is empty and no file is found, the defaults are used.
func Load(fpath string) (*Config, error) {
	var config Config

	configPath, err := findConfigFile(fpath)
	switch {
	case errors.Is(err, ErrConfigNotFound) && fpath == "":
		// nothing to read, defaults only
	case err != nil:
		return nil, err
	default:
		configBytes, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		if cerr := yaml.Unmarshal(configBytes, &config); cerr != nil {
			return nil, fmt.Errorf("parsing config: %w", cerr)
		}
	}

	config.ensureDefaults()

	if verr := config.validate(); verr != nil {
		return nil, verr
	}

	// validate already checked it
	config.loc, _ = time.LoadLocation(config.Humanize.Timezone)

	return &config, nil
}

// Location returns the time zone times are read and shown in.
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

func (c *Config) Variant() humanize.Variant {
	v, _ := humanize.ParseVariant(c.Humanize.Variant)
	return v
}

func (c *Config) CalendarOptions() humanize.CalendarOptions {
	return humanize.CalendarOptions{
		Time:    c.Calendar.Time == nil || *c.Calendar.Time,
		Seconds: c.Calendar.Seconds,
		Weekday: c.Calendar.Weekday,
	}
}

func (c *Config) ensureDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	if c.Humanize.Variant == "" {
		c.Humanize.Variant = "noun"
	}

	if c.Humanize.Timezone == "" {
		c.Humanize.Timezone = "Local"
	}

	if c.Calendar.Time == nil {
		t := true
		c.Calendar.Time = &t
	}
}

func findConfigFile(userPath string) (string, error) {
	if userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, userPath)
	}

	path := "/var/lib/ltwords/config.yaml"
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(configDir, "ltwords", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	path = "/etc/ltwords/config.yaml"
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return "", ErrConfigNotFound
}
