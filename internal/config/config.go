package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/advisor-tools/advisor/internal/registry"
)

const (
	fileName  = ".advisor"
	envPrefix = "ADVISOR"
)

var (
	// ErrNotFound means no settings file could be located or read.
	ErrNotFound = errors.New("could not open config")
	// ErrInvalid means a settings file was found but its contents are not a
	// valid instance declaration.
	ErrInvalid = errors.New("invalid config")
)

// app is one instance entry as it appears in the settings file.
type app struct {
	Name     string `mapstructure:"name"`
	Location string `mapstructure:"location"`
	Token    string `mapstructure:"token"`
}

// settings is the full shape of the .advisor file.
type settings struct {
	Apps    []app  `mapstructure:"apps"`
	Default string `mapstructure:"default"`
}

// newViper builds a viper instance that searches for .advisor.{yaml,yml,json}
// in the current directory and then the home directory, with ADVISOR_*
// environment overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(fileName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads, validates, and unmarshals the settings file, returning the
// instance registry for this process. Missing or unreadable files are
// ErrNotFound; schema violations and duplicate instance names are ErrInvalid.
func Load() (*registry.Registry, error) {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return buildRegistry(v)
}

// LoadFile is Load for an explicit settings file path.
func LoadFile(path string) (*registry.Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return buildRegistry(v)
}

func buildRegistry(v *viper.Viper) (*registry.Registry, error) {
	raw, err := os.ReadFile(v.ConfigFileUsed())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	result, err := Validate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalid, v.ConfigFileUsed(), renderIssues(result.Issues))
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	instances := make([]registry.Instance, 0, len(s.Apps))
	for _, a := range s.Apps {
		instances = append(instances, registry.Instance{
			Name:     a.Name,
			Location: strings.TrimRight(a.Location, "/"),
			Token:    a.Token,
		})
	}

	reg, err := registry.New(instances, s.Default)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return reg, nil
}

func renderIssues(issues []ValidationIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return strings.Join(parts, "; ")
}

// Locate returns the path of the settings file the loader would use, or
// ErrNotFound when none exists.
func Locate() (string, error) {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return v.ConfigFileUsed(), nil
}

// Get reads a single key from the settings file, e.g. "default" or
// "apps". Returns an empty string for unset keys.
func Get(key string) (string, error) {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return v.GetString(key), nil
}

// Set writes a single key to the settings file, creating
// ~/.advisor.yaml when no file exists yet.
func Set(key, value string) error {
	v := newViper()
	target := ""
	if err := v.ReadInConfig(); err == nil {
		target = v.ConfigFileUsed()
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		target = filepath.Join(home, fileName+".yaml")
	}

	v.Set(key, value)
	if err := v.WriteConfigAs(target); err != nil {
		return fmt.Errorf("writing config file %s: %w", target, err)
	}
	return nil
}
