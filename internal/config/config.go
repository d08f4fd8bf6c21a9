// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the console configuration from defaults, the
// blockbatch.yaml file, BLOCKBATCH_* environment variables and CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "blockbatch"
	envPrefix = "blockbatch"
)

// Config is the resolved console configuration.
type Config struct {
	Language   string    `mapstructure:"language" yaml:"language"`
	DefaultTab string    `mapstructure:"default_tab" yaml:"default_tab"`
	Log        LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig controls where and how verbosely the console logs.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the built-in defaults keyed by their viper path.
func Defaults() map[string]any {
	return map[string]any{
		"language":    "en",
		"default_tab": "notifications",
		"log.level":   "info",
		"log.file":    "",
	}
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		Language:   "en",
		DefaultTab: "notifications",
		Log:        LogConfig{Level: "info"},
	}
}

// FlagKeys maps CLI flag names to the config keys they override when the
// names differ.
var FlagKeys = map[string]string{
	"tab":      "default_tab",
	"log-file": "log.file",
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "BlockBatch")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig resolves T from defaults, config file, environment and the
// flags of cmd, in increasing order of precedence. explicitPath, when not
// nil, replaces the config file search. The returned string is the config
// file that was read, empty when none was found.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, string, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Config file
	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("could not read config: %w", err)
		}
	}

	// 3. Environment
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Flags
	if cmd != nil {
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return c, "", err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("could not decode config: %w", err)
	}

	return c, v.ConfigFileUsed(), nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		key := f.Name
		if mapped, ok := FlagKeys[f.Name]; ok {
			key = mapped
		}
		bindErr = v.BindPFlag(key, f)
	})
	return bindErr
}

// WriteConfigFile writes c as YAML to the user (or system) config path,
// creating the directory when needed.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
