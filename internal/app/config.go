// Package app provides application-level configuration and initialization.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lazyvibe/tabdeck/internal/presentation"
	"github.com/lazyvibe/tabdeck/pkg/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// MaxPartitionDigit caps the digit drawn on session badges.
	MaxPartitionDigit int `mapstructure:"max_partition_digit" yaml:"max_partition_digit"`
	// PaintTabs lets page theme colors tint the active tab.
	PaintTabs bool `mapstructure:"paint_tabs" yaml:"paint_tabs"`
	// CloseFootprint is the cell width reserved for the close button on hover.
	CloseFootprint int `mapstructure:"close_footprint" yaml:"close_footprint"`
	// BoldTitles selects the heavier title weight. Defaults to on for Windows.
	BoldTitles bool `mapstructure:"bold_titles" yaml:"bold_titles"`
	// SessionFile is the YAML file of tabs and torrent state to display.
	SessionFile string `mapstructure:"session_file" yaml:"session_file"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	p := presentation.DefaultPolicy()
	return &Config{
		MaxPartitionDigit: p.MaxPartitionDigit,
		PaintTabs:         p.PaintTabs,
		CloseFootprint:    p.CloseFootprint,
		BoldTitles:        p.BoldTitles,
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.yaml")
}

// LoadConfig loads the configuration from disk. TABDECK_* environment
// variables override file values.
func LoadConfig(configDir string) (*Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetConfigFile(ConfigPath(configDir))
	v.SetConfigType("yaml")
	v.SetEnvPrefix("tabdeck")
	v.AutomaticEnv()
	v.SetDefault("max_partition_digit", def.MaxPartitionDigit)
	v.SetDefault("paint_tabs", def.PaintTabs)
	v.SetDefault("close_footprint", def.CloseFootprint)
	v.SetDefault("bold_titles", def.BoldTitles)
	v.SetDefault("session_file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	config.SessionFile = utils.ExpandHome(config.SessionFile)
	if config.SessionFile != "" && !filepath.IsAbs(config.SessionFile) {
		config.SessionFile = filepath.Join(configDir, config.SessionFile)
	}
	return config, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(configDir string, config *Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(configDir), data, 0644)
}

// Policy builds the presentation policy from the configuration.
func (c *Config) Policy() presentation.Policy {
	p := presentation.DefaultPolicy()
	if c.MaxPartitionDigit > 0 {
		p.MaxPartitionDigit = c.MaxPartitionDigit
	}
	if c.CloseFootprint >= 0 {
		p.CloseFootprint = c.CloseFootprint
	}
	p.PaintTabs = c.PaintTabs
	p.BoldTitles = c.BoldTitles
	return p
}
