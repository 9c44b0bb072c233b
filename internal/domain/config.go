package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Store    StoreConfig   `toml:"store"`
	Log      LogConfig     `toml:"log"`
	Display  DisplayConfig `toml:"display"`
}

// StoreConfig holds settings for the task file from [store] section.
type StoreConfig struct {
	Path   string `toml:"path,omitempty"`   // Task file path (default: tasks.txt)
	Format string `toml:"format,omitempty"` // Force a format instead of using the extension
}

// LogConfig holds settings for diagnostic logging from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	Dir   string `toml:"dir,omitempty"`   // Log directory (empty: next to the config)
}

// DisplayConfig holds output settings from [display] section.
type DisplayConfig struct {
	DateLayout string `toml:"date_layout,omitempty"` // Go time layout for due dates
}

// Configuration defaults.
const (
	DefaultStorePath = "tasks.txt"
	DefaultLogLevel  = "info"
)

// Configuration file names.
const (
	AppDirName          = "tasklist"
	ConfigFileName      = "config.toml"    // Global config file name
	LocalConfigFileName = ".tasklist.toml" // Config file name in the working directory
)

// GlobalAppDir returns the global tasklist directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the config path inside dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: DefaultStorePath,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Display: DisplayConfig{
			DateLayout: DefaultDateLayout,
		},
	}
}

// RenderConfigTemplate renders a commented config file populated from cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
