// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for gauntlet.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.gauntlet/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/gauntlet-tui/internal/engine"
	"github.com/jeranaias/gauntlet-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete gauntlet configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version"`

	// Session timer configuration
	Session SessionConfig `toml:"session"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// History (sqlite) configuration
	History HistoryConfig `toml:"history"`

	// Export configuration
	Export ExportConfig `toml:"export"`
}

// SessionConfig contains the two timer settings that drive a writing session.
type SessionConfig struct {
	// DurationSecs is the total session length in seconds.
	// Valid range is 300-10800 (5 minutes to 3 hours) in 300-second steps.
	DurationSecs int `toml:"duration_secs"`
	// TimeoutSecs is the inactivity timeout in seconds before the buffer
	// is erased. Valid range is 3-15.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// ShowDangerMeter displays the inactivity meter while writing
	ShowDangerMeter bool `toml:"show_danger_meter"`
	// ShowWordCount displays a live word count in the status bar
	ShowWordCount bool `toml:"show_word_count"`
	// FlashOnErase flashes the editor when the buffer is erased
	FlashOnErase bool `toml:"flash_on_erase"`
}

// HistoryConfig contains session history storage configuration.
type HistoryConfig struct {
	// Enabled controls whether finished sessions are recorded
	Enabled bool `toml:"enabled"`
	// DBPath is the sqlite database path (empty = ~/.gauntlet/history.db)
	DBPath string `toml:"db_path"`
}

// ExportConfig contains session export configuration.
type ExportConfig struct {
	// Dir is the directory exports are written to (empty = ~/.gauntlet/exports)
	Dir string `toml:"dir"`
	// Format is the default export format: "markdown" or "txt"
	Format string `toml:"format"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Session: SessionConfig{
			DurationSecs: engine.DefaultSessionDurationSeconds,
			TimeoutSecs:  engine.DefaultInactivityTimeoutSeconds,
		},

		UI: UIConfig{
			Theme:           "dark",
			ShowDangerMeter: true,
			ShowWordCount:   true,
			FlashOnErase:    true,
		},

		History: HistoryConfig{
			Enabled: true,
			DBPath:  "",
		},

		Export: ExportConfig{
			Dir:    "",
			Format: "markdown",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the gauntlet configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".gauntlet"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryDBPath resolves the sqlite database path, honoring an override.
func (c *Config) HistoryDBPath() (string, error) {
	if c.History.DBPath != "" {
		return c.History.DBPath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// ExportDir resolves the export directory, honoring an override.
func (c *Config) ExportDir() (string, error) {
	if c.Export.Dir != "" {
		return c.Export.Dir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "exports"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when no file exists. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		// No config file: defaults plus env overrides.
		cfg := Default()
		cfg.ApplyEnvOverrides()
		cfg.SetDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# gauntlet configuration file")
	fmt.Fprintln(&buf, "# Generated by gauntlet - edit with care")
	fmt.Fprintln(&buf, "")

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Session timers delegate to the engine bounds so the config file and
	// the in-app settings screen enforce identical limits.
	session := engine.Config{
		SessionDurationSeconds:   c.Session.DurationSecs,
		InactivityTimeoutSeconds: c.Session.TimeoutSecs,
	}
	var engErr *engine.InvalidConfigError
	if err := session.Validate(); errors.As(err, &engErr) {
		errs = append(errs, ValidationError{
			Field:   "session." + engErr.Field,
			Message: engErr.Message,
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	validFormats := map[string]bool{"markdown": true, "txt": true}
	if !validFormats[strings.ToLower(c.Export.Format)] {
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: markdown, txt", c.Export.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Session.DurationSecs == 0 {
		c.Session.DurationSecs = defaults.Session.DurationSecs
	}
	if c.Session.TimeoutSecs == 0 {
		c.Session.TimeoutSecs = defaults.Session.TimeoutSecs
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Export.Format == "" {
		c.Export.Format = defaults.Export.Format
	}
}

// Engine returns the session timers as an engine configuration.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		SessionDurationSeconds:   c.Session.DurationSecs,
		InactivityTimeoutSeconds: c.Session.TimeoutSecs,
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - GAUNTLET_DURATION_SECS: overrides session.duration_secs
//   - GAUNTLET_TIMEOUT_SECS: overrides session.timeout_secs
//   - GAUNTLET_THEME: overrides ui.theme
//   - GAUNTLET_HISTORY: set to "0" or "false" to disable history recording
//   - GAUNTLET_EXPORT_DIR: overrides export.dir
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GAUNTLET_DURATION_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Session.DurationSecs = n
		}
	}

	if v := os.Getenv("GAUNTLET_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Session.TimeoutSecs = n
		}
	}

	if theme := os.Getenv("GAUNTLET_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if history := os.Getenv("GAUNTLET_HISTORY"); history != "" {
		c.History.Enabled = history != "0" && strings.ToLower(history) != "false"
	}

	if dir := os.Getenv("GAUNTLET_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "session.duration_secs").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		// If this is the last part, return the value
		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		// Otherwise, navigate into the struct
		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "session.timeout_secs").
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		// If this is the last part, set the value
		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}

		// Otherwise, navigate into the struct
		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	// Direct assignment for matching types
	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	// Type conversion for compatible types
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"session.duration_secs",
		"session.timeout_secs",
		"ui.theme",
		"ui.show_danger_meter",
		"ui.show_word_count",
		"ui.flash_on_erase",
		"history.enabled",
		"history.db_path",
		"export.dir",
		"export.format",
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
