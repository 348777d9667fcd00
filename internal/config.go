package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Defaults for the output tree.
const (
	DefaultOutputFolder = "quiver-to-markdown"
	DefaultLayout       = "2017/sheet"
	DefaultTimezone     = "UTC"
	DefaultWorkers      = 16
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Source  SourceConfig      `yaml:"source"`
	Output  OutputConfig      `yaml:"output"`
	Workers WorkersConfig     `yaml:"workers"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Workers.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// SourceConfig points at the Quiver library.
type SourceConfig struct {
	Root string `yaml:"root"`
}

// Validate validates the source configuration.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
}

// OutputConfig controls where and how notes are written.
//
// Notes are written below Base/Folder, which is wiped at the start of
// every run.
type OutputConfig struct {
	Base     string `yaml:"base"`
	Folder   string `yaml:"folder"`
	Layout   string `yaml:"layout"`
	Timezone string `yaml:"timezone"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Base, validation.Required),
		validation.Field(&c.Folder, validation.Required),
		validation.Field(&c.Layout, validation.Required),
	); err != nil {
		return err
	}
	if filepath.Base(filepath.Clean(c.Folder)) != filepath.Clean(c.Folder) || c.Folder == "." || c.Folder == ".." {
		return fmt.Errorf("output: folder must be a single path element, got %q", c.Folder)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Dir returns the directory notes are written to.
func (c *OutputConfig) Dir() string {
	return filepath.Join(c.Base, c.Folder)
}

// Location resolves Timezone. An empty timezone means UTC.
func (c *OutputConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("output: timezone: %w", err)
	}
	return loc, nil
}

// WorkersConfig caps the files in flight during each fan-out stage.
type WorkersConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
}

// Validate validates the worker limits.
func (c *WorkersConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Read, validation.Required, validation.Min(1), validation.Max(1024)),
		validation.Field(&c.Write, validation.Required, validation.Min(1), validation.Max(1024)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
// The output base defaults to ~/Documents.
func NewDefaultConfig() *Config {
	base := "Documents"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, "Documents")
	}
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Output: OutputConfig{
			Base:     base,
			Folder:   DefaultOutputFolder,
			Layout:   DefaultLayout,
			Timezone: DefaultTimezone,
		},
		Workers: WorkersConfig{
			Read:  DefaultWorkers,
			Write: DefaultWorkers,
		},
	}
}
