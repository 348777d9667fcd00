package internal

import (
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.Source.Root = t.TempDir()
	cfg.Output.Base = t.TempDir()
	return cfg
}

func TestDefaultConfig_RequiresSource(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("default config without source root should fail")
	}
	cfg.Source.Root = "/tmp/Quiver.qvlibrary"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config with source root should pass: %v", err)
	}
}

func TestDefaultConfig_OutputDir(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.Base = "/home/me/Documents"
	if got := cfg.Output.Dir(); got != "/home/me/Documents/quiver-to-markdown" {
		t.Errorf("Dir() = %q", got)
	}
}

func TestOutputConfig_FolderMustBeSingleElement(t *testing.T) {
	for _, folder := range []string{"a/b", "..", "."} {
		cfg := validConfig(t)
		cfg.Output.Folder = folder
		err := cfg.Validate()
		if err == nil {
			t.Errorf("folder %q should fail validation", folder)
			continue
		}
		if !strings.Contains(err.Error(), "single path element") {
			t.Errorf("folder %q: unexpected error: %v", folder, err)
		}
	}
}

func TestOutputConfig_Timezone(t *testing.T) {
	cfg := validConfig(t)
	cfg.Output.Timezone = ""
	loc, err := cfg.Output.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("empty timezone = %v, %v; want UTC", loc, err)
	}

	cfg.Output.Timezone = "Not/AZone"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown timezone should fail validation")
	}
}

func TestWorkersConfig_Bounds(t *testing.T) {
	cfg := validConfig(t)
	cfg.Workers.Read = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero read workers should fail validation")
	}

	cfg = validConfig(t)
	cfg.Workers.Write = 5000
	if err := cfg.Validate(); err == nil {
		t.Fatal("excessive write workers should fail validation")
	}
}
