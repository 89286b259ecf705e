// Package config provides configuration management for the MOS device manager.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// writeConfigFile writes content to a YAML file in a temp dir and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mosdev.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// newTestFlags mirrors the flags registered by the mosdev root command.
func newTestFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("mosdev", pflag.ContinueOnError)
	fs.StringP("launcher", "l", "", "")
	fs.StringP("output-file", "o", DefaultOutputFile, "")
	fs.StringP("base-path", "b", DefaultBasePath, "")
	fs.StringP("model-prefix", "p", DefaultModelPrefix, "")
	fs.StringP("format", "f", DefaultFormat, "")
	fs.Bool("skip-malformed", false, "")
	fs.String("log-level", "info", "")
	return fs
}

func TestLoad_Success(t *testing.T) {
	content := `
input:
  launcher: "devices.conf"
  base_path: "SuperNEMO:/Demonstrator/CMS/Calorimeter"
output:
  file: "calo.lis"
`
	cfg, err := Load(writeConfigFile(t, content), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Input.Launcher != "devices.conf" {
		t.Errorf("Launcher = %v, want devices.conf", cfg.Input.Launcher)
	}
	if cfg.Input.BasePath != "SuperNEMO:/Demonstrator/CMS/Calorimeter" {
		t.Errorf("BasePath = %v", cfg.Input.BasePath)
	}
	if cfg.Output.File != "calo.lis" {
		t.Errorf("Output file = %v, want calo.lis", cfg.Output.File)
	}

	// Verify defaults
	if cfg.Output.Format != "lis" {
		t.Errorf("Format = %v, want lis", cfg.Output.Format)
	}
	if cfg.Model.Prefix != "sndemo" {
		t.Errorf("Prefix = %v, want sndemo", cfg.Model.Prefix)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging level = %v, want info", cfg.Logging.Level)
	}
	if cfg.Input.SkipMalformed {
		t.Error("SkipMalformed should default to false")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	fs := newTestFlags()
	if err := fs.Parse([]string{"-l", "devices.conf"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Input.Launcher != "devices.conf" {
		t.Errorf("Launcher = %v, want devices.conf", cfg.Input.Launcher)
	}
	if cfg.Output.File != DefaultOutputFile {
		t.Errorf("Output file = %v, want %v", cfg.Output.File, DefaultOutputFile)
	}
	if cfg.Input.BasePath != DefaultBasePath {
		t.Errorf("BasePath = %v, want %v", cfg.Input.BasePath, DefaultBasePath)
	}
}

func TestLoad_MissingLauncher(t *testing.T) {
	_, err := Load("", newTestFlags())
	if err == nil {
		t.Fatal("Load() should return error when no launcher is given")
	}
	if !strings.Contains(err.Error(), "input.launcher") {
		t.Errorf("error should mention input.launcher, got: %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/mosdev.yaml", nil)
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfigFile(t, "input: [broken: yaml"), nil)
	if err == nil {
		t.Error("Load() should return error for invalid YAML")
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	content := `
input:
  launcher: "devices.conf"
model:
  prefix: "file"
`
	t.Setenv("MOSDEV_MODEL_PREFIX", "env")
	t.Setenv("MOSDEV_INPUT_BASE_PATH", "SuperNEMO:/Demonstrator/CMS/Tracker")

	cfg, err := Load(writeConfigFile(t, content), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Model.Prefix != "env" {
		t.Errorf("Prefix = %v, want env (env override)", cfg.Model.Prefix)
	}
	if cfg.Input.BasePath != "SuperNEMO:/Demonstrator/CMS/Tracker" {
		t.Errorf("BasePath = %v, want env override", cfg.Input.BasePath)
	}
}

func TestLoad_FlagOverride(t *testing.T) {
	content := `
input:
  launcher: "devices.conf"
  base_path: "SuperNEMO:/Demonstrator/CMS/Tracker"
output:
  file: "from-file.lis"
  format: "html"
`
	t.Setenv("MOSDEV_MODEL_PREFIX", "env")

	fs := newTestFlags()
	if err := fs.Parse([]string{"-o", "from-flag.lis", "--model-prefix", "flag", "-f", "YAML"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(writeConfigFile(t, content), fs)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.File != "from-flag.lis" {
		t.Errorf("Output file = %v, want from-flag.lis", cfg.Output.File)
	}
	if cfg.Model.Prefix != "flag" {
		t.Errorf("Prefix = %v, want flag (flag beats env)", cfg.Model.Prefix)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Format = %v, want normalized yaml", cfg.Output.Format)
	}
	// Unchanged flags must not mask the file value.
	if cfg.Input.BasePath != "SuperNEMO:/Demonstrator/CMS/Tracker" {
		t.Errorf("BasePath = %v, want value from file", cfg.Input.BasePath)
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	fs := newTestFlags()
	if err := fs.Parse([]string{"-l", "devices.conf", "-f", "pdf"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	_, err := Load("", fs)
	if err == nil {
		t.Fatal("Load() should reject unknown format")
	}
	if !strings.Contains(err.Error(), "output.format") {
		t.Errorf("error should mention output.format, got: %v", err)
	}
}
