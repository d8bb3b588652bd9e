package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLayered_CLIOverridesEverything(t *testing.T) {
	embedded := []byte("collection:\n  top_processes: 7\nlogging:\n  level: info\n")
	t.Setenv("MHC_TOP_PROCESSES", "8")
	t.Setenv("MHC_LOG_LEVEL", "error")
	cli := CLIOverrides{Deep: true, TopProcesses: 9, LogLevel: "debug"}

	cfg, err := LoadLayered(cli, embedded, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Collection.TopProcesses != 9 {
		t.Errorf("TopProcesses = %d, want CLI override", cfg.Collection.TopProcesses)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want CLI override", cfg.Logging.Level)
	}
	if !cfg.Collection.Deep {
		t.Error("Deep = false, want CLI override")
	}
}

func TestLoadLayered_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "collection:\n  top_processes: 3\n  deep: true\nlogging:\n  file: /tmp/from-file.log\n")
	t.Setenv("MHC_TOP_PROCESSES", "12")
	t.Setenv("MHC_DEEP", "false")

	cfg, err := LoadLayered(CLIOverrides{}, nil, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Collection.TopProcesses != 12 {
		t.Errorf("TopProcesses = %d, want env override", cfg.Collection.TopProcesses)
	}
	if cfg.Collection.Deep {
		t.Error("Deep = true, want env override")
	}
	if cfg.Logging.File != "/tmp/from-file.log" {
		t.Errorf("File = %q, want file value", cfg.Logging.File)
	}
}

func TestLoadLayered_FileOverridesEmbed(t *testing.T) {
	embedded := []byte("timeouts:\n  default: 20s\n  sampling: 30s\n")
	path := writeFile(t, "timeouts:\n  default: 3s\n")

	cfg, err := LoadLayered(CLIOverrides{}, embedded, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeouts.Default.Duration != 3*time.Second {
		t.Errorf("Default = %v, want file value", cfg.Timeouts.Default.Duration)
	}
	if cfg.Timeouts.Sampling.Duration != 30*time.Second {
		t.Errorf("Sampling = %v, want embedded value", cfg.Timeouts.Sampling.Duration)
	}
	if cfg.Timeouts.Availability.Duration != 5*time.Second {
		t.Errorf("Availability = %v, want 5s default", cfg.Timeouts.Availability.Duration)
	}
}

func TestLoadLayered_DefaultsWhenEmpty(t *testing.T) {
	cfg, err := LoadLayered(CLIOverrides{}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeouts.Default.Duration.Seconds() != 10 {
		t.Errorf("Default timeout = %v, want 10s default", cfg.Timeouts.Default.Duration)
	}
	if cfg.Collection.TopProcesses != 5 {
		t.Errorf("TopProcesses = %d, want 5", cfg.Collection.TopProcesses)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadLayered_MissingExplicitFile(t *testing.T) {
	_, err := LoadLayered(CLIOverrides{}, nil, filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadLayered_BadYAML(t *testing.T) {
	path := writeFile(t, "timeouts:\n  default: soon\n")

	_, err := LoadLayered(CLIOverrides{}, nil, path)
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Fatalf("err = %v, want invalid duration", err)
	}
}

func TestApplyEnvOverrides_ExtraPath(t *testing.T) {
	t.Setenv("MHC_EXTRA_PATH", "/opt/tools/bin: :/usr/local/sbin")

	cfg, err := LoadFromBytes(nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/opt/tools/bin", "/usr/local/sbin"}
	if strings.Join(cfg.Paths.Extra, ",") != strings.Join(want, ",") {
		t.Errorf("Extra = %v, want %v", cfg.Paths.Extra, want)
	}
}

func TestApplyEnvOverrides_InvalidNumber(t *testing.T) {
	t.Setenv("MHC_TOP_PROCESSES", "many")

	if _, err := LoadFromBytes(nil); err == nil {
		t.Fatal("expected error for non-numeric MHC_TOP_PROCESSES")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Collection.InternalDevice != "/dev/disk0" {
		t.Errorf("InternalDevice = %q, want default", cfg.Collection.InternalDevice)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"top processes", func(c *Config) { c.Collection.TopProcesses = 0 }, "top_processes"},
		{"device", func(c *Config) { c.Collection.InternalDevice = "" }, "internal_device"},
		{"timeout", func(c *Config) { c.Timeouts.Sampling = Duration{} }, "timeouts.sampling"},
		{"format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeouts.Sampling = Duration{20 * time.Second}

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "sampling: 20s") {
		t.Errorf("marshaled config missing duration string:\n%s", data)
	}

	back, err := LoadFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Timeouts.Sampling.Duration != 20*time.Second {
		t.Errorf("Sampling = %v after round trip", back.Timeouts.Sampling.Duration)
	}
}
