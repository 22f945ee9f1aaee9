package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Report.HeaderScanRows != 12 || cfg.Report.TopN != 10 {
		t.Fatalf("unexpected report defaults %+v", cfg.Report)
	}
	if cfg.Fetch.Timeout() != 30*time.Second {
		t.Fatalf("timeout want=30s got=%v", cfg.Fetch.Timeout())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for port 0")
	}

	cfg = DefaultConfig()
	cfg.Report.HeaderScanRows = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for header_scan_rows -1")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOTELES_PORT", "")
	t.Setenv("HOTELES_DATA_DIR", "")
	t.Setenv("HOTELES_LOG_LEVEL", "")
	t.Setenv("HOTELES_FETCH_TIMEOUT", "")

	cfg, info, err := Load(dir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if info.PortSpecified || info.Path != "" {
		t.Fatalf("unexpected info %+v", info)
	}
	if cfg.Server.Port != DefaultConfig().Server.Port {
		t.Fatalf("port want=%d got=%d", DefaultConfig().Server.Port, cfg.Server.Port)
	}
}

func TestLoad_TomlThenEnv(t *testing.T) {
	dir := t.TempDir()
	toml := "[server]\nport = 9000\n\n[report]\ntop_n = 5\n\n[log]\nlevel = \"warn\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0644); err != nil {
		t.Fatal(err)
	}
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("HOTELES_FETCH_TIMEOUT=7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOTELES_PORT", "")
	t.Setenv("HOTELES_DATA_DIR", "/srv/hoteles")
	t.Setenv("HOTELES_LOG_LEVEL", "")
	t.Setenv("HOTELES_FETCH_TIMEOUT", "")
	os.Unsetenv("HOTELES_FETCH_TIMEOUT")

	cfg, info, err := Load(dir, envFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !info.PortSpecified || cfg.Server.Port != 9000 {
		t.Fatalf("port want=9000 (specified) got=%d (%v)", cfg.Server.Port, info.PortSpecified)
	}
	if cfg.Report.TopN != 5 || cfg.Report.HeaderScanRows != 12 {
		t.Fatalf("report want top_n=5 scan=12 got=%+v", cfg.Report)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log level want=warn got=%q", cfg.Log.Level)
	}
	if cfg.Data.DataDir != "/srv/hoteles" {
		t.Fatalf("data dir want=/srv/hoteles got=%q", cfg.Data.DataDir)
	}
	if cfg.Fetch.TimeoutSeconds != 7 {
		t.Fatalf("timeout want=7 got=%d", cfg.Fetch.TimeoutSeconds)
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("HOTELES_PORT", "abc")

	if _, _, err := Load(t.TempDir(), ""); err == nil {
		t.Fatalf("expected error for HOTELES_PORT=abc")
	}
}

func TestSaveAndEnsureDataDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Data.DataDir = "sources"
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("config.toml not written: %v", err)
	}

	got, err := EnsureDataDir(dir, cfg)
	if err != nil {
		t.Fatalf("EnsureDataDir failed: %v", err)
	}
	if st, err := os.Stat(got); err != nil || !st.IsDir() {
		t.Fatalf("data dir not created: %v", err)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("HOTELES_PORT", "")
	t.Setenv("HOTELES_DATA_DIR", "")
	t.Setenv("HOTELES_LOG_LEVEL", "")
	t.Setenv("HOTELES_FETCH_TIMEOUT", "")

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Server.Port = 8123
	cfg.Report.TopN = 3
	cfg.Fetch.UserAgent = "hoteles-test/2.0"
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, info, err := Load(dir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !info.PortSpecified || got.Server.Port != 8123 {
		t.Fatalf("port want=8123 (specified) got=%d (%v)", got.Server.Port, info.PortSpecified)
	}
	if got.Report.TopN != 3 || got.Fetch.UserAgent != cfg.Fetch.UserAgent {
		t.Fatalf("round trip mismatch %+v", got)
	}
}
