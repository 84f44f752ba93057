package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultLeaseMonths != 12 {
		t.Fatalf("DefaultLeaseMonths = %d, want 12", cfg.General.DefaultLeaseMonths)
	}
	if Exists() {
		t.Fatal("Exists() = true with no file written")
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rent := 2350.0
	cfg := DefaultConfig()
	cfg.General.DefaultLeaseMonths = 14
	cfg.General.DefaultRent = &rent
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultLeaseMonths != 14 {
		t.Errorf("DefaultLeaseMonths = %d, want 14", got.General.DefaultLeaseMonths)
	}
	if got.General.DefaultRent == nil || *got.General.DefaultRent != 2350 {
		t.Errorf("DefaultRent = %v, want 2350", got.General.DefaultRent)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", got.Appearance.Theme)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "prorate", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9000\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Lead.Market != "Atlanta" {
		t.Errorf("Market = %q, want default Atlanta", cfg.Lead.Market)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "prorate", "config.toml")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, []byte("[server\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded on malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("PRORATE_ADDR", "")
	if got := GetServerAddr(cfg); got != cfg.Server.Addr {
		t.Errorf("GetServerAddr = %q, want config value", got)
	}

	t.Setenv("PRORATE_ADDR", "0.0.0.0:80")
	t.Setenv("PRORATE_THEME", "terminal")
	if got := GetServerAddr(cfg); got != "0.0.0.0:80" {
		t.Errorf("GetServerAddr = %q, want env value", got)
	}
	if got := GetTheme(cfg); got != "terminal" {
		t.Errorf("GetTheme = %q, want terminal", got)
	}
}
