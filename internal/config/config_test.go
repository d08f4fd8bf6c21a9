// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	cfg "github.com/blockbatch/settings/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	// keep ./blockbatch.yaml lookups away from the package directory
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	c, used, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != "" && !strings.HasPrefix(used, "/etc/") {
		t.Fatalf("expected no config file, got %q", used)
	}
	if c.Language != "en" || c.DefaultTab != "notifications" || c.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "cfg.yaml")
	content := "language: de\ndefault_tab: wallets\nlog:\n  level: debug\n  file: /tmp/bb.log\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write cfg: %v", err)
	}

	c, used, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != file {
		t.Fatalf("expected used file %q, got %q", file, used)
	}
	if c.Language != "de" || c.DefaultTab != "wallets" {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Log.Level != "debug" || c.Log.File != "/tmp/bb.log" {
		t.Fatalf("nested log values not applied: %+v", c.Log)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("default_tab: wallets\n"), 0o600); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	t.Setenv("BLOCKBATCH_DEFAULT_TAB", "profile")
	t.Setenv("BLOCKBATCH_LOG_LEVEL", "warn")

	c, _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.DefaultTab != "profile" {
		t.Fatalf("expected env default_tab=profile, got %q", c.DefaultTab)
	}
	if c.Log.Level != "warn" {
		t.Fatalf("expected env log.level=warn, got %q", c.Log.Level)
	}
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	isolate(t)
	t.Setenv("BLOCKBATCH_DEFAULT_TAB", "profile")

	cmd := &cobra.Command{}
	cmd.Flags().String("tab", "", "")
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("tab", "api"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, _, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.DefaultTab != "api" {
		t.Fatalf("expected --tab to win, got %q", c.DefaultTab)
	}
	if c.Language != "en" {
		t.Fatalf("unchanged flag should fall back to defaults, got %q", c.Language)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "broken.yaml")
	if err := os.WriteFile(file, []byte("language: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	if _, _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected parse error for malformed yaml")
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "en", DefaultTab: "profile"}
	c.Log.Level = "info"

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "default_tab: profile") {
		t.Fatalf("expected default_tab in written yaml, got:\n%s", data)
	}
}

func TestDefault_MatchesDefaults(t *testing.T) {
	isolate(t)

	loaded, _, err := cfg.LoadConfig[cfg.Config](nil, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded != cfg.Default() {
		t.Fatalf("Default() %+v differs from Defaults() %+v", cfg.Default(), loaded)
	}
}
