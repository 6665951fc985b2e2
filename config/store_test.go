// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	apps = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetString("", "defaultApp", "") == "" {
		t.Fatalf("expected defaultApp to be set")
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.Section(SwipeSection) == nil {
		t.Fatalf("expected swipe section to be present")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetSystem(Config{
		"swipe": map[string]interface{}{
			"allowance": "left",
		},
	})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetString(SwipeSection, "allowance", ""); got != "left" {
		t.Fatalf("expected allowance left, got %q", got)
	}
}

func TestExistingSystemConfigIsKept(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	if err := writeConfig(filepath.Join(root, "texelswipe", systemConfigName), Config{
		"swipe": map[string]interface{}{"move_threshold": 9},
	}); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := System()
	if got := cfg.GetInt(SwipeSection, "move_threshold", 0); got != 9 {
		t.Fatalf("expected user value 9, got %d", got)
	}
	if got := cfg.GetInt(SwipeSection, "snap_duration_ms", 0); got != 250 {
		t.Fatalf("expected default snap duration filled in, got %d", got)
	}
	if err := Err(); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
}

func TestBrokenSystemConfigIsNotOverwritten(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path := filepath.Join(root, "texelswipe", systemConfigName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := System()
	if !Error.Has(Err()) {
		t.Fatalf("expected config error, got %v", Err())
	}
	if cfg.GetString(SwipeSection, "allowance", "") != "both" {
		t.Fatalf("expected defaults to apply in memory")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Fatalf("broken file was overwritten")
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := App("swipe-demo")
	if cfg.Section("demo") == nil {
		t.Fatalf("expected demo section to be present")
	}
	if len(cfg.Records("rows")) == 0 {
		t.Fatalf("expected embedded demo rows")
	}

	path, err := appConfigPath("swipe-demo")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected app config to be written: %v", err)
	}
}

func TestSaveAppWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetApp("swipe-demo", Config{
		"demo": map[string]interface{}{
			"row_height": 5,
		},
	})
	if err := SaveApp("swipe-demo"); err != nil {
		t.Fatalf("SaveApp: %v", err)
	}
	if err := ReloadApp("swipe-demo"); err != nil {
		t.Fatalf("ReloadApp: %v", err)
	}
	if got := App("swipe-demo").GetInt("demo", "row_height", 0); got != 5 {
		t.Fatalf("expected row_height 5 after reload, got %d", got)
	}
}

func TestAppConfigPathRequiresName(t *testing.T) {
	if _, err := appConfigPath(""); !Error.Has(err) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestInstallStoresFileForApp(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := Config{
		"swipe": map[string]interface{}{"allowance": "right"},
		"rows":  []interface{}{map[string]interface{}{"title": "only"}},
	}
	if err := Install("swipe-demo", cfg); err != nil {
		t.Fatalf("Install: %v", err)
	}

	resetStore()
	if got := System().GetString(SwipeSection, "allowance", ""); got != "right" {
		t.Fatalf("expected installed allowance right, got %q", got)
	}
	if got := System().GetInt(SwipeSection, "snap_duration_ms", 0); got != 250 {
		t.Fatalf("expected defaults filled in after reload, got %d", got)
	}
	app := App("swipe-demo")
	if rows := app.Records("rows"); len(rows) != 1 || rows[0].Text("title", "") != "only" {
		t.Fatalf("expected installed rows, got %v", rows)
	}
	if got := app.GetInt("demo", "row_height", 0); got != 3 {
		t.Fatalf("expected demo defaults, got %d", got)
	}

	if err := Install("", cfg); !Error.Has(err) {
		t.Fatalf("expected config error for empty app, got %v", err)
	}
}
