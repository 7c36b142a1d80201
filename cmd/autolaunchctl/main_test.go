package main

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/launchline/autolaunch"
	"github.com/launchline/autolaunch/internal/config"
)

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"enable": false, "disable": false, "status": false, "init": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestFlagOverridesConfig(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	if err := flags.Set("name", "flag-name"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		flagName = ""
		_ = flags.Set("name", "")
	})

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Name != "flag-name" {
		t.Errorf("App.Name = %q, want flag override", cfg.App.Name)
	}
}

func TestBuildRecord(t *testing.T) {
	// The name matches the path basename so the assertion also holds on
	// macOS, where login-item records take the target's own name.
	path := filepath.Join(t.TempDir(), "demo")

	cfg := config.DefaultConfig()
	cfg.App.Name = "demo"
	cfg.App.Path = path
	cfg.App.Args = []string{"--minimized"}
	cfg.Windows.Mode = "current-user"

	record, err := buildRecord(cfg, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if record.AppName() != "demo" {
		t.Errorf("AppName() = %q", record.AppName())
	}
	if record.Mode() != autolaunch.CurrentUserMode {
		t.Errorf("Mode() = %v, want CurrentUserMode", record.Mode())
	}
}

func TestBuildRecordRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.App.Name = "demo" // path missing

	if _, err := buildRecord(cfg, zap.NewNop()); err == nil {
		t.Error("buildRecord accepted a config without a path")
	}
}
