package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"fourd_chess/internal/shared"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	ec, err := cfg.EngineConfig()
	if err != nil {
		t.Fatalf("engine config: %v", err)
	}
	if ec.Shape != shared.DefaultShape || ec.Players != 2 {
		t.Fatalf("unexpected engine config %+v", ec)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{"game": {"shape": "2,8,4,4", "players": 3}, "save_dir": "/tmp/saves"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ec, err := cfg.EngineConfig()
	if err != nil {
		t.Fatalf("engine config: %v", err)
	}
	if want := (shared.Shape{2, 8, 4, 4}); ec.Shape != want || ec.Players != 3 {
		t.Fatalf("unexpected engine config %+v", ec)
	}
	if cfg.Log.Level != DefaultConfig.Log.Level || cfg.SaveDir != "/tmp/saves" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad json", body: `{"game": `},
		{name: "bad shape", body: `{"game": {"shape": "4x4x4", "players": 2}}`},
		{name: "empty axis", body: `{"game": {"shape": "4x0x4x4", "players": 2}}`},
		{name: "too many players", body: `{"game": {"shape": "4x4x4x4", "players": 6}}`},
		{name: "unknown level", body: `{"log": {"level": "chatty"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			var invalid *InvalidConfig
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestLoggerHonoursLevel(t *testing.T) {
	cfg := DefaultConfig
	cfg.Log.Level = "debug"
	cfg.Log.Development = true

	logger, err := cfg.Logger()
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug level not enabled")
	}

	cfg.Log.Level = "warn"
	logger, err = cfg.Logger()
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info enabled at warn level")
	}
}
