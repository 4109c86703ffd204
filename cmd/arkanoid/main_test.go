package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLevelsCommand(t *testing.T) {
	out, err := execute(t, "levels")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	for _, want := range []string{"Level 1: Checkerboard (20 bricks)", "Level 2: Pillars (24 bricks)", "Level 3: Split Wall (30 bricks)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandFormats(t *testing.T) {
	for _, format := range []config.Format{config.FormatYAML, config.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			out, err := execute(t, "config", "--format", string(format))
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			cfg, err := config.Decode([]byte(out), format)
			if err != nil {
				t.Fatalf("output does not decode: %v", err)
			}
			if cfg.Gameplay.Lives != config.Default().Gameplay.Lives {
				t.Errorf("lives = %d, expected the default", cfg.Gameplay.Lives)
			}
		})
	}
}

func TestConfigCommandAppliesFileAndPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  speed: 6.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path, "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg, err := config.Decode([]byte(out), config.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Difficulty.Enabled || cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset not applied: %+v", cfg.Gameplay)
	}
}

func TestBadFlagsAreRejected(t *testing.T) {
	tests := [][]string{
		{"config", "--format", "json"},
		{"config", "--difficulty", "impossible"},
		{"config", "--config", "/nonexistent/arkanoid.yaml"},
		{"play", "--fps", "0"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v should fail", args)
		}
	}
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arkanoid.log")

	logger, closeLog, err := openLogger(path, "debug")
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Debug("hello", "run", "abc")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "run=abc") {
		t.Errorf("unexpected log contents %q", data)
	}

	if _, _, err := openLogger(path, "loud"); err == nil {
		t.Error("unknown level should fail")
	}

	logger, closeLog, err = openLogger("", "info")
	if err != nil || logger == nil {
		t.Fatalf("empty path should give a discarding logger, err = %v", err)
	}
	closeLog()
}
