// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Level, "info")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Output == nil {
		t.Error("Output = nil, want stderr")
	}
}

func TestInit_ServiceFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Version: "1.2.3", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("addr", ":8080").Msg("hello")

	out := buf.String()
	for _, want := range []string{
		`"message":"hello"`,
		`"level":"info"`,
		`"service":"gamerec"`,
		`"version":"1.2.3"`,
		`"addr":":8080"`,
		`"time":`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestInit_NoVersion(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("x")
	if strings.Contains(buf.String(), `"version"`) {
		t.Errorf("output %s should not carry a version", buf.String())
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("console line")

	out := buf.String()
	if !strings.Contains(out, "console line") {
		t.Errorf("output = %q, want console line", out)
	}
	if strings.HasPrefix(out, "{") {
		t.Errorf("console output looks like JSON: %q", out)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := levelFor(tt.input); got != tt.want {
				t.Errorf("levelFor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Msg("debug-line")
	Info().Msg("info-line")
	Warn().Msg("warn-line")
	Error().Msg("error-line")

	out := buf.String()
	for _, hidden := range []string{"debug-line", "info-line"} {
		if strings.Contains(out, hidden) {
			t.Errorf("output contains %q at warn level", hidden)
		}
	}
	for _, shown := range []string{"warn-line", "error-line"} {
		if !strings.Contains(out, shown) {
			t.Errorf("output missing %q", shown)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	logger := WithComponent("igdb")
	logger.Info().Msg("scoped")

	if !strings.Contains(buf.String(), `"component":"igdb"`) {
		t.Errorf("output = %q, want component field", buf.String())
	}
}
