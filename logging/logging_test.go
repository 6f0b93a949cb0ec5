package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{"debug", "debug", zapcore.DebugLevel},
		{"warn", "warn", zapcore.WarnLevel},
		{"empty falls back to info", "", zapcore.InfoLevel},
		{"garbage falls back to info", "loud", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(Config{Level: tt.level, Format: "json", OutputPath: filepath.Join(t.TempDir(), "out.log")})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if !logger.Core().Enabled(tt.want) {
				t.Errorf("level %s not enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
				t.Errorf("level %s should be disabled", tt.want-1)
			}
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := New(Config{Level: "info", Format: "json", OutputPath: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("catalog: loaded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if entry["msg"] != "catalog: loaded" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["service"] != "component-creator" {
		t.Errorf("service = %v", entry["service"])
	}
}

func TestFallback(t *testing.T) {
	if Fallback() == nil {
		t.Fatal("Fallback() returned nil")
	}
}
