package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.Logger == nil {
		t.Fatal("Logger.Logger is nil")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on stdout logger returned %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"invalid level", "INVALID", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogLevel, tt.value)
			if level := getLogLevelFromEnv(); level != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.log")
	t.Setenv(EnvLogFile, path)
	t.Setenv(EnvLogLevel, "DEBUG")

	logger := NewLogger()
	logger.Debug(context.Background(), "frame", "tick", 1)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"frame"`) {
		t.Errorf("log file missing record, got %q", data)
	}
}

func TestSessionID(t *testing.T) {
	t.Run("generate session ID", func(t *testing.T) {
		id1 := GenerateSessionID()
		id2 := GenerateSessionID()

		if id1 == id2 {
			t.Error("GenerateSessionID() returned duplicate IDs")
		}
		if len(id1) != 16 {
			t.Errorf("GenerateSessionID() returned wrong length: %d", len(id1))
		}
	})

	t.Run("context with session ID", func(t *testing.T) {
		ctx := WithSessionID(context.Background(), "runway-1")
		if id := GetSessionID(ctx); id != "runway-1" {
			t.Errorf("GetSessionID() = %q, want %q", id, "runway-1")
		}
	})

	t.Run("context without session ID", func(t *testing.T) {
		if id := GetSessionID(context.Background()); id != "" {
			t.Errorf("GetSessionID() = %q, want empty string", id)
		}
	})

	t.Run("auto-generate session ID", func(t *testing.T) {
		ctx := WithSessionID(context.Background(), "")
		if id := GetSessionID(ctx); len(id) != 16 {
			t.Errorf("auto-generated session ID has wrong length: %q", id)
		}
	})
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, slog.LevelDebug)
	ctx := WithSessionID(context.Background(), "test-session")

	decode := func(t *testing.T) map[string]interface{} {
		t.Helper()
		var entry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Failed to parse log JSON: %v", err)
		}
		return entry
	}

	t.Run("info logging", func(t *testing.T) {
		buf.Reset()
		logger.Info(ctx, "takeoff", "speed", 4.2)

		entry := decode(t)
		if entry["msg"] != "takeoff" {
			t.Errorf("Expected message 'takeoff', got %v", entry["msg"])
		}
		if entry["level"] != "INFO" {
			t.Errorf("Expected level 'INFO', got %v", entry["level"])
		}
		if entry["session_id"] != "test-session" {
			t.Errorf("Expected session_id 'test-session', got %v", entry["session_id"])
		}
		if entry["speed"] != 4.2 {
			t.Errorf("Expected speed 4.2, got %v", entry["speed"])
		}
	})

	t.Run("error logging", func(t *testing.T) {
		buf.Reset()
		logger.Error(ctx, "config rejected", errors.New("bad gravity"))

		entry := decode(t)
		if entry["level"] != "ERROR" {
			t.Errorf("Expected level 'ERROR', got %v", entry["level"])
		}
		if entry["error"] != "bad gravity" {
			t.Errorf("Expected error 'bad gravity', got %v", entry["error"])
		}
	})

	t.Run("warn and debug logging", func(t *testing.T) {
		buf.Reset()
		logger.Warn(ctx, "crash")
		if entry := decode(t); entry["level"] != "WARN" {
			t.Errorf("Expected level 'WARN', got %v", entry["level"])
		}

		buf.Reset()
		logger.Debug(ctx, "frame")
		if entry := decode(t); entry["level"] != "DEBUG" {
			t.Errorf("Expected level 'DEBUG', got %v", entry["level"])
		}
	})
}

func TestLogWithoutSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, slog.LevelInfo)

	logger.Info(context.Background(), "test message")

	if strings.Contains(buf.String(), "session_id") {
		t.Error("Log should not contain session_id when none is set in context")
	}
}

func TestWrapError(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		if result := WrapError(nil, "context"); result != nil {
			t.Errorf("WrapError(nil) should return nil, got %v", result)
		}
	})

	t.Run("wrap error with formatted context", func(t *testing.T) {
		originalErr := errors.New("original error")
		wrapped := WrapError(originalErr, "loading %s", "flight.json")

		expectedMsg := "loading flight.json: original error"
		if wrapped.Error() != expectedMsg {
			t.Errorf("WrapError() = %q, want %q", wrapped.Error(), expectedMsg)
		}
		if !errors.Is(wrapped, originalErr) {
			t.Error("WrapError() should preserve original error")
		}
	})
}
