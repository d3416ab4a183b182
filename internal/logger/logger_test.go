package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
		{"empty level", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	// Test with formatting
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestLevelGating(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		checkLevel  logrus.Level
		enabled     bool
	}{
		{"debug enabled at debug level", "debug", logrus.DebugLevel, true},
		{"info enabled at debug level", "debug", logrus.InfoLevel, true},
		{"debug disabled at info level", "info", logrus.DebugLevel, false},
		{"info enabled at info level", "info", logrus.InfoLevel, true},
		{"error enabled at warn level", "warn", logrus.ErrorLevel, true},
		{"invalid level defaults to info", "bogus", logrus.DebugLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			if got := log.logger.IsLevelEnabled(tt.checkLevel); got != tt.enabled {
				t.Errorf("IsLevelEnabled(%v) = %v, want %v", tt.checkLevel, got, tt.enabled)
			}
		})
	}
}
