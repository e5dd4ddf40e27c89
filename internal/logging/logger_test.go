package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger when no level is configured")
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fui.log")

	if err := Initialize("debug", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	Info("hello from test")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q, want message", data)
	}
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	err := Initialize("loud", filepath.Join(t.TempDir(), "fui.log"))
	if err == nil {
		t.Fatal("Initialize(loud) expected error")
	}
}

func TestLogSkippedCandidate(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogSkippedCandidate("feeder.dir", "/tmp/broken", errors.New("permission denied"))

	entries := logs.FilterMessage("Skipped candidate").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/tmp/broken" {
		t.Errorf("path field = %v, want /tmp/broken", fields["path"])
	}
	if fields["source"] != "feeder.dir" {
		t.Errorf("source field = %v, want feeder.dir", fields["source"])
	}
}
