package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInit_FileLogging(t *testing.T) {
	tmpDir := t.TempDir()

	err := Init(Options{
		Verbose:  false,
		DebugDir: tmpDir,
	})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("login attempt", "host", "api.tracklab.ai")

	Close()

	today := time.Now().Format("2006-01-02")
	logFile := filepath.Join(tmpDir, today+".jsonl")
	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	if !strings.Contains(string(content), "login attempt") {
		t.Errorf("expected log file to contain 'login attempt', got: %s", content)
	}
}

func TestInit_StderrLevels(t *testing.T) {
	var stderr bytes.Buffer

	if err := Init(Options{
		Verbose: false,
		Stderr:  &stderr,
	}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	output := stderr.String()

	if strings.Contains(output, "debug message") {
		t.Error("debug should not appear on stderr in non-verbose mode")
	}
	if strings.Contains(output, "info message") {
		t.Error("info should not appear on stderr in non-verbose mode")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn should appear on stderr")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error should appear on stderr")
	}
}

func TestInit_VerboseStderr(t *testing.T) {
	var stderr bytes.Buffer

	if err := Init(Options{
		Verbose: true,
		Stderr:  &stderr,
	}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("debug message")

	if !strings.Contains(stderr.String(), "debug message") {
		t.Error("debug should appear on stderr in verbose mode")
	}
}

func TestInit_InteractiveSuppressesVerbose(t *testing.T) {
	var stderr bytes.Buffer

	if err := Init(Options{
		Verbose:     true,
		Interactive: true,
		Stderr:      &stderr,
	}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("info message")

	if strings.Contains(stderr.String(), "info message") {
		t.Error("info should not reach stderr while an interactive prompt owns the terminal")
	}
}

func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	old := filepath.Join(tmpDir, "2020-01-01.jsonl")
	if err := os.WriteFile(old, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	recent := filepath.Join(tmpDir, time.Now().Format("2006-01-02")+".jsonl")
	if err := os.WriteFile(recent, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	unrelated := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	Cleanup(tmpDir, 7)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("old log file should have been removed")
	}
	if _, err := os.Stat(recent); err != nil {
		t.Error("recent log file should have been kept")
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("non-log files should not be touched")
	}
}
