package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	log, closeFn, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closeFn()
	if log.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level by default; got %v", log.GetLevel())
	}

	log, closeFn2, err := New(Options{Enabled: true, Quiet: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closeFn2()
	if log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level; got %v", log.GetLevel())
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	log, closeFn, err := New(Options{Enabled: true, Path: path, Quiet: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.WithField("op", "indent").Debug("applied")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "op=indent") {
		t.Fatalf("expected log line in file; got %q", string(b))
	}
}

func TestNew_BadPath(t *testing.T) {
	if _, _, err := New(Options{Path: filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")}); err == nil {
		t.Fatalf("expected error for an unwritable path")
	}
}
