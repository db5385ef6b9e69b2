package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLogOutputDiscard(t *testing.T) {
	w, closeLog, err := openLogOutput("")
	if err != nil {
		t.Fatalf("openLogOutput(\"\") error = %v", err)
	}
	if w != io.Discard {
		t.Error("empty path should discard logs")
	}
	if err := closeLog(); err != nil {
		t.Errorf("close of discard output = %v", err)
	}
}

func TestOpenLogOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hop.log")

	w, closeLog, err := openLogOutput(path)
	if err != nil {
		t.Fatalf("openLogOutput() error = %v", err)
	}
	if _, err := io.WriteString(w, "starting\n"); err != nil {
		t.Fatalf("write = %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("close = %v", err)
	}
	if _, err := io.WriteString(w, "late\n"); err == nil {
		t.Error("write after close should fail, file still open")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "starting" {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenLogOutputBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "hop.log")
	if _, _, err := openLogOutput(path); err == nil {
		t.Error("opening a log file in a missing directory should fail")
	}
}
