package misc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "a.json")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if exists, err := CheckFileExists(file); !exists || err != nil {
		t.Errorf("existing file: %v, %v", exists, err)
	}
	if exists, err := CheckFileExists(filepath.Join(dir, "missing")); exists || err != nil {
		t.Errorf("missing file: %v, %v", exists, err)
	}
	if _, err := CheckFileExists(dir); err == nil {
		t.Error("expected an error for a directory")
	}
}

func TestSetLogOutput(t *testing.T) {
	defer SetLogOutput(os.Stderr, os.Stdout)

	errBuf := &bytes.Buffer{}
	infoBuf := &bytes.Buffer{}
	SetLogOutput(errBuf, infoBuf)

	WarnLogger.Print("careful")
	InfoLogger.Print("hello")

	if !strings.Contains(errBuf.String(), "[ WARN ]: ") {
		t.Errorf("warn went to %q", errBuf.String())
	}
	if !strings.Contains(infoBuf.String(), "hello") || strings.Contains(infoBuf.String(), "careful") {
		t.Errorf("info got %q", infoBuf.String())
	}
}
