package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	log := NewWithWriter(cfg, &buf)
	log.Info("priced", "rows", 11)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON log line; got %q (%v)", buf.String(), err)
	}
	if entry["msg"] != "priced" || entry["rows"] != float64(11) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "warn"
	log := NewWithWriter(cfg, &buf)
	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected only warn output; got %q", buf.String())
	}
}

func TestNew_File(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "file"
	cfg.FilePath = filepath.Join(t.TempDir(), "nested", "sweep.log")
	log, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	log.Info("written")
	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "written") {
		t.Errorf("expected message in log file; got %q", data)
	}
}
