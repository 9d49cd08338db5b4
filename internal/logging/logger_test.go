package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleOutputShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.With(String("component", "triage")).Info("moved group", String("base", "IMG_001"), Int("files", 2))

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO triage: moved group") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "base=IMG_001") || !strings.Contains(line, "files=2") {
		t.Fatalf("missing attrs: %q", line)
	}
}

func TestConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("run complete", Int("moved", 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if record["msg"] != "run complete" {
		t.Fatalf("msg: got %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("level: got %v", record["level"])
	}
}

func TestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(Options{Format: "xml", Writer: &buf}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
