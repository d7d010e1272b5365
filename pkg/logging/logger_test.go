package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Failed to unmarshal log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{" info ", InfoLevel},
		{"WARN", WarnLevel},
		{"warning", WarnLevel},
		{"Error", ErrorLevel},
		{"", InfoLevel},
		{"invalid", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJSONLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("graph built", Mode("edge-only"), Count(3))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["msg"] != "graph built" {
		t.Errorf("msg = %v, want 'graph built'", entry["msg"])
	}
	if entry["mode"] != "edge-only" {
		t.Errorf("mode = %v, want edge-only", entry["mode"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("count = %v, want 3", entry["count"])
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries at WARN, got %d", len(entries))
	}

	logger.SetLevel(DebugLevel)
	buf.Reset()
	logger.Debug("now visible")
	if len(decodeLines(t, &buf)) != 1 {
		t.Error("Expected debug entry after SetLevel(DebugLevel)")
	}
}

func TestNewLogger_LevelFallback(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		env       string
		wantDebug bool
	}{
		{"explicit level wins over env", "error", "debug", false},
		{"empty level reads LOG_LEVEL", "", "debug", true},
		{"empty level and env default to info", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)

			logger.Debug("debug entry")
			got := strings.Contains(buf.String(), "debug entry")
			if got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	parent := NewJSONLogger(&buf, InfoLevel)
	child := parent.With(RunID("run-1"), Component("analysis"))

	child.Info("query finished", Query("diameter"))
	parent.Info("parent only")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0]["run_id"] != "run-1" || entries[0]["component"] != "analysis" {
		t.Errorf("child fields missing: %v", entries[0])
	}
	if entries[0]["query"] != "diameter" {
		t.Errorf("query = %v, want diameter", entries[0]["query"])
	}
	if _, ok := entries[1]["run_id"]; ok {
		t.Error("parent logger should not inherit child fields")
	}
}

func TestFieldConstructors(t *testing.T) {
	if f := AirportID("from", 7); f.Key != "from_id" || f.Value != int64(7) {
		t.Errorf("AirportID() = %+v", f)
	}
	if f := AirportCode("to", "CBR"); f.Key != "to_code" || f.Value != "CBR" {
		t.Errorf("AirportCode() = %+v", f)
	}
	if f := Latency(2 * time.Second); f.Key != "latency" || f.Value != "2s" {
		t.Errorf("Latency() = %+v", f)
	}
	if f := Error(errors.New("boom")); f.Value != "boom" {
		t.Errorf("Error() = %+v", f)
	}
	if f := Error(nil); f.Value != nil {
		t.Errorf("Error(nil) = %+v", f)
	}
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	timer := StartTimer(logger, "betweenness", Query("betweenness"))
	timer.End(Count(10))

	timer = StartTimer(logger, "route", Query("route"))
	timer.EndError(errors.New("no route"))

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if _, ok := entries[0]["latency"]; !ok {
		t.Error("End() should add latency")
	}
	if entries[0]["count"] != float64(10) {
		t.Errorf("count = %v, want 10", entries[0]["count"])
	}
	if entries[1]["level"] != "ERROR" || entries[1]["error"] != "no route" {
		t.Errorf("EndError() entry = %v", entries[1])
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored")
	if _, ok := logger.With(Count(1)).(NopLogger); !ok {
		t.Error("NopLogger.With should return a NopLogger")
	}
}
