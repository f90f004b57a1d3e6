package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adventmirror/adventd/pkg/logging"
)

func TestLevelValidate(t *testing.T) {
	for _, level := range []logging.Level{
		logging.LevelDebug,
		logging.LevelInfo,
		logging.LevelWarn,
		logging.LevelError,
	} {
		if err := level.Validate(); err != nil {
			t.Errorf("Validate(%q) error = %v", level, err)
		}
	}

	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("Validate(verbose) expected error")
	}
}

func TestFormatValidate(t *testing.T) {
	if err := logging.FormatText.Validate(); err != nil {
		t.Errorf("Validate(text) error = %v", err)
	}
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate(json) error = %v", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Validate(xml) expected error")
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, &logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatJSON,
	})

	logger.Info("hello", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want %q", entry["msg"], "hello")
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want %q", entry["key"], "value")
	}
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, &logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatText,
	})

	logger.Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("output = %q, want text format", buf.String())
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, &logging.Config{
		Level:  logging.LevelWarn,
		Format: logging.FormatText,
	})

	logger.Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("info entry logged at warn level: %q", buf.String())
	}

	logger.Warn("emitted")
	if buf.Len() == 0 {
		t.Error("warn entry not logged at warn level")
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := &logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelInfo)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatText)
	}
}

func TestConfigFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{}
	err := cfg.Finalize(&logging.Env{
		Level:  "TEST_LOG_LEVEL",
		Format: "TEST_LOG_FORMAT",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelDebug)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatJSON)
	}
}
