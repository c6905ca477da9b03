package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/finance-calculator/internal/config"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "missing.yaml")
	var stdout, stderr bytes.Buffer
	full := append([]string{"finance-calculator", "--config", configPath, "--log-level", "error"}, args...)
	err := newApp(&stdout, &stderr).Run(full)
	return stdout.String(), err
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		config   config.LoggingConfig
		override string
		wantErr  bool
	}{
		{"Defaults", config.LoggingConfig{}, "", false},
		{"Console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Override wins", config.LoggingConfig{Level: "bogus"}, "warn", false},
		{"Invalid level", config.LoggingConfig{Level: "loud"}, "", true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config, tt.override)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = logger.Sync()
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "calculator.log")

	logger, err := initializeLogger(config.LoggingConfig{OutputFile: logFile}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("expected log line in file, got %q", string(data))
	}
}

func TestStandardCommand(t *testing.T) {
	out, err := runApp(t, "standard", "2", "+", "3*4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Result     | 14") {
		t.Fatalf("expected result 14, got %q", out)
	}

	_, err = runApp(t, "standard", "2+a")
	if err == nil || err.Error() != "Invalid characters in expression" {
		t.Fatalf("expected invalid characters error, got %v", err)
	}
}

func TestInterestCommand(t *testing.T) {
	out, err := runApp(t, "interest", "--principal", "1000", "--rate", "13", "--time", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "$1,390.00") {
		t.Fatalf("expected total $1,390.00, got %q", out)
	}
}

func TestInstallmentCommandJSON(t *testing.T) {
	out, err := runApp(t, "installment", "--principal", "10000", "--annual-rate", "13", "--months", "6", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Result map[string]string `json:"result"`
		Error  *cliError         `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error in output: %+v", resp.Error)
	}
	if resp.Result["emi"] != "2966.67" || resp.Result["total_interest"] != "7800.00" {
		t.Fatalf("unexpected result: %v", resp.Result)
	}
}

func TestInstallmentCommandJSONError(t *testing.T) {
	out, err := runApp(t, "installment", "--principal", "10000", "--annual-rate", "13", "--months", "20", "-o", "json")
	if err == nil {
		t.Fatal("expected error for months out of range")
	}

	var resp struct {
		Error *cliError `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if resp.Error == nil || resp.Error.Message != "Months must be between 2 and 12" {
		t.Fatalf("expected months error in output, got %+v", resp.Error)
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := runApp(t, "standard", "-o", "csv", "1+1")
	if err == nil {
		t.Fatal("expected error for unsupported output format")
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := runApp(t, "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, ":8080") {
		t.Fatalf("expected default address in YAML, got %q", out)
	}
	if !strings.Contains(out, "backend: none") {
		t.Fatalf("expected default cache backend in YAML, got %q", out)
	}
}
