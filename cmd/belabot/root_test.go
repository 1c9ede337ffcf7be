package main

import (
	"testing"
)

func TestRootShowsHelpWithoutSettings(t *testing.T) {
	stdout, _, err := runCLI(t, []string{}, "")
	if err != nil {
		t.Fatalf("bare invocation failed: %v", err)
	}
	requireContains(t, stdout, "Usage:")
	requireContains(t, stdout, "setup")
	requireContains(t, stdout, "config")
	requireContains(t, stdout, "commands")
}

func TestRootRejectsUnknownLogFormat(t *testing.T) {
	path := writeSettings(t, validSettingsJSON)

	_, _, err := runCLI(t, []string{"commands", "--config", path, "--log-format", "yaml"}, "")
	if err == nil {
		t.Fatal("expected error for unsupported log format")
	}
	requireContains(t, err.Error(), "log format")
}
