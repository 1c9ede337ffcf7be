package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/715209/belabot/internal/config"
)

func TestConfigShowMasksSecrets(t *testing.T) {
	path := writeSettings(t, validSettingsJSON)

	stdout, stderr, err := runCLI(t, []string{"config", "show", "--config", path}, "")
	if err != nil {
		t.Fatalf("config show failed: %v (stderr: %s)", err, stderr)
	}

	if strings.Contains(stdout, "verysecret") {
		t.Fatalf("oauth token leaked into output:\n%s", stdout)
	}
	if strings.Contains(stdout, "abc123") {
		t.Fatalf("remote key leaked into output:\n%s", stdout)
	}
	requireContains(t, stdout, "(set)")
	requireContains(t, stdout, "mychannel")
	requireContains(t, stdout, "streamop")
	requireContains(t, stdout, "!bbstart")
	requireContains(t, stdout, "Broadcaster")
}

func TestConfigShowRequiresSettingsFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.json")

	_, _, err := runCLI(t, []string{"config", "show", "--config", missing}, "")
	if err == nil {
		t.Fatal("expected error for missing settings file")
	}
	requireContains(t, err.Error(), "belabot setup")
}

func TestConfigValidateReportsHealthySettings(t *testing.T) {
	path := writeSettings(t, validSettingsJSON)

	stdout, stderr, err := runCLI(t, []string{"config", "validate", "--config", path}, "")
	if err != nil {
		t.Fatalf("config validate failed: %v (stderr: %s)", err, stderr)
	}

	requireContains(t, stdout, "Settings path: ")
	requireContains(t, stdout, "Settings directory")
	requireContains(t, stdout, "Settings document")
	requireContains(t, stdout, "Configuration valid")
}

func TestConfigValidateFailsOnIncompleteSettings(t *testing.T) {
	path := writeSettings(t, `{
  "belabox": {"remote_key": ""},
  "twitch": {"bot_username": "b", "bot_oauth": "o", "channel": "c"}
}`)

	stdout, _, err := runCLI(t, []string{"config", "validate", "--config", path}, "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "belabox.remote_key")
	requireContains(t, stdout, "Settings document")
}

func TestConfigValidateFailsOnMalformedSettings(t *testing.T) {
	path := writeSettings(t, "{broken")

	stdout, _, err := runCLI(t, []string{"config", "validate", "--config", path}, "")
	if !errors.Is(err, config.ErrMalformedSettings) {
		t.Fatalf("expected ErrMalformedSettings, got %v", err)
	}
	requireContains(t, stdout, "malformed")
}

func TestConfigPathPrintsLocation(t *testing.T) {
	path := writeSettings(t, validSettingsJSON)

	stdout, _, err := runCLI(t, []string{"config", "path", "--config", path}, "")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	requireContains(t, stdout, filepath.Base(path))
	if strings.Contains(stdout, "does not exist") {
		t.Fatalf("unexpected missing-file notice:\n%s", stdout)
	}
}

func TestConfigPathNotesMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.json")

	stdout, _, err := runCLI(t, []string{"config", "path", "--config", missing}, "")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	requireContains(t, stdout, "does not exist yet")
}
