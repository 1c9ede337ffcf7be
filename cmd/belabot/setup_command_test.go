package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/715209/belabot/internal/config"
)

func TestSetupCreatesSettingsFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.json")

	stdout, stderr, err := runCLI(t, []string{"setup", "--config", target}, setupScript)
	if err != nil {
		t.Fatalf("setup failed: %v (stderr: %s)", err, stderr)
	}

	requireContains(t, stdout, "Please paste your BELABOX Cloud remote URL below")
	requireContains(t, stdout, "Saved settings to config.json in ")

	data, readErr := os.ReadFile(target)
	if readErr != nil {
		t.Fatalf("read settings file: %v", readErr)
	}
	var settings config.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("parse settings file: %v", err)
	}
	if settings.Belabox.RemoteKey != "AbC123" {
		t.Fatalf("remote key = %q", settings.Belabox.RemoteKey)
	}
	if settings.Twitch.BotUsername != "belabot" {
		t.Fatalf("bot username = %q, want lowercase", settings.Twitch.BotUsername)
	}
	if len(settings.Commands) != len(config.BotCommands()) {
		t.Fatalf("expected full command catalogue, got %d entries", len(settings.Commands))
	}
}

func TestSetupRefusesToOverwriteExistingFile(t *testing.T) {
	target := writeSettings(t, validSettingsJSON)

	_, _, err := runCLI(t, []string{"setup", "--config", target}, setupScript)
	if err == nil {
		t.Fatal("expected error for existing settings file")
	}
	requireContains(t, err.Error(), "already exists at")
	requireContains(t, err.Error(), "--overwrite")

	data, readErr := os.ReadFile(target)
	if readErr != nil {
		t.Fatalf("read settings file: %v", readErr)
	}
	if string(data) != validSettingsJSON {
		t.Fatal("settings file changed despite refusal")
	}
}

func TestSetupOverwriteReplacesExistingFile(t *testing.T) {
	target := writeSettings(t, validSettingsJSON)

	_, stderr, err := runCLI(t, []string{"setup", "--config", target, "--overwrite"}, setupScript)
	if err != nil {
		t.Fatalf("setup --overwrite failed: %v (stderr: %s)", err, stderr)
	}

	data, readErr := os.ReadFile(target)
	if readErr != nil {
		t.Fatalf("read settings file: %v", readErr)
	}
	if !strings.Contains(string(data), "AbC123") {
		t.Fatalf("expected replaced settings, got %s", data)
	}
}

func TestSetupReportsMalformedURLOnExhaustedInput(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.json")

	_, _, err := runCLI(t, []string{"setup", "--config", target}, "https://remote.belabox.net/nokey\n")
	if !errors.Is(err, config.ErrMalformedRemoteURL) {
		t.Fatalf("expected ErrMalformedRemoteURL, got %v", err)
	}
	if _, statErr := os.Stat(target); statErr == nil {
		t.Fatal("expected no settings file after failed setup")
	}
}

func TestSetupDoesNotClearScreenWhenPiped(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.json")

	stdout, _, err := runCLI(t, []string{"setup", "--config", target}, setupScript)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if strings.Contains(stdout, "\x1b[2J") {
		t.Fatal("expected no clear-screen escape for non-terminal output")
	}
}
