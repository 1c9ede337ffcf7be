package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const setupScript = "https://remote.belabox.net/?key=AbC123\nBelaBot\nOAuth:SeCrEt\nMyChannel\n"

const validSettingsJSON = `{
  "belabox": {
    "remote_key": "abc123",
    "custom_interface_name": {"eth0": "eth0"},
    "monitor": {"modems": true, "notifications": true}
  },
  "twitch": {
    "bot_username": "belabot",
    "bot_oauth": "oauth:verysecret",
    "channel": "mychannel",
    "admins": ["streamop"]
  },
  "commands": {}
}`

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
