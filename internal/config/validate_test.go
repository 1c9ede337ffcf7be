package config_test

import (
	"strings"
	"testing"

	"github.com/715209/belabot/internal/config"
)

func completeSettings() config.Settings {
	settings := config.Default()
	settings.Belabox.RemoteKey = "abc123"
	settings.Twitch.BotUsername = "belabot"
	settings.Twitch.BotOauth = "oauth:token"
	settings.Twitch.Channel = "mychannel"
	settings.EnsureCommandDefaults()
	return settings
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	settings := completeSettings()
	if err := settings.Validate(); err != nil {
		t.Fatalf("Validate returned error for complete record: %v", err)
	}
}

func TestValidateReportsMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Settings)
		want   string
	}{
		{"remote key", func(s *config.Settings) { s.Belabox.RemoteKey = "" }, "belabox.remote_key"},
		{"bot username", func(s *config.Settings) { s.Twitch.BotUsername = "" }, "twitch.bot_username"},
		{"bot oauth", func(s *config.Settings) { s.Twitch.BotOauth = "" }, "twitch.bot_oauth"},
		{"channel", func(s *config.Settings) { s.Twitch.Channel = "" }, "twitch.channel"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := completeSettings()
			tc.mutate(&settings)
			err := settings.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not name %q", err, tc.want)
			}
		})
	}
}

func TestValidateRejectsEmptyTrigger(t *testing.T) {
	settings := completeSettings()
	settings.Commands[config.CommandSensor] = config.CommandInformation{Permission: config.PermissionPublic}

	err := settings.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty trigger")
	}
	if !strings.Contains(err.Error(), "Sensor") {
		t.Fatalf("error %q does not name the offending command", err)
	}
}

func TestValidateRejectsDuplicateTriggers(t *testing.T) {
	settings := completeSettings()
	settings.Commands[config.CommandStop] = config.CommandInformation{
		Command:    "!bbstart",
		Permission: config.PermissionBroadcaster,
	}

	err := settings.Validate()
	if err == nil {
		t.Fatal("expected validation error for duplicate trigger")
	}
	if !strings.Contains(err.Error(), "!bbstart") {
		t.Fatalf("error %q does not name the shared trigger", err)
	}
	if !strings.Contains(err.Error(), "Start") || !strings.Contains(err.Error(), "Stop") {
		t.Fatalf("error %q does not name both commands", err)
	}
}
