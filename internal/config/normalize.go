package config

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases every field that must compare case-insensitively: the
// Twitch identity, the admin allowlist, and the chat triggers. It also
// allocates absent collections so the canonical document reads {} and []
// instead of null. Applying it twice yields the same record as applying it
// once.
//
// The BELABOX remote key and interface names are deliberately left alone;
// both are case-sensitive identifiers.
func (s *Settings) Normalize() {
	lower := cases.Lower(language.Und)

	s.Twitch.BotUsername = lower.String(s.Twitch.BotUsername)
	s.Twitch.BotOauth = lower.String(s.Twitch.BotOauth)
	s.Twitch.Channel = lower.String(s.Twitch.Channel)

	if s.Twitch.Admins == nil {
		s.Twitch.Admins = []string{}
	}
	for i, admin := range s.Twitch.Admins {
		s.Twitch.Admins[i] = lower.String(admin)
	}

	if s.Belabox.CustomInterfaceName == nil {
		s.Belabox.CustomInterfaceName = map[string]string{}
	}

	if s.Commands == nil {
		s.Commands = map[BotCommand]CommandInformation{}
	}
	for kind, info := range s.Commands {
		info.Command = lower.String(info.Command)
		s.Commands[kind] = info
	}
}
