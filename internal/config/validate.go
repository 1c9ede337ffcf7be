package config

import (
	"errors"
	"fmt"
)

// Validate checks that the record is complete enough to actually run the
// bot. Load never calls it: the lifecycle accepts any well-formed document,
// and completeness is a policy the caller opts into (the CLI's
// "config validate" command does).
func (s *Settings) Validate() error {
	if err := s.validateBelabox(); err != nil {
		return err
	}
	if err := s.validateTwitch(); err != nil {
		return err
	}
	return s.validateCommands()
}

func (s *Settings) validateBelabox() error {
	if s.Belabox.RemoteKey == "" {
		return errors.New("belabox.remote_key must be set (run 'belabot setup')")
	}
	return nil
}

func (s *Settings) validateTwitch() error {
	if s.Twitch.BotUsername == "" {
		return errors.New("twitch.bot_username must be set")
	}
	if s.Twitch.BotOauth == "" {
		return errors.New("twitch.bot_oauth must be set")
	}
	if s.Twitch.Channel == "" {
		return errors.New("twitch.channel must be set")
	}
	return nil
}

func (s *Settings) validateCommands() error {
	seen := make(map[string]BotCommand, len(s.Commands))
	for _, kind := range BotCommands() {
		info, ok := s.Commands[kind]
		if !ok {
			continue
		}
		if info.Command == "" {
			return fmt.Errorf("commands.%s: trigger must be set", kind)
		}
		if first, dup := seen[info.Command]; dup {
			return fmt.Errorf("commands.%s reuses trigger %q already bound to commands.%s", kind, info.Command, first)
		}
		seen[info.Command] = kind
	}
	return nil
}
