package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/715209/belabot/internal/logging"
)

// SettingsFileName is the canonical settings document name, resolved against
// the working directory when no explicit path is supplied.
const SettingsFileName = "config.json"

// Settings is the root configuration record for the bot.
type Settings struct {
	Belabox  Belabox                           `json:"belabox"`
	Twitch   Twitch                            `json:"twitch"`
	Commands map[BotCommand]CommandInformation `json:"commands"`
}

// Belabox identifies the controlled encoder and how it is monitored.
type Belabox struct {
	RemoteKey           string            `json:"remote_key"`
	CustomInterfaceName map[string]string `json:"custom_interface_name"`
	Monitor             Monitor           `json:"monitor"`
}

// Monitor toggles the encoder-side monitoring features.
type Monitor struct {
	Modems        bool `json:"modems"`
	Notifications bool `json:"notifications"`
}

// Twitch holds the chat connection identity and the admin allowlist.
type Twitch struct {
	BotUsername string   `json:"bot_username"`
	BotOauth    string   `json:"bot_oauth"`
	Channel     string   `json:"channel"`
	Admins      []string `json:"admins"`
}

// CommandInformation binds a chat trigger to the permission level required to
// invoke it.
type CommandInformation struct {
	Command    string     `json:"command"`
	Permission Permission `json:"permission"`
}

// Load reads the settings document at path (the canonical file when path is
// empty), normalizes it, fills in missing command bindings, and persists the
// canonical form back to the same location. The returned record always
// matches the bytes on disk.
//
// Read and write failures are returned with the underlying os error on the
// chain. Malformed documents are reported through logger and returned as
// ErrMalformedSettings; the file is left byte-for-byte untouched so the
// operator can inspect or repair it.
func Load(path string, logger *slog.Logger) (*Settings, error) {
	log := logging.NewComponentLogger(logger, "config")
	target := ResolvePath(path)

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", target, err)
	}

	settings := Default()
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.ErrorWithContext(log, "settings parse failed", "settings_parse_failed",
			logging.String("path", target),
			logging.String(logging.FieldErrorHint, "fix the JSON by hand or rerun 'belabot setup'"),
			logging.Error(err),
		)
		return nil, fmt.Errorf("parse settings %s: %w: %w", target, ErrMalformedSettings, err)
	}

	settings.Normalize()
	settings.EnsureCommandDefaults()

	if err := settings.Save(target); err != nil {
		return nil, err
	}

	log.Debug("settings loaded",
		logging.String("path", target),
		logging.Int("commands", len(settings.Commands)),
	)
	return &settings, nil
}

// Save writes the canonical pretty-printed document to path through a
// temporary file and rename, so a crash mid-write cannot corrupt the
// previous valid document.
func (s *Settings) Save(path string) error {
	target := ResolvePath(path)

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmpPath := target + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			return fmt.Errorf("replace settings %s: %w (cleanup failed: %v)", target, err, removeErr)
		}
		return fmt.Errorf("replace settings %s: %w", target, err)
	}
	return nil
}

// ResolvePath maps an optional override to the concrete settings location,
// falling back to the canonical file name in the working directory.
func ResolvePath(path string) string {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		return trimmed
	}
	return SettingsFileName
}

// AbsolutePath returns the absolute location of the resolved settings path
// for display to the operator.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(ResolvePath(path))
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return abs, nil
}

// IsAdmin reports whether user is on the admin allowlist. Comparison is
// case-insensitive so callers need not pre-normalize chat usernames.
func (s *Settings) IsAdmin(user string) bool {
	for _, admin := range s.Twitch.Admins {
		if strings.EqualFold(admin, user) {
			return true
		}
	}
	return false
}

// LookupCommand resolves a chat trigger like "!bbstart" to its command kind
// and binding.
func (s *Settings) LookupCommand(trigger string) (BotCommand, CommandInformation, bool) {
	for kind, info := range s.Commands {
		if strings.EqualFold(info.Command, trigger) {
			return kind, info, true
		}
	}
	return "", CommandInformation{}, false
}
