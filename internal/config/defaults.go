package config

// defaultCommands is the catalogue EnsureCommandDefaults inserts. A binding
// the user already customized always wins over the catalogue entry.
var defaultCommands = map[BotCommand]CommandInformation{
	CommandStart:    {Command: "!bbstart", Permission: PermissionBroadcaster},
	CommandStop:     {Command: "!bbstop", Permission: PermissionBroadcaster},
	CommandStats:    {Command: "!bbs", Permission: PermissionPublic},
	CommandRestart:  {Command: "!bbrs", Permission: PermissionBroadcaster},
	CommandPoweroff: {Command: "!bbpo", Permission: PermissionBroadcaster},
	CommandBitrate:  {Command: "!bbb", Permission: PermissionBroadcaster},
	CommandSensor:   {Command: "!bbsensor", Permission: PermissionPublic},
	CommandNetwork:  {Command: "!bbt", Permission: PermissionBroadcaster},
}

// Default returns the settings skeleton documents decode into. Collections
// are pre-allocated so absent sections read back as empty rather than null,
// and monitoring features start enabled.
func Default() Settings {
	return Settings{
		Belabox: Belabox{
			CustomInterfaceName: map[string]string{},
			Monitor:             DefaultMonitor(),
		},
		Twitch: Twitch{
			Admins: []string{},
		},
		Commands: map[BotCommand]CommandInformation{},
	}
}

// DefaultMonitor returns the monitor section used when a document omits it.
func DefaultMonitor() Monitor {
	return Monitor{Modems: true, Notifications: true}
}

// defaultInterfaceNames seeds the wizard's interface display-name overrides
// with identity mappings for the network interfaces a stock BELABOX exposes.
func defaultInterfaceNames() map[string]string {
	return map[string]string{
		"eth0":  "eth0",
		"usb0":  "usb0",
		"wlan0": "wlan0",
	}
}

// EnsureCommandDefaults inserts every missing catalogue binding into the
// record. Existing bindings are never overwritten, so applying it twice is a
// no-op.
func (s *Settings) EnsureCommandDefaults() {
	if s.Commands == nil {
		s.Commands = make(map[BotCommand]CommandInformation, len(defaultCommands))
	}
	for kind, info := range defaultCommands {
		if _, ok := s.Commands[kind]; !ok {
			s.Commands[kind] = info
		}
	}
}
