package config

import "fmt"

// BotCommand identifies one of the chat commands the bot understands. The
// wire form is the variant name itself, so persisted documents stay readable
// and unknown variants fail the parse.
type BotCommand string

const (
	CommandBitrate  BotCommand = "Bitrate"
	CommandNetwork  BotCommand = "Network"
	CommandPoweroff BotCommand = "Poweroff"
	CommandRestart  BotCommand = "Restart"
	CommandSensor   BotCommand = "Sensor"
	CommandStart    BotCommand = "Start"
	CommandStats    BotCommand = "Stats"
	CommandStop     BotCommand = "Stop"
)

// BotCommands lists every command kind in stable order for deterministic
// rendering and validation.
func BotCommands() []BotCommand {
	return []BotCommand{
		CommandBitrate,
		CommandNetwork,
		CommandPoweroff,
		CommandRestart,
		CommandSensor,
		CommandStart,
		CommandStats,
		CommandStop,
	}
}

// UnmarshalText restricts decoding to the closed command set. It covers both
// object keys and plain string values in the settings document.
func (c *BotCommand) UnmarshalText(text []byte) error {
	value := BotCommand(text)
	switch value {
	case CommandBitrate, CommandNetwork, CommandPoweroff, CommandRestart,
		CommandSensor, CommandStart, CommandStats, CommandStop:
		*c = value
		return nil
	default:
		return fmt.Errorf("unknown bot command %q", string(text))
	}
}

// Permission gates who may invoke a chat command.
type Permission string

const (
	PermissionBroadcaster Permission = "Broadcaster"
	PermissionModerator   Permission = "Moderator"
	PermissionVip         Permission = "Vip"
	PermissionPublic      Permission = "Public"
)

// UnmarshalText restricts decoding to the closed permission set.
func (p *Permission) UnmarshalText(text []byte) error {
	value := Permission(text)
	switch value {
	case PermissionBroadcaster, PermissionModerator, PermissionVip, PermissionPublic:
		*p = value
		return nil
	default:
		return fmt.Errorf("unknown permission %q", string(text))
	}
}

// Allows reports whether a holder of role clears the permission gate. Roles
// are ordered Broadcaster > Moderator > Vip > Public.
func (p Permission) Allows(role Permission) bool {
	return permissionRank(role) >= permissionRank(p)
}

func permissionRank(p Permission) int {
	switch p {
	case PermissionBroadcaster:
		return 3
	case PermissionModerator:
		return 2
	case PermissionVip:
		return 1
	default:
		return 0
	}
}
