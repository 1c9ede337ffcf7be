package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/715209/belabot/internal/config"
	"github.com/715209/belabot/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Settings utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigPathCommand(ctx))

	return configCmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the loaded settings with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			belaboxRows := [][]string{
				{"remote_key", maskSecret(settings.Belabox.RemoteKey)},
				{"monitor modems", yesNo(settings.Belabox.Monitor.Modems)},
				{"monitor notifications", yesNo(settings.Belabox.Monitor.Notifications)},
			}
			interfaces := make([]string, 0, len(settings.Belabox.CustomInterfaceName))
			for name := range settings.Belabox.CustomInterfaceName {
				interfaces = append(interfaces, name)
			}
			sort.Strings(interfaces)
			for _, name := range interfaces {
				belaboxRows = append(belaboxRows, []string{"interface " + name, settings.Belabox.CustomInterfaceName[name]})
			}
			fmt.Fprintln(out, renderTable([]string{"Belabox", "Value"}, belaboxRows))

			admins := "(none)"
			if len(settings.Twitch.Admins) > 0 {
				admins = strings.Join(settings.Twitch.Admins, ", ")
			}
			twitchRows := [][]string{
				{"bot_username", settings.Twitch.BotUsername},
				{"bot_oauth", maskSecret(settings.Twitch.BotOauth)},
				{"channel", settings.Twitch.Channel},
				{"admins", admins},
			}
			fmt.Fprintln(out, renderTable([]string{"Twitch", "Value"}, twitchRows))

			fmt.Fprintln(out, renderTable([]string{"Command", "Trigger", "Permission"}, commandRows(settings)))
			return nil
		},
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Check the settings file for completeness",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			location, err := config.AbsolutePath(ctx.settingsPath())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Settings path: %s\n", location)

			results := preflight.RunAll(ctx.settingsPath())
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{result.Name, yesNo(result.Passed), result.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "OK", "Detail"}, rows))

			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return fmt.Errorf("settings incomplete: %w", err)
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the resolved settings file location",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := config.AbsolutePath(ctx.settingsPath())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, location)
			if _, err := os.Stat(location); os.IsNotExist(err) {
				fmt.Fprintln(out, "Settings file does not exist yet; run 'belabot setup' to create it.")
			}
			return nil
		},
	}
}
