package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/715209/belabot/internal/config"
)

func newCommandsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the chat command bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Command", "Trigger", "Permission"}, commandRows(settings)))
			return nil
		},
	}
}

// commandRows flattens the binding map in catalogue order so tables render
// deterministically.
func commandRows(settings *config.Settings) [][]string {
	rows := make([][]string, 0, len(settings.Commands))
	for _, kind := range config.BotCommands() {
		info, ok := settings.Commands[kind]
		if !ok {
			continue
		}
		rows = append(rows, []string{string(kind), info.Command, string(info.Permission)})
	}
	return rows
}
