package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/715209/belabot/internal/config"
	"github.com/715209/belabot/internal/logging"
	"github.com/715209/belabot/internal/preflight"
)

func newSetupCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "setup",
		Short:       "Bootstrap the settings file interactively",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			target := config.ResolvePath(ctx.settingsPath())
			location, err := config.AbsolutePath(target)
			if err != nil {
				return err
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", location)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if result := preflight.CheckSettingsDirectory("Settings directory", filepath.Dir(location)); !result.Passed {
				return fmt.Errorf("settings directory not writable: %s", result.Detail)
			}

			lock := flock.New(location + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire setup lock: %w", err)
			}
			if !locked {
				return errors.New("another belabot setup session is already running")
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logging.WarnWithContext(logger, "release setup lock failed", "setup_lock_release_failed",
						logging.String("path", lock.Path()),
						logging.Error(err),
					)
				}
			}()

			sessionLogger := logging.NewComponentLogger(logger, "setup").
				With(logging.String(logging.FieldSessionID, uuid.NewString()))
			sessionLogger.Info("setup session started", logging.String("path", location))

			wizard := config.NewWizard(cmd.InOrStdin(), cmd.OutOrStdout(),
				config.WithTargetPath(target),
				config.WithClearScreen(isTerminal(cmd.OutOrStdout())),
			)
			settings, err := wizard.Run()
			if err != nil {
				sessionLogger.Error("setup session failed",
					logging.String(logging.FieldEventType, "setup_failed"),
					logging.Error(err),
				)
				return fmt.Errorf("run setup wizard: %w", err)
			}

			sessionLogger.Info("settings bootstrapped",
				logging.String("channel", settings.Twitch.Channel),
				logging.Int("commands", len(settings.Commands)),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing settings file")
	return cmd
}
