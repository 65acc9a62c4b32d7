package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/cards/internal/config"
	"github.com/Makepad-fr/cards/internal/ui"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.configFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.configFile()
			if err != nil {
				return err
			}
			if _, err := os.Stat(p); err == nil && !force {
				return usagef("%s exists (use --force to overwrite)", p)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := app.cfg.Save(p); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), "wrote "+p)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}

func (app *App) configFile() (string, error) {
	if app.ConfigPath != "" {
		return app.ConfigPath, nil
	}
	return config.Path()
}
