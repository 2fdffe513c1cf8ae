package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/famish99/doomhal/internal/config"
)

func configCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(opts.configPath); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", opts.configPath)
			}
			if err := config.SaveConfig(opts.configPath, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved default configuration to %s\n", opts.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	c.AddCommand(initCmd)
	return c
}
