// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/stixsettings/stixsettings/internal/config"
	"github.com/stixsettings/stixsettings/internal/logger"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "stixsettings",
		Short: "stixsettings serves the per entity type settings of a STIX knowledge platform",
		Long: `stixsettings resolves which settings an entity type allows, which stored
settings apply to it and which attribute overrides are configured, and
validates attribute and scale configurations before they are stored.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "directory holding main.toml")

	loadConfig := func() (config.Config, error) {
		cfg, err := config.ReadConfig(configPath)
		if err != nil {
			return config.Config{}, err //nolint:wrapcheck
		}

		if err = logger.Init(cfg.Log); err != nil {
			return config.Config{}, err //nolint:wrapcheck
		}

		return cfg, nil
	}

	rootCmd.AddCommand(
		newStartCmd(loadConfig),
		newSettingsCmd(loadConfig),
		newConfigCmd(func() (config.Config, error) { return config.ReadConfig(configPath) }),
		newValidateCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute() //nolint:wrapcheck
}
