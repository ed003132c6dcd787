package app

import (
	"github.com/spf13/cobra"

	"github.com/stixsettings/stixsettings/internal/config"
	"github.com/stixsettings/stixsettings/internal/daemon"
)

func newStartCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var devMode bool

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the entity settings web service",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			defer func() { _ = d.Close() }()

			return d.Start() //nolint:wrapcheck
		},
	}

	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode (no graceful shutdown delay)")

	return startCmd
}
