package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stixsettings/stixsettings/internal/config"
)

func newConfigCmd(readConfig func() (config.Config, error)) *cobra.Command {
	var asJSON bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}

			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}

	configCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of TOML")

	return configCmd
}
