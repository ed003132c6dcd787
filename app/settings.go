package app

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/cache"
	"github.com/stixsettings/stixsettings/internal/config"
	"github.com/stixsettings/stixsettings/internal/db/dsn"
	"github.com/stixsettings/stixsettings/internal/entitysetting"
)

func newSettingsCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	var (
		attribute string
		multiple  bool
	)

	settingsCmd := &cobra.Command{
		Use:   "settings <entity-type>",
		Short: "Print the resolved settings of an entity type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := dsn.Open(cfg.DB, &gorm.Config{})
			if err != nil {
				return err //nolint:wrapcheck
			}

			if sqlDB, errDB := db.DB(); errDB == nil {
				defer func() { _ = sqlDB.Close() }()
			}

			store, err := cache.New(db, cache.Config{TTL: cfg.Cache.TTL, Capacity: cfg.Cache.Capacity})
			if err != nil {
				return err //nolint:wrapcheck
			}

			resolver, err := entitysetting.NewResolver(store)
			if err != nil {
				return err //nolint:wrapcheck
			}

			effective, err := resolver.Effective(cmd.Context(), args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			var out any = effective

			if attribute != "" {
				values := []string{}

				if attrCfg, ok := entitysetting.FindAttributeConfiguration(effective.Attributes, attribute); ok {
					if v, present := entitysetting.DefaultValues(attrCfg, multiple); present {
						values = v
					}
				}

				out = values
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(out) //nolint:wrapcheck
		},
	}

	settingsCmd.Flags().StringVar(&attribute, "defaults", "", "print the default values of this attribute instead")
	settingsCmd.Flags().BoolVar(&multiple, "multiple", false, "with --defaults, print every default value")

	return settingsCmd
}
