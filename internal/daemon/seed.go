package daemon

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	controller "github.com/stixsettings/stixsettings/internal/db/controller/entitysetting"
	"github.com/stixsettings/stixsettings/internal/entitysetting"
)

// seed creates the default row of every configurable entity type that has no
// row yet. Existing rows are never touched. Every failing type is reported.
func seed(db *gorm.DB) error {
	var result *multierror.Error

	created := 0

	for _, targetType := range entitysetting.ConfigurableTypes() {
		_, err := controller.Get(db, targetType)
		if err == nil {
			continue
		}

		if !errors.Is(err, controller.ErrEntitySettingNotFound) {
			result = multierror.Append(result, err)
			continue
		}

		row := entitysetting.NewDefaultEntitySetting(targetType)
		if _, err = controller.Create(db, &row); err != nil {
			result = multierror.Append(result, err)
			continue
		}

		created++
	}

	log.Info().Int("created", created).Msg("entity settings seeded")

	return result.ErrorOrNil()
}
