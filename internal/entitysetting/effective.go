package entitysetting

import (
	"context"

	"github.com/stixsettings/stixsettings/internal/db/models"
)

// Effective is the resolved view of the settings of one entity type.
type Effective struct {
	TargetType        string                   `json:"target_type"`
	AvailableSettings []string                 `json:"available_settings"`
	Setting           models.EntitySetting     `json:"setting"`
	Found             bool                     `json:"found"` // a stored row applies
	Attributes        []AttributeConfiguration `json:"attributes_configuration"`
}

// Effective resolves the available keys, the stored row and the decoded
// attribute overrides of entityType. Without a stored row the platform
// defaults are returned with Found set to false.
func (r *Resolver) Effective(ctx context.Context, entityType string) (Effective, error) {
	available, err := AvailableSettings(entityType)
	if err != nil {
		return Effective{}, err
	}

	out := Effective{
		TargetType:        entityType,
		AvailableSettings: available,
		Setting:           NewDefaultEntitySetting(entityType),
	}

	setting, err := r.EntitySettingFromCache(ctx, entityType)
	if err != nil {
		return Effective{}, err
	}

	if setting == nil {
		return out, nil
	}

	attributes, err := DecodeAttributesConfiguration(setting)
	if err != nil {
		return Effective{}, err
	}

	out.Setting = *setting
	out.Found = true
	out.Attributes = attributes

	return out, nil
}
