package entitysetting

import (
	"encoding/json"

	"github.com/stixsettings/stixsettings/internal/db/models"
)

// DecodeAttributesConfiguration returns the attribute overrides stored in setting.
// A nil setting or an empty configuration yields nil, meaning no overrides.
// Stored data is expected to be valid; a decoding failure is returned as a
// *MalformedConfigurationError without attempting partial recovery.
func DecodeAttributesConfiguration(setting *models.EntitySetting) ([]AttributeConfiguration, error) {
	if setting == nil || setting.AttributesConfiguration == "" {
		return nil, nil
	}

	var configurations []AttributeConfiguration
	if err := json.Unmarshal([]byte(setting.AttributesConfiguration), &configurations); err != nil {
		return nil, &MalformedConfigurationError{TargetType: setting.TargetType, Err: err}
	}

	return configurations, nil
}

// EncodeAttributesConfiguration serializes configurations into the stored text form.
// A nil list is stored as the empty text, which decodes back to nil. An empty
// non-nil list is stored as [].
func EncodeAttributesConfiguration(configurations []AttributeConfiguration) (string, error) {
	if configurations == nil {
		return "", nil
	}

	data, err := json.Marshal(configurations)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return string(data), nil
}

// FindAttributeConfiguration returns the first configuration named name.
func FindAttributeConfiguration(configurations []AttributeConfiguration, name string) (AttributeConfiguration, bool) {
	for _, c := range configurations {
		if c.Name == name {
			return c, true
		}
	}

	return AttributeConfiguration{}, false
}
