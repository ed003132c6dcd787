package entitysetting

import (
	"encoding/json"
	"slices"

	"github.com/stixsettings/stixsettings/internal/db/models"
)

// DefaultValues returns the configured default values of an attribute.
// ok is false when the attribute has no default values configured.
//
// For a multiple-value attribute the whole ordered list is returned. For a
// single-value attribute only the first configured value is returned and any
// further value is ignored; an empty list then counts as no default.
func DefaultValues(cfg AttributeConfiguration, multiple bool) (values []string, ok bool) {
	if cfg.DefaultValues == nil {
		return nil, false
	}

	if multiple {
		return slices.Clone(cfg.DefaultValues), true
	}

	if len(cfg.DefaultValues) == 0 {
		return nil, false
	}

	return []string{cfg.DefaultValues[0]}, true
}

// DefaultValue returns the single-value default of an attribute, which is the
// first configured default value.
func DefaultValue(cfg AttributeConfiguration) (string, bool) {
	values, ok := DefaultValues(cfg, false)
	if !ok {
		return "", false
	}

	return values[0], true
}

// DefaultScale is the scale applied to numeric attributes without a scale of their own.
var DefaultScale = Scale{ //nolint:gochecknoglobals
	LocalConfig: ScaleConfig{
		BetterSide: "min",
		Min:        ScaleTick{Value: 0, Color: "#f44336", Label: "Low"},
		Max:        ScaleTick{Value: 100, Color: "#6e44ad", Label: "Out of Range"},
		Ticks: []ScaleTick{
			{Value: 30, Color: "#ff9800", Label: "Med"},
			{Value: 70, Color: "#4caf50", Label: "High"},
		},
	},
}

// DefaultScaleJSON returns DefaultScale in its stored text form.
func DefaultScaleJSON() string {
	data, _ := json.Marshal(DefaultScale) //nolint:errchkjson // static value always marshals

	return string(data)
}

// NewDefaultEntitySetting returns the row used for an entity type that has
// never been configured: every flag off and no attribute overrides.
func NewDefaultEntitySetting(targetType string) models.EntitySetting {
	return models.EntitySetting{
		TargetType:              targetType,
		PlatformEntityFilesRef:  false,
		PlatformHiddenType:      false,
		EnforceReference:        false,
		AttributesConfiguration: "[]",
	}
}
