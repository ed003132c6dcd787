package entitysetting

// Setting keys an entity type may allow.
const (
	KeyAttributesConfiguration = "attributes_configuration"
	KeyPlatformEntityFilesRef  = "platform_entity_files_ref"
	KeyPlatformHiddenType      = "platform_hidden_type"
	KeyEnforceReference        = "enforce_reference"
)

// EntityTypeEntitySetting is the cache tag under which entity setting rows are stored.
const EntityTypeEntitySetting = "EntitySetting"

type (
	// AttributeConfiguration overrides the behavior of one attribute of an entity type.
	AttributeConfiguration struct {
		Name          string   `json:"name"`
		Mandatory     *bool    `json:"mandatory,omitempty"`
		DefaultValues []string `json:"default_values,omitzero"`
		Scale         *Scale   `json:"scale,omitempty"`
	}

	// Scale wraps the scale configuration of a numeric attribute.
	Scale struct {
		LocalConfig ScaleConfig `json:"local_config"`
	}

	// ScaleConfig maps a numeric range to colors and labels for gauge rendering.
	ScaleConfig struct {
		BetterSide string      `json:"better_side,omitempty"`
		Min        ScaleTick   `json:"min"`
		Max        ScaleTick   `json:"max"`
		Ticks      []ScaleTick `json:"ticks,omitzero"`
	}

	// ScaleTick is one colored and labelled point of a scale.
	ScaleTick struct {
		Value float64 `json:"value"`
		Color string  `json:"color"`
		Label string  `json:"label"`
	}
)

// IsMandatory reports whether the attribute is configured as mandatory.
func (a AttributeConfiguration) IsMandatory() bool {
	return a.Mandatory != nil && *a.Mandatory
}
