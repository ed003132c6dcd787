package entitysetting

import (
	"slices"

	"github.com/stixsettings/stixsettings/internal/schema"
)

// availableSettings lists the setting keys allowed per entity type. A concrete
// entry replaces the abstract one entirely, it is never merged with it.
var availableSettings = map[string][]string{ //nolint:gochecknoglobals
	schema.AbstractStixDomainObject: {
		KeyAttributesConfiguration, KeyPlatformEntityFilesRef, KeyPlatformHiddenType, KeyEnforceReference,
	},
	schema.AbstractStixCoreRelationship: {KeyAttributesConfiguration, KeyEnforceReference},
	schema.StixSightingRelationship:     {KeyAttributesConfiguration, KeyEnforceReference},
	// enforce_reference is not available on these containers
	schema.EntityTypeContainerNote:    {KeyAttributesConfiguration, KeyPlatformEntityFilesRef, KeyPlatformHiddenType},
	schema.EntityTypeContainerOpinion: {KeyAttributesConfiguration, KeyPlatformEntityFilesRef, KeyPlatformHiddenType},
	schema.EntityTypeContainerCase:    {KeyAttributesConfiguration, KeyPlatformEntityFilesRef, KeyPlatformHiddenType},
	schema.EntityTypeCaseTask:         {},
}

// AvailableSettings returns the ordered setting keys that may be configured for targetType.
// Domain objects without an entry of their own use the abstract domain object entry.
// Every other type must have an exact entry.
func AvailableSettings(targetType string) ([]string, error) {
	settings, ok := availableSettings[targetType]

	if !ok && schema.Classify(targetType) == schema.CategoryDomainObject {
		settings, ok = availableSettings[schema.AbstractStixDomainObject]
	}

	if !ok {
		return nil, &UnsupportedTypeError{TargetType: targetType}
	}

	return slices.Clone(settings), nil
}

// IsSettingAvailable reports whether key may be configured for targetType.
func IsSettingAvailable(targetType, key string) (bool, error) {
	settings, err := AvailableSettings(targetType)
	if err != nil {
		return false, err
	}

	return slices.Contains(settings, key), nil
}

// ConfigurableTypes returns every entity type with an entry of its own, sorted.
func ConfigurableTypes() []string {
	types := make([]string, 0, len(availableSettings))
	for t := range availableSettings {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}
