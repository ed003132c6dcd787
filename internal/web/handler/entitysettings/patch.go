package entitysettings

import (
	"slices"

	"github.com/tidwall/gjson"

	"github.com/stixsettings/stixsettings/internal/db/models"
	"github.com/stixsettings/stixsettings/internal/entitysetting"
	"github.com/stixsettings/stixsettings/internal/entitysetting/validation"
)

// Rules of the write path on top of the structural ones.
const (
	RuleUnknownSetting = "unknown_setting"
	RuleNotAvailable   = "not_available"
)

// knownSettings are the keys a patch body may carry.
var knownSettings = []string{ //nolint:gochecknoglobals
	entitysetting.KeyAttributesConfiguration,
	entitysetting.KeyPlatformEntityFilesRef,
	entitysetting.KeyPlatformHiddenType,
	entitysetting.KeyEnforceReference,
}

// applyPatch applies the JSON object body on row. Every key must be a
// setting available for the row's type. Keys missing from body keep their
// stored value. The returned row is only meaningful when the result is valid.
func applyPatch(row models.EntitySetting, available []string, body []byte) (models.EntitySetting, validation.Result) {
	if !gjson.ValidBytes(body) {
		return row, violations([]validation.Violation{{Rule: validation.RuleInvalidJSON}})
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return row, violations([]validation.Violation{{Rule: validation.RuleTypeObject}})
	}

	var list []validation.Violation

	seen := map[string]bool{}

	parsed.ForEach(func(key, value gjson.Result) bool {
		name := key.String()

		switch {
		case seen[name]:
			list = append(list, validation.Violation{Path: name, Rule: validation.RuleDuplicate})
		case !slices.Contains(knownSettings, name):
			list = append(list, validation.Violation{Path: name, Rule: RuleUnknownSetting})
		case !slices.Contains(available, name):
			list = append(list, validation.Violation{Path: name, Rule: RuleNotAvailable})
		case name == entitysetting.KeyAttributesConfiguration:
			row.AttributesConfiguration = value.Raw
		case value.Type != gjson.True && value.Type != gjson.False:
			list = append(list, validation.Violation{Path: name, Rule: validation.RuleTypeBoolean})
		default:
			setFlag(&row, name, value.Bool())
		}

		seen[name] = true

		return true
	})

	if len(list) > 0 {
		return row, violations(list)
	}

	if result := validation.ValidateEntitySetting(&row); !result.Valid {
		return row, result
	}

	// store the canonical encoding, the payload is known to decode
	if row.AttributesConfiguration != "" {
		decoded, err := entitysetting.DecodeAttributesConfiguration(&row)
		if err != nil {
			return row, violations([]validation.Violation{{
				Path: entitysetting.KeyAttributesConfiguration,
				Rule: validation.RuleInvalidJSON,
			}})
		}

		encoded, err := entitysetting.EncodeAttributesConfiguration(decoded)
		if err != nil {
			return row, violations([]validation.Violation{{
				Path: entitysetting.KeyAttributesConfiguration,
				Rule: validation.RuleInvalidJSON,
			}})
		}

		row.AttributesConfiguration = encoded

		if result := validation.ValidateEntitySetting(&row); !result.Valid {
			return row, result
		}
	}

	return row, violations(nil)
}

func setFlag(row *models.EntitySetting, key string, value bool) {
	switch key {
	case entitysetting.KeyPlatformEntityFilesRef:
		row.PlatformEntityFilesRef = value
	case entitysetting.KeyPlatformHiddenType:
		row.PlatformHiddenType = value
	case entitysetting.KeyEnforceReference:
		row.EnforceReference = value
	}
}
