package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/stixsettings/stixsettings/internal/db/models"
)

// ValidateEntitySetting validates a settings row before it is written.
func ValidateEntitySetting(setting *models.EntitySetting) Result {
	return std.EntitySetting(setting)
}

// EntitySetting validates the struct tags of a settings row and, when present,
// its attributes configuration payload. Violations of the payload are reported
// under the attributes_configuration path.
func (v *Validator) EntitySetting(setting *models.EntitySetting) Result {
	c := v.newCollector()

	if setting == nil {
		c.add("", RuleRequired)
		return c.result()
	}

	if err := v.validate.Struct(setting); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			c.add("", err.Error())
			return c.result()
		}

		for _, ve := range validationErrors {
			rule := ve.Tag()
			if ve.Param() != "" {
				rule += ":" + ve.Param()
			}

			c.add(ve.Field(), rule)
		}
	}

	if setting.AttributesConfiguration != "" {
		payload := v.AttributesConfiguration([]byte(setting.AttributesConfiguration))
		for _, violation := range payload.Violations {
			c.add(prefixPath("attributes_configuration", violation.Path), violation.Rule)
		}
	}

	return c.result()
}

func prefixPath(prefix, path string) string {
	switch {
	case path == "":
		return prefix
	case path[0] == '[':
		return prefix + path
	default:
		return prefix + "." + path
	}
}
