// Package validation checks admin supplied scale and attribute configuration
// payloads before they are stored. Every violation found is reported, the
// checks never stop at the first problem.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

// Rule names reported in violations.
const (
	RuleRequired    = "required"
	RuleMinLength   = "min_length:1"
	RuleHexColor    = "pattern:hexcolor"
	RuleInvalidJSON = "invalid_json"
	RuleTypeObject  = "type:object"
	RuleTypeArray   = "type:array"
	RuleTypeString  = "type:string"
	RuleTypeNumber  = "type:number"
	RuleTypeBoolean = "type:boolean"
	RuleDuplicate   = "duplicate_key"
)

// hexColorTag is the validator tag registered for hexColorPattern.
const hexColorTag = "hexcolor6"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type (
	// Violation is one structural problem of a payload.
	Violation struct {
		Path string `json:"path"`
		Rule string `json:"rule"`
	}

	// Result is the outcome of a validation.
	Result struct {
		Valid      bool        `json:"valid"`
		Violations []Violation `json:"violations"`
	}

	// Validator validates configuration payloads. It is safe for concurrent use.
	Validator struct {
		validate *validator.Validate
	}
)

// New creates a validator with the hex color rule registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation(hexColorTag, func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// std is the shared validator behind the package level functions.
var std = New() //nolint:gochecknoglobals

// ValidateScaleConfig validates a scale local configuration payload.
func ValidateScaleConfig(raw []byte) Result {
	return std.ScaleConfig(raw)
}

// ValidateAttributesConfiguration validates an attributes configuration list payload.
func ValidateAttributesConfiguration(raw []byte) Result {
	return std.AttributesConfiguration(raw)
}

// ScaleConfig validates a scale local configuration payload.
func (v *Validator) ScaleConfig(raw []byte) Result {
	c := v.newCollector()

	if !gjson.ValidBytes(raw) {
		c.add("", RuleInvalidJSON)
		return c.result()
	}

	c.scaleConfig("", gjson.ParseBytes(raw))

	return c.result()
}

// AttributesConfiguration validates an attributes configuration list payload.
func (v *Validator) AttributesConfiguration(raw []byte) Result {
	c := v.newCollector()

	if !gjson.ValidBytes(raw) {
		c.add("", RuleInvalidJSON)
		return c.result()
	}

	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		c.add("", RuleTypeArray)
		return c.result()
	}

	for i, item := range root.Array() {
		c.attributeConfiguration(indexPath("", i), item)
	}

	return c.result()
}

// collector accumulates the violations of one payload.
type collector struct {
	validate   *validator.Validate
	violations []Violation
}

func (v *Validator) newCollector() *collector {
	return &collector{validate: v.validate}
}

func (c *collector) add(path, rule string) {
	c.violations = append(c.violations, Violation{Path: path, Rule: rule})
}

func (c *collector) result() Result {
	if c.violations == nil {
		return Result{Valid: true, Violations: []Violation{}}
	}

	return Result{Valid: false, Violations: c.violations}
}

// checkVar runs a validator tag against a leaf value and records rule on failure.
func (c *collector) checkVar(path string, value any, tag, rule string) {
	var validationErrors validator.ValidationErrors

	if err := c.validate.Var(value, tag); err != nil {
		if errors.As(err, &validationErrors) {
			c.add(path, rule)
			return
		}

		c.add(path, tag)
	}
}

// uniqueKeys reports every key repeated in object r. gjson reads the first
// occurrence of a key while encoding/json keeps the last one.
func (c *collector) uniqueKeys(path string, r gjson.Result) {
	seen := map[string]bool{}

	r.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if seen[name] {
			c.add(joinPath(path, name), RuleDuplicate)
		}

		seen[name] = true

		return true
	})
}

func (c *collector) attributeConfiguration(path string, r gjson.Result) {
	if !r.IsObject() {
		c.add(path, RuleTypeObject)
		return
	}

	c.uniqueKeys(path, r)

	c.nonEmptyString(joinPath(path, "name"), r.Get("name"))

	if mandatory := r.Get("mandatory"); mandatory.Exists() && !isBool(mandatory) {
		c.add(joinPath(path, "mandatory"), RuleTypeBoolean)
	}

	if defaults := r.Get("default_values"); defaults.Exists() && defaults.Type != gjson.Null {
		defaultsPath := joinPath(path, "default_values")

		if !defaults.IsArray() {
			c.add(defaultsPath, RuleTypeArray)
		} else {
			for i, value := range defaults.Array() {
				if value.Type != gjson.String {
					c.add(indexPath(defaultsPath, i), RuleTypeString)
				}
			}
		}
	}

	if scale := r.Get("scale"); scale.Exists() && scale.Type != gjson.Null {
		scalePath := joinPath(path, "scale")

		if !scale.IsObject() {
			c.add(scalePath, RuleTypeObject)
			return
		}

		c.uniqueKeys(scalePath, scale)

		localConfig := scale.Get("local_config")
		if !localConfig.Exists() {
			c.add(joinPath(scalePath, "local_config"), RuleRequired)
			return
		}

		c.scaleConfig(joinPath(scalePath, "local_config"), localConfig)
	}
}

func (c *collector) scaleConfig(path string, r gjson.Result) {
	if !r.IsObject() {
		c.add(path, RuleTypeObject)
		return
	}

	c.uniqueKeys(path, r)

	if betterSide := r.Get("better_side"); betterSide.Exists() && betterSide.Type != gjson.String {
		c.add(joinPath(path, "better_side"), RuleTypeString)
	}

	for _, key := range []string{"min", "max"} {
		tick := r.Get(key)
		if !tick.Exists() {
			c.add(joinPath(path, key), RuleRequired)
			continue
		}

		c.tick(joinPath(path, key), tick)
	}

	if ticks := r.Get("ticks"); ticks.Exists() {
		ticksPath := joinPath(path, "ticks")

		if !ticks.IsArray() {
			c.add(ticksPath, RuleTypeArray)
			return
		}

		for i, tick := range ticks.Array() {
			c.tick(indexPath(ticksPath, i), tick)
		}
	}
}

func (c *collector) tick(path string, r gjson.Result) {
	if !r.IsObject() {
		c.add(path, RuleTypeObject)
		return
	}

	c.uniqueKeys(path, r)

	value := r.Get("value")

	switch {
	case !value.Exists():
		c.add(joinPath(path, "value"), RuleRequired)
	case value.Type != gjson.Number || !isFloat64(value.Raw):
		c.add(joinPath(path, "value"), RuleTypeNumber)
	}

	color := r.Get("color")

	switch {
	case !color.Exists():
		c.add(joinPath(path, "color"), RuleRequired)
	case color.Type != gjson.String:
		c.add(joinPath(path, "color"), RuleTypeString)
	default:
		c.checkVar(joinPath(path, "color"), color.String(), hexColorTag, RuleHexColor)
	}

	c.nonEmptyString(joinPath(path, "label"), r.Get("label"))
}

func (c *collector) nonEmptyString(path string, r gjson.Result) {
	switch {
	case !r.Exists():
		c.add(path, RuleRequired)
	case r.Type != gjson.String:
		c.add(path, RuleTypeString)
	default:
		c.checkVar(path, r.String(), "min=1", RuleMinLength)
	}
}

// isFloat64 reports whether raw fits a float64, 1e400 does not.
func isFloat64(raw string) bool {
	_, err := strconv.ParseFloat(raw, 64)

	return err == nil
}

func isBool(r gjson.Result) bool {
	return r.Type == gjson.True || r.Type == gjson.False
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}

	return base + "." + key
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
