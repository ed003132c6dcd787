package entitysetting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	testCases := []struct {
		name           string
		cfg            AttributeConfiguration
		multiple       bool
		expectedValues []string
		expectedOK     bool
	}{
		{
			name:           "single keeps first value only",
			cfg:            AttributeConfiguration{Name: "x", DefaultValues: []string{"a", "b"}},
			multiple:       false,
			expectedValues: []string{"a"},
			expectedOK:     true,
		},
		{
			name:           "multiple keeps whole list",
			cfg:            AttributeConfiguration{Name: "x", DefaultValues: []string{"a", "b"}},
			multiple:       true,
			expectedValues: []string{"a", "b"},
			expectedOK:     true,
		},
		{name: "absent single", cfg: AttributeConfiguration{Name: "x"}, multiple: false},
		{name: "absent multiple", cfg: AttributeConfiguration{Name: "x"}, multiple: true},
		{
			name:           "empty list multiple",
			cfg:            AttributeConfiguration{Name: "x", DefaultValues: []string{}},
			multiple:       true,
			expectedValues: []string{},
			expectedOK:     true,
		},
		{name: "empty list single", cfg: AttributeConfiguration{Name: "x", DefaultValues: []string{}}, multiple: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, ok := DefaultValues(tc.cfg, tc.multiple)

			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedValues, values)
		})
	}
}

func TestDefaultValues_DoesNotAliasConfiguration(t *testing.T) {
	cfg := AttributeConfiguration{Name: "x", DefaultValues: []string{"a", "b"}}

	values, ok := DefaultValues(cfg, true)
	require.True(t, ok)
	values[0] = "changed"
	assert.Equal(t, "a", cfg.DefaultValues[0])

	single, ok := DefaultValues(cfg, false)
	require.True(t, ok)
	single = append(single, "appended")
	assert.Len(t, single, 2)
	assert.Equal(t, "b", cfg.DefaultValues[1])
}

func TestDefaultValue(t *testing.T) {
	value, ok := DefaultValue(AttributeConfiguration{DefaultValues: []string{"a", "b"}})
	require.True(t, ok)
	assert.Equal(t, "a", value)

	_, ok = DefaultValue(AttributeConfiguration{})
	assert.False(t, ok)
}

func TestNewDefaultEntitySetting(t *testing.T) {
	s := NewDefaultEntitySetting("Malware")

	assert.Equal(t, "Malware", s.TargetType)
	assert.False(t, s.PlatformEntityFilesRef)
	assert.False(t, s.PlatformHiddenType)
	assert.False(t, s.EnforceReference)
	assert.Equal(t, "[]", s.AttributesConfiguration)
}

func TestDefaultScaleJSON(t *testing.T) {
	assert.JSONEq(t, `{"local_config":{"better_side":"min",
		"min":{"value":0,"color":"#f44336","label":"Low"},
		"max":{"value":100,"color":"#6e44ad","label":"Out of Range"},
		"ticks":[{"value":30,"color":"#ff9800","label":"Med"},{"value":70,"color":"#4caf50","label":"High"}]}}`,
		DefaultScaleJSON())
}
