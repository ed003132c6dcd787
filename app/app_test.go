package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/db/models"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()

	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "scale.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{
		"better_side": "min",
		"min": {"value": 0, "color": "#f44336", "label": "Low"},
		"max": {"value": 100, "color": "#6e44ad", "label": "High"}
	}`), 0o600))

	testCases := []struct {
		name      string
		stdin     string
		args      []string
		wantErr   error
		wantValid bool
	}{
		{name: "valid scale file", args: []string{"validate", "--scale", valid}, wantValid: true},
		{name: "attributes from stdin", stdin: `[{"name": "description"}]`, args: []string{"validate", "--attributes", "-"}, wantValid: true},
		{name: "invalid attributes", stdin: `[{"name": ""}]`, args: []string{"validate", "--attributes", "-"}, wantErr: ErrInvalidPayload},
		{name: "no target", args: []string{"validate"}, wantErr: ErrValidateTarget},
		{name: "both targets", args: []string{"validate", "--scale", valid, "--attributes", valid}, wantErr: ErrValidateTarget},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.stdin, tc.args...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantValid, gjson.Get(out, "valid").Bool())
		})
	}
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "", "config", "--config", "../etc/", "--json")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), gjson.Get(out, "Webserver.Port").Int())

	out, err = run(t, "", "config", "--config", "../etc/")
	require.NoError(t, err)
	assert.Contains(t, out, "[Webserver]")
}

func TestSettingsCmd(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "settings.db")

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EntitySetting{}))
	require.NoError(t, db.Create(&models.EntitySetting{
		TargetType:              "Report",
		EnforceReference:        true,
		AttributesConfiguration: `[{"name":"labels","default_values":["a","b"]}]`,
	}).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(`
[DB]
GormEngine = "sqlite"
Name = "`+filepath.ToSlash(dbFile)+`"

[Webserver]
Port = 8080
URL = "http://localhost:8080"
`), 0o600))

	testCases := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, out string)
	}{
		{
			name: "resolved row",
			args: []string{"settings", "Report"},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.True(t, gjson.Get(out, "found").Bool())
				assert.True(t, gjson.Get(out, "setting.enforce_reference").Bool())
			},
		},
		{
			name: "first default value",
			args: []string{"settings", "Report", "--defaults", "labels"},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.JSONEq(t, `["a"]`, out)
			},
		},
		{
			name: "every default value",
			args: []string{"settings", "Report", "--defaults", "labels", "--multiple"},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.JSONEq(t, `["a","b"]`, out)
			},
		},
		{
			name: "type without row",
			args: []string{"settings", "Malware"},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.False(t, gjson.Get(out, "found").Bool())
			},
		},
		{name: "unsupported type", args: []string{"settings", "IPv4-Addr"}, wantErr: true},
		{name: "missing type", args: []string{"settings"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, "", append(tc.args, "--config", dir)...)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			tc.check(t, out)
		})
	}
}
