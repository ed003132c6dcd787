package web_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/auth"
	"github.com/stixsettings/stixsettings/internal/cache"
	"github.com/stixsettings/stixsettings/internal/config"
	"github.com/stixsettings/stixsettings/internal/db/models"
	"github.com/stixsettings/stixsettings/internal/entitysetting"
	"github.com/stixsettings/stixsettings/internal/web"
	"github.com/stixsettings/stixsettings/internal/web/handler"
)

const (
	adminToken  = "Bearer admin-token"
	readerToken = "Bearer reader-token"
)

func newTestService(t *testing.T) *web.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.EntitySetting{}))

	store, err := cache.New(db, cache.Config{TTL: time.Minute})
	require.NoError(t, err)

	go store.Start()
	t.Cleanup(store.Stop)

	resolver, err := entitysetting.NewResolver(store)
	require.NoError(t, err)

	cfg := &config.Config{Title: "test"}

	service, err := web.New(handler.Deps{
		Cfg:      cfg,
		DB:       db,
		Cache:    store,
		Resolver: resolver,
		Authenticator: auth.NewAuthenticator(auth.Config{Tokens: []auth.Token{
			{Name: "admin", Token: "admin-token", Capabilities: []string{auth.CapSettingsCustomization, auth.CapKnowledge}},
			{Name: "reader", Token: "reader-token", Capabilities: []string{auth.CapKnowledge}},
		}}),
	})
	require.NoError(t, err)

	return service
}

func do(t *testing.T, app *fiber.App, method, target, token, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(out)
}

func TestNewNilConfig(t *testing.T) {
	_, err := web.New(handler.Deps{})
	require.ErrorIs(t, err, web.ErrNilConfig)
}

func TestPublicRoutes(t *testing.T) {
	app := newTestService(t).App

	status, body := do(t, app, fiber.MethodGet, web.CheckAlivePath, "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body)

	status, body = do(t, app, fiber.MethodGet, web.MetricsPath, "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "go_goroutines")
}

func TestAuthorization(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		target string
		token  string
		body   string
		want   int
	}{
		{name: "read without token", method: fiber.MethodGet, target: "/api/entity-settings/Report", want: fiber.StatusUnauthorized},
		{name: "read with unknown token", method: fiber.MethodGet, target: "/api/entity-settings/Report", token: "Bearer nope", want: fiber.StatusUnauthorized},
		{name: "read as reader", method: fiber.MethodGet, target: "/api/entity-settings/Report", token: readerToken, want: fiber.StatusOK},
		{name: "write as reader", method: fiber.MethodPut, target: "/api/entity-settings/Report", token: readerToken, body: `{}`, want: fiber.StatusForbidden},
		{name: "write as admin", method: fiber.MethodPut, target: "/api/entity-settings/Report", token: adminToken, body: `{}`, want: fiber.StatusOK},
		{name: "rules without token", method: fiber.MethodGet, target: "/api/rules", want: fiber.StatusUnauthorized},
		{name: "validation without token", method: fiber.MethodPost, target: "/api/validation/scale", body: `{}`, want: fiber.StatusUnauthorized},
	}

	app := newTestService(t).App

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, tc.method, tc.target, tc.token, tc.body)
			assert.Equal(t, tc.want, status, body)
		})
	}
}

func TestGetEntitySettings(t *testing.T) {
	app := newTestService(t).App

	status, body := do(t, app, fiber.MethodGet, "/api/entity-settings/Report", readerToken, "")
	require.Equal(t, fiber.StatusOK, status, body)

	assert.Equal(t, "Report", gjson.Get(body, "target_type").String())
	assert.False(t, gjson.Get(body, "found").Bool())
	assert.Equal(t, `["attributes_configuration","platform_entity_files_ref","platform_hidden_type","enforce_reference"]`,
		gjson.Get(body, "available_settings").Raw)

	status, body = do(t, app, fiber.MethodGet, "/api/entity-settings/Note", readerToken, "")
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, `["attributes_configuration","platform_entity_files_ref","platform_hidden_type"]`,
		gjson.Get(body, "available_settings").Raw)

	status, body = do(t, app, fiber.MethodGet, "/api/entity-settings/Unknown-Type", readerToken, "")
	require.Equal(t, fiber.StatusBadRequest, status, body)
	assert.Equal(t, "Unknown-Type", gjson.Get(body, "context.target_type").String())
}

func TestPutEntitySettings(t *testing.T) {
	app := newTestService(t).App

	payload := `{
		"enforce_reference": true,
		"attributes_configuration": [
			{"name": "description", "mandatory": true},
			{"name": "labels", "default_values": ["a", "b"]},
			{"name": "confidence", "scale": {"local_config": {
				"better_side": "min",
				"min": {"value": 0, "color": "#f44336", "label": "Low"},
				"max": {"value": 100, "color": "#6e44ad", "label": "Out of Range"}
			}}}
		]
	}`

	status, body := do(t, app, fiber.MethodPut, "/api/entity-settings/Report", adminToken, payload)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.True(t, gjson.Get(body, "found").Bool())
	assert.True(t, gjson.Get(body, "setting.enforce_reference").Bool())
	assert.Equal(t, int64(3), gjson.Get(body, "attributes_configuration.#").Int())

	// the cache was invalidated, a read sees the write
	status, body = do(t, app, fiber.MethodGet, "/api/entity-settings/Report", readerToken, "")
	require.Equal(t, fiber.StatusOK, status, body)
	assert.True(t, gjson.Get(body, "setting.enforce_reference").Bool())
	assert.True(t, gjson.Get(body, "attributes_configuration.0.mandatory").Bool())

	// keys missing from a later patch keep their stored value
	status, body = do(t, app, fiber.MethodPut, "/api/entity-settings/Report", adminToken, `{"platform_hidden_type": true}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.True(t, gjson.Get(body, "setting.enforce_reference").Bool())
	assert.True(t, gjson.Get(body, "setting.platform_hidden_type").Bool())

	status, body = do(t, app, fiber.MethodGet, "/api/entity-settings", readerToken, "")
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "Report", gjson.Get(body, "0.target_type").String())
}

func TestPutEntitySettingsRejectsInvalidPayload(t *testing.T) {
	testCases := []struct {
		name       string
		targetType string
		body       string
		wantStatus int
		want       map[string]string
	}{
		{
			name:       "not json",
			targetType: "Report",
			body:       `{`,
			wantStatus: fiber.StatusUnprocessableEntity,
			want:       map[string]string{"": "invalid_json"},
		},
		{
			name:       "unknown key",
			targetType: "Report",
			body:       `{"color": "red"}`,
			wantStatus: fiber.StatusUnprocessableEntity,
			want:       map[string]string{"color": "unknown_setting"},
		},
		{
			name:       "key not available for the type",
			targetType: "Note",
			body:       `{"enforce_reference": true}`,
			wantStatus: fiber.StatusUnprocessableEntity,
			want:       map[string]string{"enforce_reference": "not_available"},
		},
		{
			name:       "flag is not a boolean",
			targetType: "Report",
			body:       `{"platform_hidden_type": "yes"}`,
			wantStatus: fiber.StatusUnprocessableEntity,
			want:       map[string]string{"platform_hidden_type": "type:boolean"},
		},
		{
			name:       "every attribute violation is reported",
			targetType: "Report",
			body: `{"attributes_configuration": [
				{"name": ""},
				{"name": "x", "scale": {"local_config": {"min": {"value": 0, "color": "red", "label": "Low"}}}}
			]}`,
			wantStatus: fiber.StatusUnprocessableEntity,
			want: map[string]string{
				"attributes_configuration[0].name":                         "min_length:1",
				"attributes_configuration[1].scale.local_config.min.color": "pattern:hexcolor",
				"attributes_configuration[1].scale.local_config.max":       "required",
			},
		},
		{
			name:       "repeated attribute key",
			targetType: "Report",
			body:       `{"attributes_configuration": [{"name": "a", "name": ""}]}`,
			wantStatus: fiber.StatusUnprocessableEntity,
			want:       map[string]string{"attributes_configuration[0].name": "duplicate_key"},
		},
		{
			name:       "repeated setting",
			targetType: "Report",
			body:       `{"enforce_reference": true, "enforce_reference": false}`,
			wantStatus: fiber.StatusUnprocessableEntity,
			want:       map[string]string{"enforce_reference": "duplicate_key"},
		},
		{
			name:       "unsupported type",
			targetType: "IPv4-Addr",
			body:       `{"enforce_reference": true}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	app := newTestService(t).App

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, fiber.MethodPut, "/api/entity-settings/"+tc.targetType, adminToken, tc.body)
			require.Equal(t, tc.wantStatus, status, body)

			if tc.want == nil {
				return
			}

			assert.False(t, gjson.Get(body, "valid").Bool())

			got := map[string]string{}
			for _, v := range gjson.Get(body, "violations").Array() {
				got[v.Get("path").String()] = v.Get("rule").String()
			}

			assert.Equal(t, tc.want, got)
		})
	}

	// nothing was written
	status, body := do(t, app, fiber.MethodGet, "/api/entity-settings", readerToken, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "[]", body)
}

func TestDefaults(t *testing.T) {
	app := newTestService(t).App

	status, body := do(t, app, fiber.MethodPut, "/api/entity-settings/Report", adminToken,
		`{"attributes_configuration": [{"name": "labels", "default_values": ["a", "b"]}, {"name": "description"}]}`)
	require.Equal(t, fiber.StatusOK, status, body)

	testCases := []struct {
		name        string
		target      string
		wantStatus  int
		wantPresent bool
		wantValues  string
	}{
		{name: "single value", target: "/api/entity-settings/Report/defaults/labels", wantStatus: fiber.StatusOK, wantPresent: true, wantValues: `["a"]`},
		{name: "multiple values", target: "/api/entity-settings/Report/defaults/labels?multiple=true", wantStatus: fiber.StatusOK, wantPresent: true, wantValues: `["a","b"]`},
		{name: "attribute without defaults", target: "/api/entity-settings/Report/defaults/description", wantStatus: fiber.StatusOK, wantValues: `[]`},
		{name: "unconfigured attribute", target: "/api/entity-settings/Report/defaults/name", wantStatus: fiber.StatusOK, wantValues: `[]`},
		{name: "type without row", target: "/api/entity-settings/Malware/defaults/labels", wantStatus: fiber.StatusOK, wantValues: `[]`},
		{name: "invalid multiple", target: "/api/entity-settings/Report/defaults/labels?multiple=maybe", wantStatus: fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, fiber.MethodGet, tc.target, readerToken, "")
			require.Equal(t, tc.wantStatus, status, body)

			if tc.wantStatus != fiber.StatusOK {
				return
			}

			assert.Equal(t, tc.wantPresent, gjson.Get(body, "present").Bool())
			assert.Equal(t, tc.wantValues, gjson.Get(body, "values").Raw)
		})
	}
}

func TestValidationRoutes(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantValid  bool
	}{
		{name: "default scale", target: "/api/validation/scale", body: gjson.Get(entitysetting.DefaultScaleJSON(), "local_config").Raw, wantStatus: fiber.StatusOK, wantValid: true},
		{name: "scale without max", target: "/api/validation/scale", body: `{"min": {"value": 0, "color": "#000000", "label": "Low"}}`, wantStatus: fiber.StatusUnprocessableEntity},
		{name: "attributes", target: "/api/validation/attributes", body: `[{"name": "description"}]`, wantStatus: fiber.StatusOK, wantValid: true},
		{name: "attributes not a list", target: "/api/validation/attributes", body: `{"name": "description"}`, wantStatus: fiber.StatusUnprocessableEntity},
	}

	app := newTestService(t).App

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, fiber.MethodPost, tc.target, readerToken, tc.body)
			require.Equal(t, tc.wantStatus, status, body)
			assert.Equal(t, tc.wantValid, gjson.Get(body, "valid").Bool())
		})
	}
}

func TestRulesRoutes(t *testing.T) {
	app := newTestService(t).App

	status, body := do(t, app, fiber.MethodGet, "/api/rules", readerToken, "")
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "related_related", gjson.Get(body, "0.id").String())

	status, body = do(t, app, fiber.MethodGet, "/api/rules/related_related", readerToken, "")
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, `["related-to"]`, gjson.Get(body, "scan.types").Raw)

	status, _ = do(t, app, fiber.MethodGet, "/api/rules/unknown", readerToken, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}
