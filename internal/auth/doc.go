// Package auth provides the actor identities used to read and write entity settings.
//
// Requests to the web API are authenticated with a bearer token configured in
// the [Auth] section. Every token maps to a User carrying a set of capabilities.
// Internal resolution code uses SystemUser, which bypasses capability checks.
//
// Example usage:
//
//	authenticator := auth.NewAuthenticator(cfg.Auth)
//
//	app.Put("/api/entity-settings/:type",
//	    auth.RequireCapability(authenticator, auth.CapSettingsCustomization),
//	    handler,
//	)
package auth
