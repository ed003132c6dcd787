package auth

// Capability constants define what an actor is allowed to do.
const (
	// CapBypass grants every capability.
	CapBypass = "BYPASS"
	// CapKnowledge allows reading entity settings and their effective defaults.
	CapKnowledge = "KNOWLEDGE"
	// CapSettingsCustomization allows editing entity settings.
	CapSettingsCustomization = "SETTINGS_SETCUSTOMIZATION"
)
