package auth

import "slices"

// User is an actor reading or writing entity settings.
type User struct {
	ID           string
	Name         string
	Capabilities []string
}

// SystemUser is the internal actor used for cache reads. It bypasses every
// capability check regardless of who triggered the read.
var SystemUser = User{ //nolint:gochecknoglobals
	ID:           "6a4b11e1-90ca-4e42-ba42-db7bc7f7d505",
	Name:         "SYSTEM",
	Capabilities: []string{CapBypass},
}

// HasCapability reports whether the user holds capability, either directly or through CapBypass.
func (u User) HasCapability(capability string) bool {
	return slices.Contains(u.Capabilities, CapBypass) || slices.Contains(u.Capabilities, capability)
}

// IsSystem reports whether the user is the internal system actor.
func (u User) IsSystem() bool {
	return u.ID == SystemUser.ID
}
