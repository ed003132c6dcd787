package auth

import (
	"crypto/subtle"
	"strings"
)

// Token binds a static API token to an actor.
type Token struct {
	Name         string   // actor name shown in logs
	Token        string   // secret bearer token
	Capabilities []string // granted capabilities
}

// Config holds the authentication settings.
type Config struct {
	Tokens []Token
}

// Authenticator resolves bearer tokens to users.
type Authenticator struct {
	tokens []Token
}

// NewAuthenticator creates an authenticator for the configured tokens.
// Tokens with an empty secret are ignored.
func NewAuthenticator(cfg Config) *Authenticator {
	a := &Authenticator{}

	for _, t := range cfg.Tokens {
		if t.Token == "" {
			continue
		}

		a.tokens = append(a.tokens, t)
	}

	return a
}

// Authenticate returns the user owning the given Authorization header value.
func (a *Authenticator) Authenticate(authorization string) (User, error) {
	secret, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || secret == "" {
		return User{}, ErrMissingToken
	}

	for _, t := range a.tokens {
		if subtle.ConstantTimeCompare([]byte(t.Token), []byte(secret)) == 1 {
			return User{
				ID:           "token:" + t.Name,
				Name:         t.Name,
				Capabilities: t.Capabilities,
			}, nil
		}
	}

	return User{}, ErrUnknownToken
}
