package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// localsActorKey is the fiber locals key holding the authenticated User.
const localsActorKey = "actor"

// RequireCapability creates Fiber middleware that authenticates the request and
// requires the given capability.
func RequireCapability(authenticator *Authenticator, capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authenticator.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("request authentication failed")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		if !user.HasCapability(capability) {
			log.Warn().Str("actor", user.Name).Str("capability", capability).
				Msg("actor lacks required capability")

			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: missing capability " + capability,
			})
		}

		c.Locals(localsActorKey, user)

		return c.Next()
	}
}

// ActorFromContext returns the user stored by RequireCapability.
func ActorFromContext(c *fiber.Ctx) (User, error) {
	user, ok := c.Locals(localsActorKey).(User)
	if !ok {
		return User{}, ErrNoActor
	}

	return user, nil
}
