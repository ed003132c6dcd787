// Package validation exposes the structural payload validators so clients can
// check a payload before writing it.
package validation

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stixsettings/stixsettings/internal/auth"
	"github.com/stixsettings/stixsettings/internal/entitysetting/validation"
	"github.com/stixsettings/stixsettings/internal/web/handler"
)

// Path is the route group of the validation API.
const Path = handler.APIPath + "/validation"

// Service is the validation handler service.
type Service struct {
	validator *validation.Validator
}

// Init registers the validation routes.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.Authenticator == nil {
		return handler.ErrNilDeps
	}

	s.validator = validation.New()

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.RequireCapability(deps.Authenticator, auth.CapKnowledge))
		router.Post("/scale", s.Scale)
		router.Post("/attributes", s.Attributes)
	})

	return nil
}

// Scale validates a scale configuration body. Invalid payloads are answered with 422.
func (s *Service) Scale(c *fiber.Ctx) error {
	return send(c, s.validator.ScaleConfig(c.Body()))
}

// Attributes validates an attributes configuration body. Invalid payloads are answered with 422.
func (s *Service) Attributes(c *fiber.Ctx) error {
	return send(c, s.validator.AttributesConfiguration(c.Body()))
}

func send(c *fiber.Ctx, result validation.Result) error {
	if !result.Valid {
		c.Status(fiber.StatusUnprocessableEntity)
	}

	return c.JSON(result)
}
