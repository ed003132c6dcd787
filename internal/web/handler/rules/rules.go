// Package rules serves the static inference rule definitions.
package rules

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stixsettings/stixsettings/internal/auth"
	"github.com/stixsettings/stixsettings/internal/rules"
	"github.com/stixsettings/stixsettings/internal/web/handler"
)

// Path is the route group of the rules API.
const Path = handler.APIPath + "/rules"

// Service is the rules handler service.
type Service struct{}

// Init registers the rules routes.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.Authenticator == nil {
		return handler.ErrNilDeps
	}

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.RequireCapability(deps.Authenticator, auth.CapKnowledge))
		router.Get(handler.RouterRootPath, s.List)
		router.Get("/:id", s.Get)
	})

	return nil
}

// List returns every rule definition.
func (s *Service) List(c *fiber.Ctx) error {
	return c.JSON(rules.All())
}

// Get returns one rule definition.
func (s *Service) Get(c *fiber.Ctx) error {
	definition, err := rules.Get(c.Params("id"))
	if errors.Is(err, rules.ErrRuleNotFound) {
		return handler.SendError(c, fiber.NewError(fiber.StatusNotFound, err.Error()))
	}

	return c.JSON(definition)
}
