// Package entitysettings serves the entity settings of a type: the resolved
// view, the attribute defaults and the admin write path.
package entitysettings

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/auth"
	controller "github.com/stixsettings/stixsettings/internal/db/controller/entitysetting"
	"github.com/stixsettings/stixsettings/internal/db/models"
	"github.com/stixsettings/stixsettings/internal/entitysetting"
	"github.com/stixsettings/stixsettings/internal/entitysetting/validation"
	"github.com/stixsettings/stixsettings/internal/web/handler"
)

const (
	// Path is the route group of the entity settings API.
	Path = handler.APIPath + "/entity-settings"

	paramType      = "type"
	paramAttribute = "attribute"
	queryMultiple  = "multiple"
)

// Service is the entity settings handler service.
type Service struct {
	db       *gorm.DB
	cache    handler.Cache
	resolver *entitysetting.Resolver
}

// DefaultsResponse is the body of the defaults route.
type DefaultsResponse struct {
	TargetType string   `json:"target_type"`
	Attribute  string   `json:"attribute"`
	Multiple   bool     `json:"multiple"`
	Present    bool     `json:"present"`
	Values     []string `json:"values"`
}

// Init registers the entity settings routes.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.DB == nil || deps.Cache == nil || deps.Resolver == nil || deps.Authenticator == nil {
		return handler.ErrNilDeps
	}

	s.db = deps.DB
	s.cache = deps.Cache
	s.resolver = deps.Resolver

	read := auth.RequireCapability(deps.Authenticator, auth.CapKnowledge)
	write := auth.RequireCapability(deps.Authenticator, auth.CapSettingsCustomization)

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, read, s.List)
		router.Get("/:"+paramType, read, s.Get)
		router.Get("/:"+paramType+"/defaults/:"+paramAttribute, read, s.Defaults)
		router.Put("/:"+paramType, write, s.Put)
	})

	return nil
}

// List returns every stored row as seen by the calling actor.
func (s *Service) List(c *fiber.Ctx) error {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		return handler.SendError(c, fiber.ErrUnauthorized)
	}

	rows, err := s.cache.Fetch(c.UserContext(), actor, entitysetting.EntityTypeEntitySetting)
	if err != nil {
		return handler.SendError(c, err)
	}

	if rows == nil {
		rows = []models.EntitySetting{}
	}

	return c.JSON(rows)
}

// Get returns the resolved settings of one entity type.
func (s *Service) Get(c *fiber.Ctx) error {
	effective, err := s.resolver.Effective(c.UserContext(), c.Params(paramType))
	if err != nil {
		return handler.SendError(c, err)
	}

	return c.JSON(effective)
}

// Defaults returns the default values of one attribute.
// Without ?multiple=true only the first configured value is returned.
func (s *Service) Defaults(c *fiber.Ctx) error {
	multiple := false

	if raw := c.Query(queryMultiple); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return handler.SendError(c, fiber.NewError(fiber.StatusBadRequest, "multiple must be a boolean"))
		}

		multiple = parsed
	}

	targetType := c.Params(paramType)
	attribute := c.Params(paramAttribute)

	effective, err := s.resolver.Effective(c.UserContext(), targetType)
	if err != nil {
		return handler.SendError(c, err)
	}

	out := DefaultsResponse{
		TargetType: targetType,
		Attribute:  attribute,
		Multiple:   multiple,
		Values:     []string{},
	}

	if cfg, ok := entitysetting.FindAttributeConfiguration(effective.Attributes, attribute); ok {
		if values, present := entitysetting.DefaultValues(cfg, multiple); present {
			out.Present = true
			out.Values = values
		}
	}

	return c.JSON(out)
}

// Put validates and stores the settings of one entity type, then drops the
// cached rows so the next read sees the change.
func (s *Service) Put(c *fiber.Ctx) error {
	targetType := c.Params(paramType)

	available, err := entitysetting.AvailableSettings(targetType)
	if err != nil {
		return handler.SendError(c, err)
	}

	current, err := controller.Get(s.db, targetType)

	switch {
	case errors.Is(err, controller.ErrEntitySettingNotFound):
		fresh := entitysetting.NewDefaultEntitySetting(targetType)
		current = &fresh
	case err != nil:
		return handler.SendError(c, err)
	}

	row, result := applyPatch(*current, available, c.Body())
	if !result.Valid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}

	if _, err = controller.Set(s.db, &row); err != nil {
		return handler.SendError(c, err)
	}

	s.cache.Invalidate(entitysetting.EntityTypeEntitySetting)

	actor, _ := auth.ActorFromContext(c) //nolint:errcheck // the write middleware always sets the actor
	log.Info().
		Str("actor", actor.Name).
		Str("target_type", targetType).
		Msg("entity setting updated")

	effective, err := s.resolver.Effective(c.UserContext(), targetType)
	if err != nil {
		return handler.SendError(c, err)
	}

	return c.JSON(effective)
}

// violations turns validation failures into a Result.
func violations(list []validation.Violation) validation.Result {
	return validation.Result{Valid: len(list) == 0, Violations: list}
}
