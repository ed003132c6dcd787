// Package handler holds what every web handler shares: the dependencies a
// handler is initialized with and the JSON error responses.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/auth"
	"github.com/stixsettings/stixsettings/internal/config"
	"github.com/stixsettings/stixsettings/internal/entitysetting"
)

// ErrNilDeps is returned by Init when a required dependency is missing.
var ErrNilDeps = errors.New(ErrNilACDFatalLogMsg)

// Cache is the entity cache as seen by the handlers.
type Cache interface {
	entitysetting.EntityCache
	Invalidate(tag string)
}

// Deps are the dependencies a handler is initialized with.
type Deps struct {
	Cfg           *config.Config
	DB            *gorm.DB
	Cache         Cache
	Resolver      *entitysetting.Resolver
	Authenticator *auth.Authenticator
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps Deps) error
}
