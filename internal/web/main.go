// Package web serves the entity settings JSON API.
package web

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	fiberlogger "github.com/stixsettings/stixsettings/internal/logger/adapter/fiber"
	"github.com/stixsettings/stixsettings/internal/web/handler"
	"github.com/stixsettings/stixsettings/internal/web/handler/entitysettings"
	"github.com/stixsettings/stixsettings/internal/web/handler/rules"
	"github.com/stixsettings/stixsettings/internal/web/handler/validation"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
)

// ErrNilConfig is returned by New without a config.
var ErrNilConfig = errors.New("config cannot be nil")

// Service represents the web service.
type Service struct {
	App          *fiber.App
	deps         handler.Deps
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address. It blocks until the server stops.
func (s *Service) Start(addr string) error {
	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// Shutdown lets checkalive fail for Webserver.ShutDownTime seconds, then stops the server.
func (s *Service) Shutdown() {
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.deps.Cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.deps.Cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 while the service accepts traffic and 503 while shutting down.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// New creates a new web service and registers every handler.
func New(deps handler.Deps) (*Service, error) {
	if deps.Cfg == nil {
		return nil, ErrNilConfig
	}

	cfg := deps.Cfg

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192, //nolint:mnd
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      cfg.Webserver.BodyLimit,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	accessLog, err := fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	})
	if err != nil {
		return nil, err
	}

	app.Use(accessLog)

	service := &Service{
		App:          app,
		deps:         deps,
		fastShutDown: cfg.DevMode,
	}

	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	for _, h := range []handler.Service{
		&entitysettings.Service{},
		&validation.Service{},
		&rules.Service{},
	} {
		if err = h.Init(app, deps); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return service, nil
}
