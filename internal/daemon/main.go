// Package daemon wires the database, the entity cache and the web service together.
package daemon

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/auth"
	"github.com/stixsettings/stixsettings/internal/cache"
	"github.com/stixsettings/stixsettings/internal/config"
	"github.com/stixsettings/stixsettings/internal/db/dsn"
	"github.com/stixsettings/stixsettings/internal/db/models"
	"github.com/stixsettings/stixsettings/internal/entitysetting"
	"github.com/stixsettings/stixsettings/internal/web"
	"github.com/stixsettings/stixsettings/internal/web/handler"
)

// ErrNilConfig is returned by New without a config.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	cache      *cache.Store
	webService *web.Service
}

// New opens and migrates the database, seeds the default rows and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	db, err := dsn.Open(cfg.DB, &gorm.Config{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = db.AutoMigrate(&models.EntitySetting{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	if err = seed(db); err != nil {
		return nil, errors.Wrap(err, "failed to seed entity settings")
	}

	store, err := cache.New(db, cache.Config{TTL: cfg.Cache.TTL, Capacity: cfg.Cache.Capacity})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	resolver, err := entitysetting.NewResolver(store)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	webService, err := web.New(handler.Deps{
		Cfg:           cfg,
		DB:            db,
		Cache:         store,
		Resolver:      resolver,
		Authenticator: auth.NewAuthenticator(cfg.Auth),
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		cache:      store,
		webService: webService,
	}, nil
}

// Resolver returns a resolver reading through the daemon's cache.
func (d *Daemon) Resolver() (*entitysetting.Resolver, error) {
	return entitysetting.NewResolver(d.cache) //nolint:wrapcheck
}

// Start serves until SIGINT or SIGTERM and shuts down gracefully.
func (d *Daemon) Start() error {
	go d.cache.Start()
	defer d.cache.Stop()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	errListen := make(chan error, 1)

	go func() {
		errListen <- d.webService.Start(addr)
	}()

	log.Info().Str("addr", addr).Msg("entity settings service started")

	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(irqSig)

	select {
	case err := <-errListen:
		return err
	case sig := <-irqSig:
		log.Info().Msgf("shutdown request (signal: %v)", sig)
	}

	d.webService.Shutdown()

	return <-errListen
}

// Close releases the database connection.
func (d *Daemon) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get database connection")
	}

	return sqlDB.Close() //nolint:wrapcheck
}
