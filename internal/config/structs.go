package config

import (
	"time"

	"github.com/stixsettings/stixsettings/internal/auth"
	"github.com/stixsettings/stixsettings/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Cache     Cache
	Auth      auth.Config
}

// DB holds the database configuration settings.
type DB struct {
	GormEngine string // mysql, postgres or sqlite
	Extras     string // extra DSN parameters
	Host       string
	Port       int
	User       string
	Password   string
	Name       string // database name, or file path for sqlite
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time in seconds for graceful shutdown
	URL            string // base url for the webserver
	BodyLimit      int    // max request body size in bytes
}

// Cache holds the entity settings cache configuration.
type Cache struct {
	TTL      time.Duration // time before cached rows are read again from the database
	Capacity uint64        // max number of cached tags, 0 for unlimited
}
