// Package fiber provides a zerolog based access log middleware for fiber.
package fiber

import (
	"bytes"
	"io"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stixsettings/stixsettings/internal/auth"
	"github.com/stixsettings/stixsettings/internal/logger"
)

// HeaderPerformance carries the handling time of a request in seconds.
const HeaderPerformance = "X-Performance"

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError max-age caching on chain errors.
	CacheControlError string

	// CheckAliveURI for disabling logging of check alive http calls.
	CheckAliveURI string

	// Output overrides the configured writers. Used by tests.
	Output io.Writer
}

// ConfigDefault is the default config for fiber.
var ConfigDefault = Config{ //nolint:gochecknoglobals
	CacheControlError: "max-age=0",
	CheckAliveURI:     "/checkalive",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	if cfg.CheckAliveURI == "" {
		cfg.CheckAliveURI = ConfigDefault.CheckAliveURI
	}

	return cfg
}

// New creates a new fiber access logging middleware using zerolog.
// The actor set by auth.RequireCapability is logged when present.
func New(config ...Config) (fiber.Handler, error) {
	cfg := configDefault(config...)

	writers, err := accessWriters(cfg)
	if err != nil {
		return nil, err
	}

	accessLogger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		start := time.Now()

		if chainErr := ctx.Next(); chainErr != nil {
			if errH := ctx.App().ErrorHandler(ctx, chainErr); errH != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck // ok here
			}

			ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)

			accessEvent(accessLogger, ctx, time.Since(start)).Err(chainErr).Send()

			return nil
		}

		if cfg.Config.DisableCheckAlive && bytes.Equal(ctx.Request().URI().Path(), []byte(cfg.CheckAliveURI)) {
			return nil
		}

		accessEvent(accessLogger, ctx, time.Since(start)).Send()

		return nil
	}, nil
}

func accessEvent(l zerolog.Logger, ctx *fiber.Ctx, elapsed time.Duration) *zerolog.Event {
	seconds := elapsed.Seconds()
	ctx.Response().Header.Set(HeaderPerformance, strconv.FormatFloat(seconds, 'f', 6, 64))

	// fasthttp normalizes the path, the raw request URI keeps double slashes and the query.
	event := l.Log().
		Str("IP", ctx.IP()).
		Int("status", ctx.Response().StatusCode()).
		Float64(HeaderPerformance, seconds).
		Bytes("URI", ctx.Request().RequestURI()).
		Str("method", ctx.Method()).
		Bytes("host", ctx.Request().Host()).
		Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
		Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent))

	if actor, err := auth.ActorFromContext(ctx); err == nil {
		event.Str("actor", actor.Name)
	}

	return event
}

func accessWriters(cfg Config) ([]io.Writer, error) {
	if cfg.Output != nil {
		return []io.Writer{cfg.Output}, nil
	}

	var writers []io.Writer

	if cfg.Config.File.Enabled && cfg.Config.File.AccessLog != "" {
		w, err := newRollingAccessFile(cfg.Config.File)
		if err != nil {
			return nil, err
		}

		writers = append(writers, w)
	}

	// console access log needs both the console and the access flag
	if cfg.Config.Console.Enabled && cfg.Config.EnableAccessLogToConsole {
		if cfg.Config.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{zerolog.LevelFieldName},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	return writers, nil
}

// newRollingAccessFile uses lumberjack to create file based access log.
func newRollingAccessFile(cfg logger.LogFile) (io.Writer, error) {
	if cfg.Path != "" {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil { //nolint:mnd
			return nil, errors.Wrapf(err, "can't create log directory %s", cfg.Path)
		}
	}

	return &lumberjack.Logger{
		Filename:   path.Join(cfg.Path, cfg.AccessLog),
		MaxSize:    cfg.AccessMaxSize,
		MaxAge:     cfg.AccessMaxAge,
		MaxBackups: cfg.AccessMaxBackups,
	}, nil
}
