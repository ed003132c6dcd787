package cache

import (
	"context"
	"slices"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/auth"
	entitysettingcontroller "github.com/stixsettings/stixsettings/internal/db/controller/entitysetting"
	"github.com/stixsettings/stixsettings/internal/db/models"
	"github.com/stixsettings/stixsettings/internal/entitysetting"
)

// errorTTL keeps failed loads briefly so a broken database is not hammered.
const errorTTL = time.Second

// Config holds the cache settings.
type Config struct {
	TTL      time.Duration
	Capacity uint64 // 0 for unlimited
}

// LoadFunc reads every row of one tag from the database.
type LoadFunc func(ctx context.Context, db *gorm.DB) ([]models.EntitySetting, error)

type entry struct {
	rows []models.EntitySetting
	err  error
}

// Store is the process wide entity cache.
type Store struct {
	db      *gorm.DB
	cache   *ttlcache.Cache[string, entry]
	group   *singleflight.Group
	loaders map[string]LoadFunc
}

// New creates a store reading from db. Call Start to run the expiry loop and Stop to end it.
func New(db *gorm.DB, cfg Config) (*Store, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	opts := []ttlcache.Option[string, entry]{
		ttlcache.WithTTL[string, entry](cfg.TTL),
		ttlcache.WithDisableTouchOnHit[string, entry](),
	}

	if cfg.Capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, entry](cfg.Capacity))
	}

	return &Store{
		db:    db,
		cache: ttlcache.New(opts...),
		group: &singleflight.Group{},
		loaders: map[string]LoadFunc{
			entitysetting.EntityTypeEntitySetting: loadEntitySettings,
		},
	}, nil
}

// Start runs the expiry loop until Stop is called. It blocks.
func (s *Store) Start() {
	s.cache.Start()
}

// Stop ends the expiry loop.
func (s *Store) Stop() {
	s.cache.Stop()
}

// Fetch returns the rows stored under tag. The returned slice is a copy.
func (s *Store) Fetch(ctx context.Context, actor auth.User, tag string) ([]models.EntitySetting, error) {
	if !actor.HasCapability(auth.CapKnowledge) {
		return nil, errors.Wrapf(ErrForbidden, "actor %s", actor.Name)
	}

	load, ok := s.loaders[tag]
	if !ok {
		return nil, errors.Wrap(ErrUnknownTag, tag)
	}

	result := resultHit

	// loads are shared between callers and outlive a canceled request
	loadCtx := context.WithoutCancel(ctx)

	loader := ttlcache.LoaderFunc[string, entry](
		func(c *ttlcache.Cache[string, entry], key string) *ttlcache.Item[string, entry] {
			result = resultMiss

			rows, err := load(loadCtx, s.db)
			if err != nil {
				log.Error().Err(err).Str("tag", key).Msg("failed to load cache rows")

				return c.Set(key, entry{err: err}, errorTTL)
			}

			log.Debug().Str("tag", key).Int("rows", len(rows)).Msg("cache rows loaded")

			return c.Set(key, entry{rows: rows}, ttlcache.DefaultTTL)
		},
	)

	item := s.cache.Get(tag, ttlcache.WithLoader[string, entry](ttlcache.NewSuppressedLoader[string, entry](loader, s.group)))
	if item == nil {
		fetches().WithLabelValues(tag, resultError).Inc()

		return nil, errors.Wrap(ErrLoadFailed, tag)
	}

	value := item.Value()
	if value.err != nil {
		fetches().WithLabelValues(tag, resultError).Inc()

		return nil, errors.Wrapf(value.err, "load %s", tag)
	}

	fetches().WithLabelValues(tag, result).Inc()

	return slices.Clone(value.rows), nil
}

// Invalidate drops the cached rows of tag so the next Fetch reads the database.
func (s *Store) Invalidate(tag string) {
	s.cache.Delete(tag)
	log.Debug().Str("tag", tag).Msg("cache tag invalidated")
}

func loadEntitySettings(ctx context.Context, db *gorm.DB) ([]models.EntitySetting, error) {
	rows, err := entitysettingcontroller.GetAll(db.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "read entity settings")
	}

	return rows, nil
}
