// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/config"
)

// Create builds the Data Source Name of the configured gorm engine.
func Create(dbCfg config.DB) (string, error) {
	switch dbCfg.GormEngine {
	case config.EngineMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			dbCfg.User,
			dbCfg.Password,
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.Name,
			dbCfg.Extras,
		), nil
	case config.EnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.User,
			dbCfg.Password,
			dbCfg.Name,
		)

		if dbCfg.Extras != "" {
			out += " " + strings.ReplaceAll(dbCfg.Extras, "&", " ")
		}

		return out, nil
	case config.EngineSQLite, "":
		if dbCfg.Extras == "" {
			return dbCfg.Name, nil
		}

		return dbCfg.Name + "?" + dbCfg.Extras, nil
	default:
		return "", errors.Wrap(config.ErrUnsupportedGormEngine, dbCfg.GormEngine)
	}
}

// Dialector returns the gorm dialector of the configured engine.
func Dialector(dbCfg config.DB) (gorm.Dialector, error) {
	dsn, err := Create(dbCfg)
	if err != nil {
		return nil, err
	}

	switch dbCfg.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(dsn), nil
	case config.EnginePostgres:
		return postgres.Open(dsn), nil
	default:
		return sqlite.Open(dsn), nil
	}
}

// Open connects to the configured database.
func Open(dbCfg config.DB, gormCfg *gorm.Config) (*gorm.DB, error) {
	dialector, err := Dialector(dbCfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", dbCfg.GormEngine)
	}

	if dialector.Name() == config.EngineSQLite {
		// sqlite serializes writers, and every :memory: connection is a database of its own
		sqlDB, errDB := db.DB()
		if errDB != nil {
			return nil, errors.Wrap(errDB, "failed to get sqlite connection pool")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
