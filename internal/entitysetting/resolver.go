package entitysetting

import (
	"context"
	"fmt"

	"github.com/stixsettings/stixsettings/internal/auth"
	"github.com/stixsettings/stixsettings/internal/db/models"
	"github.com/stixsettings/stixsettings/internal/schema"
)

// EntityCache returns every cached entity setting row stored under tag.
type EntityCache interface {
	Fetch(ctx context.Context, actor auth.User, tag string) ([]models.EntitySetting, error)
}

// Resolver finds the effective stored settings row of an entity type.
type Resolver struct {
	cache EntityCache
}

// NewResolver creates a resolver reading rows from cache.
func NewResolver(cache EntityCache) (*Resolver, error) {
	if cache == nil {
		return nil, ErrNilCache
	}

	return &Resolver{cache: cache}, nil
}

// EntitySettingFromCache returns the row whose target type is entityType.
// Core relationships and cyber observables without a row of their own inherit
// the row of their abstract type. Every other type, domain objects and the
// sighting relationship included, has no inheritance here.
//
// A nil row with a nil error means no setting exists and platform defaults apply.
// Rows are always read as auth.SystemUser, whoever the caller is.
func (r *Resolver) EntitySettingFromCache(ctx context.Context, entityType string) (*models.EntitySetting, error) {
	settings, err := r.cache.Fetch(ctx, auth.SystemUser, EntityTypeEntitySetting)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entity settings from cache: %w", err)
	}

	if s := findByTargetType(settings, entityType); s != nil {
		return s, nil
	}

	switch schema.Classify(entityType) {
	case schema.CategoryCoreRelationship:
		return findByTargetType(settings, schema.AbstractStixCoreRelationship), nil
	case schema.CategoryCyberObservable:
		return findByTargetType(settings, schema.AbstractStixCyberObservable), nil
	case schema.CategoryDomainObject, schema.CategorySightingRelationship, schema.CategoryUnclassified:
	}

	return nil, nil //nolint:nilnil
}

// findByTargetType returns a copy of the first row matching targetType so
// callers can not modify cached rows.
func findByTargetType(settings []models.EntitySetting, targetType string) *models.EntitySetting {
	for i := range settings {
		if settings[i].TargetType == targetType {
			s := settings[i]
			return &s
		}
	}

	return nil
}
