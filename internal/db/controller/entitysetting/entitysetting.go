// Package entitysetting provides CRUD operations for entity setting rows.
package entitysetting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/stixsettings/stixsettings/internal/db/models"
)

const (
	targetTypeQueryPattern = "target_type = ?"
)

var (
	// ErrEntitySettingNotFound is returned when an entity setting is not found.
	ErrEntitySettingNotFound = errors.New("entity setting not found")
	// ErrTargetTypeEmpty is returned when a target type is empty.
	ErrTargetTypeEmpty = errors.New("entity setting target type cannot be empty")
	// ErrEntitySettingAlreadyExists is returned when creating a row for a target type that already has one.
	ErrEntitySettingAlreadyExists = errors.New("entity setting already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrSettingNil is returned when a nil row is passed for writing.
	ErrSettingNil = errors.New("entity setting is nil")
)

// Get retrieves the entity setting of a target type.
func Get(db *gorm.DB, targetType string) (*models.EntitySetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if targetType == "" {
		return nil, ErrTargetTypeEmpty
	}

	var setting models.EntitySetting
	result := db.Where(targetTypeQueryPattern, targetType).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEntitySettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// GetByID retrieves an entity setting by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.EntitySetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var setting models.EntitySetting
	result := db.First(&setting, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEntitySettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all entity settings ordered by target type.
func GetAll(db *gorm.DB) ([]models.EntitySetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.EntitySetting
	result := db.Order("target_type").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Create inserts a new entity setting row.
func Create(db *gorm.DB, setting *models.EntitySetting) (*models.EntitySetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if setting == nil {
		return nil, ErrSettingNil
	}
	if setting.TargetType == "" {
		return nil, ErrTargetTypeEmpty
	}

	var existing models.EntitySetting
	result := db.Where(targetTypeQueryPattern, setting.TargetType).First(&existing)
	if result.Error == nil {
		return nil, ErrEntitySettingAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	row := *setting
	row.ID = 0

	result = db.Create(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &row, nil
}

// Set creates or updates the row of setting.TargetType (upsert operation).
// Every configurable column is overwritten with the given values.
func Set(db *gorm.DB, setting *models.EntitySetting) (*models.EntitySetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if setting == nil {
		return nil, ErrSettingNil
	}
	if setting.TargetType == "" {
		return nil, ErrTargetTypeEmpty
	}

	var existing models.EntitySetting
	result := db.Where(targetTypeQueryPattern, setting.TargetType).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Create(db, setting)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	existing.PlatformEntityFilesRef = setting.PlatformEntityFilesRef
	existing.PlatformHiddenType = setting.PlatformHiddenType
	existing.EnforceReference = setting.EnforceReference
	existing.AttributesConfiguration = setting.AttributesConfiguration

	result = db.Save(&existing)
	if result.Error != nil {
		return nil, result.Error
	}

	return &existing, nil
}

// DeleteByTargetType deletes the row of a target type.
func DeleteByTargetType(db *gorm.DB, targetType string) error {
	if db == nil {
		return ErrDBNil
	}
	if targetType == "" {
		return ErrTargetTypeEmpty
	}

	result := db.Where(targetTypeQueryPattern, targetType).Delete(&models.EntitySetting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntitySettingNotFound
	}

	return nil
}
