// Package models contains database model definitions.
package models

import "time"

// EntitySetting holds the admin configured options of one entity type.
// There is at most one row per TargetType.
type EntitySetting struct {
	// ID is the unique identifier for the row.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// TargetType is the concrete or abstract entity type the row applies to.
	TargetType string `gorm:"unique;size:100;not null" json:"target_type" validate:"required,max=100"`
	// PlatformEntityFilesRef enables file attachment references on the entity type.
	PlatformEntityFilesRef bool `gorm:"default:false" json:"platform_entity_files_ref"`
	// PlatformHiddenType hides the entity type from the platform.
	PlatformHiddenType bool `gorm:"default:false" json:"platform_hidden_type"`
	// EnforceReference requires an external reference on every change.
	EnforceReference bool `gorm:"default:false" json:"enforce_reference"`
	// AttributesConfiguration is the JSON encoded list of per attribute overrides.
	AttributesConfiguration string `gorm:"type:text" json:"attributes_configuration"`
	// CreatedAt is the timestamp when the row was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the row was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the EntitySetting model.
func (EntitySetting) TableName() string {
	return "entity_settings"
}
