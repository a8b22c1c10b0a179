package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag names are indexed but not unique at the storage level; duplicate
// handling is decided by the tag service (see config.AllowDuplicateTags).
type Tag struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"index;not null"`
	Posts     []Post         `json:"-" gorm:"many2many:post_tags;"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
