package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	Content    string         `json:"content" gorm:"type:text;not null"`
	AuthorName string         `json:"authorName" gorm:"not null"`
	PostID     uint           `json:"postId" gorm:"not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
