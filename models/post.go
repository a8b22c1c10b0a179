package models

import (
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

type Post struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content" gorm:"type:text"`
	Excerpt   string         `json:"excerpt"`
	Status    PostStatus     `json:"status" gorm:"default:'published'"`
	AuthorID  uint           `json:"authorId" gorm:"not null"`
	Author    User           `json:"author" gorm:"foreignKey:AuthorID"`
	Tags      []Tag          `json:"tags" gorm:"many2many:post_tags;"`
	Comments  []Comment      `json:"comments" gorm:"foreignKey:PostID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
