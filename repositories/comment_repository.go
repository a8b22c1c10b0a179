package repositories

import (
	"mindwrite-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByPostID(postID uint) ([]models.Comment, error)
	DeleteByPostID(postID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

// DeleteByPostID backs the cascade when a post is hard-deleted.
func (r *commentRepository) DeleteByPostID(postID uint) error {
	return r.db.Unscoped().Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}
