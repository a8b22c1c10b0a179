package repositories

import (
	"mindwrite-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetAll() ([]models.Post, error)
	Update(post *models.Post) error
	ReplaceTags(post *models.Post, tags []models.Tag) error
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("Tags").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at desc")
		}).
		First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Preload("Tags").
		Preload("Comments").
		Order("posts.id desc").
		Find(&posts).Error
	return posts, err
}

// Update persists scalar fields only; tag changes go through ReplaceTags.
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

func (r *postRepository) ReplaceTags(post *models.Post, tags []models.Tag) error {
	return r.db.Model(post).Association("Tags").Replace(tags)
}

// Delete removes the row for good, join rows included. Comment cleanup is
// the service's job so it stays visible next to the cascade rule.
func (r *postRepository) Delete(id uint) error {
	if err := r.db.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Unscoped().Delete(&models.Post{}, id).Error
}
