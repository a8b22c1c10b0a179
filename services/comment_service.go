package services

import (
	"errors"

	"mindwrite-api/models"
	"mindwrite-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(req models.CreateCommentRequest) (*models.Comment, error)
	GetCommentsByPost(postID uint) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *commentService) CreateComment(req models.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		Content:    req.Content,
		AuthorName: req.AuthorName,
		PostID:     req.PostID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetCommentsByPost(postID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(postID)
}
