package services

import (
	"errors"
	"log/slog"

	"mindwrite-api/cache"
	"mindwrite-api/models"
	"mindwrite-api/repositories"

	"gorm.io/gorm"
)

// excerptLength is how much of the content becomes the excerpt when the
// author does not provide one.
const excerptLength = 100

type PostService interface {
	CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error)
	GetPosts() ([]models.Post, error)
	GetPost(id uint) (*models.Post, error)
	UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id uint) error
}

type postService struct {
	postRepo    repositories.PostRepository
	tagRepo     repositories.TagRepository
	commentRepo repositories.CommentRepository
	cache       *cache.Cache
}

func NewPostService(
	postRepo repositories.PostRepository,
	tagRepo repositories.TagRepository,
	commentRepo repositories.CommentRepository,
	c *cache.Cache,
) PostService {
	return &postService{
		postRepo:    postRepo,
		tagRepo:     tagRepo,
		commentRepo: commentRepo,
		cache:       c,
	}
}

func (s *postService) CreatePost(req models.CreatePostRequest, authorID uint) (*models.Post, error) {
	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = makeExcerpt(req.Content)
	}

	status := req.Status
	if status == "" {
		status = models.StatusPublished
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  excerpt,
		Status:   status,
		AuthorID: authorID,
	}

	// Unknown tag ids resolve to nothing and are dropped without error.
	if len(req.TagIDs) > 0 {
		tags, err := s.tagRepo.GetByIDs(req.TagIDs)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	s.invalidateTagCounts()

	return s.postRepo.GetByID(post.ID)
}

func (s *postService) GetPosts() ([]models.Post, error) {
	return s.postRepo.GetAll()
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	// nil means "leave the tag set alone"; an empty list clears it.
	if req.TagIDs != nil {
		tags, err := s.tagRepo.GetByIDs(req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.postRepo.ReplaceTags(post, tags); err != nil {
			return nil, err
		}
	}

	s.invalidateTagCounts()

	return s.postRepo.GetByID(id)
}

func (s *postService) DeletePost(id uint) error {
	if _, err := s.GetPost(id); err != nil {
		return err
	}

	// Comments first, then the post itself. Hard delete on both sides.
	if err := s.commentRepo.DeleteByPostID(id); err != nil {
		return err
	}
	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateTagCounts()

	return nil
}

func (s *postService) invalidateTagCounts() {
	if err := s.cache.InvalidateTagCounts(); err != nil {
		slog.Warn("tag count cache invalidation failed", "error", err)
	}
}

func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength])
}
