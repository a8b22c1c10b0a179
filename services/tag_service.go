package services

import (
	"errors"
	"log/slog"
	"time"

	"mindwrite-api/cache"
	"mindwrite-api/config"
	"mindwrite-api/models"
	"mindwrite-api/repositories"

	"gorm.io/gorm"
)

const tagCountsTTL = 5 * time.Minute

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	GetTagsWithPostCount() ([]models.TagWithCount, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
	cache   *cache.Cache
}

func NewTagService(tagRepo repositories.TagRepository, c *cache.Cache) TagService {
	return &tagService{tagRepo: tagRepo, cache: c}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	// Duplicate names are allowed unless the deployment opts out.
	if !config.AllowDuplicateTags() {
		_, err := s.tagRepo.GetByName(req.Name)
		if err == nil {
			return nil, ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateTagCounts(); err != nil {
		slog.Warn("tag count cache invalidation failed", "error", err)
	}

	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

// GetTagsWithPostCount serves the aggregate from Redis when possible and
// falls back to the database on a miss.
func (s *tagService) GetTagsWithPostCount() ([]models.TagWithCount, error) {
	cached, err := s.cache.GetTagCounts()
	if err != nil {
		slog.Warn("tag count cache read failed", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	counts, err := s.tagRepo.GetAllWithPostCount()
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetTagCounts(counts, tagCountsTTL); err != nil {
		slog.Warn("tag count cache write failed", "error", err)
	}

	return counts, nil
}
