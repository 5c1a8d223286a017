package repository

import (
	"context"
	"errors"

	"github.com/jaydeepbariya/master-backend-app/internal/cache"
	"github.com/jaydeepbariya/master-backend-app/internal/models"

	"gorm.io/gorm"
)

// NewsRepository defines persistence operations for news articles.
type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, id uint) (*models.News, error)
	List(ctx context.Context, limit, offset int) ([]models.News, error)
	ListAll(ctx context.Context) ([]models.News, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id uint) error
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository returns a new NewsRepository implementation.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	if err := r.db.WithContext(ctx).Create(news).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Reload with the owner summary so the caller gets the embedded author.
	if err := r.db.WithContext(ctx).Preload("User").First(news, news.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID is a read-through lookup: cache hit deserializes, miss reads the
// store and writes the result back with a bounded TTL.
func (r *newsRepository) GetByID(ctx context.Context, id uint) (*models.News, error) {
	var news models.News
	key := cache.NewsKey(id)

	err := cache.Aside(ctx, key, &news, cache.NewsTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("User").First(&news, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("News", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) List(ctx context.Context, limit, offset int) ([]models.News, error) {
	var news []models.News
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&news).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return news, nil
}

func (r *newsRepository) ListAll(ctx context.Context) ([]models.News, error) {
	var news []models.News
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&news).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return news, nil
}

func (r *newsRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.News{}).Count(&total).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return total, nil
}

func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	if err := r.db.WithContext(ctx).Save(news).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNews(ctx, news.ID)
	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.News{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNews(ctx, id)
	return nil
}
