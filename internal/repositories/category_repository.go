package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aroundtown/internal/models/db_models"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]db_models.Category, error)
	FindByName(ctx context.Context, name string) (*db_models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).
		Order("category ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// FindByName matches the display name exactly. A miss is (nil, nil).
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).
		Where("category = ?", name).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	return &category, nil
}
