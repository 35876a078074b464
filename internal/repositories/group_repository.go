package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"aroundtown/internal/models/db_models"
	"aroundtown/internal/models/request_models"
)

type GroupRepository interface {
	Search(ctx context.Context, filter request_models.GroupFilter, opts SearchOptions) ([]db_models.Group, error)
	DistinctAreas(ctx context.Context) ([]string, error)
	DistinctAgeGroups(ctx context.Context) ([]string, error)
}

type SearchOptions struct {
	// StrictCategory makes an unknown category name match nothing instead
	// of being ignored.
	StrictCategory bool
}

type groupRepository struct {
	db         *gorm.DB
	categories CategoryRepository
}

func NewGroupRepository(db *gorm.DB, categories CategoryRepository) GroupRepository {
	return &groupRepository{db: db, categories: categories}
}

// Search returns the groups matching every active filter, ordered by name,
// with their category preloaded.
func (r *groupRepository) Search(ctx context.Context, filter request_models.GroupFilter, opts SearchOptions) ([]db_models.Group, error) {
	filter = filter.Normalize()
	query := r.db.WithContext(ctx).Preload("Category")

	if filter.FiltersCategory() {
		category, err := r.categories.FindByName(ctx, filter.Category)
		if err != nil {
			return nil, err
		}
		switch {
		case category != nil:
			query = query.Scopes(inCategory(category.CategoryID))
		case opts.StrictCategory:
			return []db_models.Group{}, nil
		}
	}
	if filter.FiltersAgeGroups() {
		query = query.Scopes(inAgeGroups(filter.AgeGroups))
	}
	if filter.FiltersArea() {
		query = query.Scopes(inArea(filter.Area))
	}
	if filter.Search != "" {
		query = query.Scopes(matchingText(filter.Search))
	}

	var groups []db_models.Group
	if err := query.Order("name ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("search groups: %w", err)
	}
	return groups, nil
}

func (r *groupRepository) DistinctAreas(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "area")
}

func (r *groupRepository) DistinctAgeGroups(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "age_group")
}

// column is always a literal from this file, never user input.
func (r *groupRepository) distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Group{}).
		Where(column + " IS NOT NULL").
		Distinct().
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	return values, nil
}

// ---------- Scopes ----------

func inCategory(id uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id = ?", id)
	}
}

func inAgeGroups(ageGroups []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("age_group IN ?", ageGroups)
	}
}

func inArea(area string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("area = ?", area)
	}
}

// matchingText is a case-insensitive substring match on name, description or
// area. LOWER/LIKE keeps it portable across postgres and sqlite.
func matchingText(text string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(area) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Store bundles the repositories bound to one session handle.
type Store struct {
	Categories CategoryRepository
	Groups     GroupRepository
}

func NewStore(db *gorm.DB) Store {
	categories := NewCategoryRepository(db)
	return Store{
		Categories: categories,
		Groups:     NewGroupRepository(db, categories),
	}
}
