// Package testkit holds fixtures shared by package tests.
package testkit

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"aroundtown/internal/infra"
	"aroundtown/internal/models/db_models"
)

// Str returns a pointer to s, for optional model columns.
func Str(s string) *string { return &s }

// ID returns a pointer to id, for nullable foreign keys.
func ID(id uint) *uint { return &id }

// Categories used by SeedDirectory.
var Categories = []db_models.Category{
	{CategoryID: 1, Category: "Arts"},
	{CategoryID: 2, Category: "Sports"},
	{CategoryID: 3, Category: "Wellness"},
}

// Groups used by SeedDirectory. "Lost Hikers" points at a category id with
// no row and "Quiet Readers" has none at all.
var Groups = []db_models.Group{
	{GroupID: 1, Name: "Book Club", Area: "North", AgeGroup: "Adult", CategoryID: ID(1),
		Description: Str("Monthly novel discussions"), Website: Str("https://bookclub.example"),
		Email: Str("hello@bookclub.example"), Phone: Str("555-0100")},
	{GroupID: 2, Name: "Soccer Kids", Area: "South", AgeGroup: "Child", CategoryID: ID(2),
		Description: Str("Saturday morning football for under tens")},
	{GroupID: 3, Name: "Watercolour Circle", Area: "North", AgeGroup: "Senior", CategoryID: ID(1),
		Description: Str("Relaxed painting sessions by the river")},
	{GroupID: 4, Name: "Yoga in the Park", Area: "East", AgeGroup: "Adult", CategoryID: ID(3)},
	{GroupID: 5, Name: "Lost Hikers", Area: "West", AgeGroup: "Teen", CategoryID: ID(99),
		Description: Str("Trail walks around the northern ridge")},
	{GroupID: 6, Name: "Quiet Readers", Area: "South", AgeGroup: "Senior"},
	{GroupID: 7, Name: "Basketball Juniors", Area: "East", AgeGroup: "Teen", CategoryID: ID(2),
		Website: Str("https://hoops.example")},
}

// NewSQLite opens a Provider over a fresh sqlite file in t's temp dir with
// the schema created and nothing seeded.
func NewSQLite(t testing.TB) *infra.Provider {
	t.Helper()

	cfg := infra.Config{
		DatabaseURL: "sqlite://" + filepath.Join(t.TempDir(), "directory.db"),
		PoolSize:    2,
		MaxOverflow: 2,
		PoolTimeout: 5 * time.Second,
		PoolRecycle: time.Minute,
		CardColumns: 2,
		GinMode:     "test",
	}
	p, err := infra.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })

	if err := p.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return p
}

// SeedDirectory opens a sqlite Provider loaded with Categories and Groups.
func SeedDirectory(t testing.TB) *infra.Provider {
	t.Helper()
	p := NewSQLite(t)
	categories := append([]db_models.Category(nil), Categories...)
	groups := append([]db_models.Group(nil), Groups...)
	if err := Seed(p, categories, groups); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return p
}

// Seed inserts the given rows.
func Seed(p *infra.Provider, categories []db_models.Category, groups []db_models.Group) error {
	db := p.DB()
	if len(categories) > 0 {
		if err := db.Create(&categories).Error; err != nil {
			return fmt.Errorf("insert categories: %w", err)
		}
	}
	for i := range groups {
		// Omit the association so gorm does not upsert categories.
		if err := db.Omit("Category").Create(&groups[i]).Error; err != nil {
			return fmt.Errorf("insert group %q: %w", groups[i].Name, err)
		}
	}
	return nil
}
