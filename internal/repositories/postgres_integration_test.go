//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"aroundtown/internal/infra"
	"aroundtown/internal/models/db_models"
	"aroundtown/internal/models/request_models"
	"aroundtown/internal/testkit"
)

func startPostgres(t *testing.T) *infra.Provider {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("aroundtown"),
		tcpostgres.WithUsername("town"),
		tcpostgres.WithPassword("town"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	p, err := infra.Open(infra.Config{
		DatabaseURL: dsn,
		PoolSize:    2,
		MaxOverflow: 2,
		PoolTimeout: 10 * time.Second,
		PoolRecycle: time.Minute,
		CardColumns: 2,
		GinMode:     "test",
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, p.AutoMigrate())

	// Postgres enforces the foreign key, so dangling ids become NULL.
	groups := append([]db_models.Group(nil), testkit.Groups...)
	for i := range groups {
		if id := groups[i].CategoryID; id != nil && *id > uint(len(testkit.Categories)) {
			groups[i].CategoryID = nil
		}
	}
	categories := append([]db_models.Category(nil), testkit.Categories...)
	require.NoError(t, testkit.Seed(p, categories, groups))
	return p
}

func TestPostgres_Search(t *testing.T) {
	p := startPostgres(t)
	ctx := context.Background()

	run := func(filter request_models.GroupFilter) []string {
		var names []string
		err := p.WithSession(ctx, func(tx *gorm.DB) error {
			groups, err := NewStore(tx).Groups.Search(ctx, filter, SearchOptions{})
			for _, g := range groups {
				names = append(names, g.Name)
			}
			return err
		})
		require.NoError(t, err)
		return names
	}

	assert.Len(t, run(request_models.GroupFilter{}), len(testkit.Groups))
	assert.Equal(t, []string{"Book Club", "Watercolour Circle"}, run(request_models.GroupFilter{Category: "Arts"}))
	assert.Equal(t, []string{"Book Club", "Lost Hikers", "Watercolour Circle"}, run(request_models.GroupFilter{Search: "NORTH"}))
	assert.Equal(t, []string{"Basketball Juniors", "Lost Hikers"},
		run(request_models.GroupFilter{AgeGroups: []string{"Teen"}}))
	assert.Empty(t, run(request_models.GroupFilter{Search: "100%"}))
}

func TestPostgres_Options(t *testing.T) {
	p := startPostgres(t)
	ctx := context.Background()

	err := p.WithSession(ctx, func(tx *gorm.DB) error {
		store := NewStore(tx)

		cats, err := store.Categories.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, cats, len(testkit.Categories))

		areas, err := store.Groups.DistinctAreas(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"North", "South", "East", "West"}, areas)
		return nil
	})
	require.NoError(t, err)
}
