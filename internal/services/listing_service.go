package services

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"aroundtown/internal/models/db_models"
	"aroundtown/internal/models/request_models"
	"aroundtown/internal/models/response_models"
	"aroundtown/internal/repositories"
	"aroundtown/pkg/utils"
)

// Sessioner hands out scoped database sessions; infra.Provider implements it.
type Sessioner interface {
	WithSession(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ListingServiceInterface interface {
	GetFilterOptions(ctx context.Context) (response_models.FilterOptions, error)
	ListGroups(ctx context.Context, filter request_models.GroupFilter) (response_models.GroupList, error)
	GetInsight(ctx context.Context, filter request_models.GroupFilter, metric request_models.InsightMetric) (response_models.Insight, error)
	BuildPage(ctx context.Context, req request_models.PageRequest) (*response_models.ListingPage, error)
}

type ListingOptions struct {
	StrictCategory bool
}

type ListingService struct {
	sessions Sessioner
	opts     ListingOptions
	log      *zap.Logger
}

func NewListingService(sessions Sessioner, opts ListingOptions, log *zap.Logger) ListingServiceInterface {
	return &ListingService{
		sessions: sessions,
		opts:     opts,
		log:      log,
	}
}

// catalog is what one option scan yields.
type catalog struct {
	options response_models.FilterOptions
	labels  map[uint]string
}

func (s *ListingService) loadCatalog(ctx context.Context) (catalog, error) {
	var out catalog
	err := s.sessions.WithSession(ctx, func(tx *gorm.DB) error {
		store := repositories.NewStore(tx)

		categories, err := store.Categories.ListAll(ctx)
		if err != nil {
			return err
		}
		areas, err := store.Groups.DistinctAreas(ctx)
		if err != nil {
			return err
		}
		ages, err := store.Groups.DistinctAgeGroups(ctx)
		if err != nil {
			return err
		}

		out.labels = make(map[uint]string, len(categories))
		names := make([]string, 0, len(categories))
		for _, c := range categories {
			out.labels[c.CategoryID] = c.Category
			names = append(names, c.Category)
		}
		out.options = response_models.FilterOptions{
			Categories: withAll(names),
			AgeGroups:  withAll(ages),
			Areas:      withAll(areas),
		}
		return nil
	})
	if err != nil {
		s.log.Error("error loading filter options", zap.Error(err))
		return catalog{}, utils.ErrDatabaseError
	}
	return out, nil
}

func (s *ListingService) search(ctx context.Context, filter request_models.GroupFilter) ([]db_models.Group, error) {
	var groups []db_models.Group
	err := s.sessions.WithSession(ctx, func(tx *gorm.DB) error {
		var err error
		groups, err = repositories.NewStore(tx).Groups.Search(ctx, filter, repositories.SearchOptions{
			StrictCategory: s.opts.StrictCategory,
		})
		return err
	})
	if err != nil {
		s.log.Error("error searching groups", zap.Error(err), zap.Any("filter", filter))
		return nil, utils.ErrDatabaseError
	}
	return groups, nil
}

func (s *ListingService) GetFilterOptions(ctx context.Context) (response_models.FilterOptions, error) {
	c, err := s.loadCatalog(ctx)
	if err != nil {
		return response_models.FilterOptions{}, err
	}
	return c.options, nil
}

func (s *ListingService) ListGroups(ctx context.Context, filter request_models.GroupFilter) (response_models.GroupList, error) {
	groups, err := s.search(ctx, filter.Normalize())
	if err != nil {
		return response_models.GroupList{}, err
	}
	return toGroupList(groups, nil), nil
}

func (s *ListingService) GetInsight(ctx context.Context, filter request_models.GroupFilter, metric request_models.InsightMetric) (response_models.Insight, error) {
	if !metric.Valid() {
		return response_models.Insight{}, utils.ErrInvalidMetric
	}
	c, err := s.loadCatalog(ctx)
	if err != nil {
		return response_models.Insight{}, err
	}
	groups, err := s.search(ctx, filter.Normalize())
	if err != nil {
		return response_models.Insight{}, err
	}
	return Aggregate(groups, metric, c.labels), nil
}

// BuildPage runs one full render cycle: options, filtered groups, cards and
// all three insights over the same result set.
func (s *ListingService) BuildPage(ctx context.Context, req request_models.PageRequest) (*response_models.ListingPage, error) {
	view := req.View
	switch view {
	case "":
		view = request_models.ViewGroups
	case request_models.ViewGroups, request_models.ViewInsights:
	default:
		return nil, utils.ErrInvalidView
	}
	metric := req.Metric
	if metric == "" {
		metric = request_models.MetricArea
	}
	if !metric.Valid() {
		return nil, utils.ErrInvalidMetric
	}

	c, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	filter := req.GroupFilter.Normalize()
	groups, err := s.search(ctx, filter)
	if err != nil {
		return nil, err
	}

	insights := make([]response_models.Insight, 0, len(request_models.Metrics))
	for _, m := range request_models.Metrics {
		insights = append(insights, Aggregate(groups, m, c.labels))
	}

	return &response_models.ListingPage{
		Filter:   filter,
		Options:  c.options,
		List:     toGroupList(groups, c.labels),
		Insights: insights,
		View:     view,
		Metric:   string(metric),
	}, nil
}

func withAll(values []string) []string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return append([]string{request_models.All}, sorted...)
}

// toGroupList projects groups into cards. With labels nil the preloaded
// Category is used for the category name.
func toGroupList(groups []db_models.Group, labels map[uint]string) response_models.GroupList {
	cards := make([]response_models.GroupCard, 0, len(groups))
	for _, g := range groups {
		category := response_models.UnknownCategory
		switch {
		case labels != nil:
			category = categoryLabel(g.CategoryID, labels)
		case g.Category != nil:
			category = g.Category.Category
		}

		card := response_models.GroupCard{
			ID:           g.GroupID,
			Name:         g.Name,
			Area:         g.Area,
			AgeGroup:     g.AgeGroup,
			Category:     category,
			Description:  orNA(g.Description),
			WebsiteLabel: orNA(g.Website),
			Email:        orNA(g.Email),
			Phone:        orNA(g.Phone),
			Address:      orNA(g.Address),
		}
		if g.Website != nil && *g.Website != "" {
			card.Website = *g.Website
		}
		cards = append(cards, card)
	}
	return response_models.GroupList{Count: len(cards), Groups: cards}
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return response_models.NotAvailable
	}
	return *s
}
