package controllers

import (
	"context"
	"errors"

	"aroundtown/internal/models/request_models"
	"aroundtown/internal/models/response_models"
	"aroundtown/pkg/utils"
)

type MockListingService struct {
	options    response_models.FilterOptions
	list       response_models.GroupList
	insight    response_models.Insight
	page       *response_models.ListingPage
	shouldFail bool

	lastFilter request_models.GroupFilter
	lastPage   request_models.PageRequest
}

func (m *MockListingService) GetFilterOptions(ctx context.Context) (response_models.FilterOptions, error) {
	if m.shouldFail {
		return response_models.FilterOptions{}, utils.ErrDatabaseError
	}
	return m.options, nil
}

func (m *MockListingService) ListGroups(ctx context.Context, filter request_models.GroupFilter) (response_models.GroupList, error) {
	m.lastFilter = filter
	if m.shouldFail {
		return response_models.GroupList{}, errors.New("service error")
	}
	return m.list, nil
}

func (m *MockListingService) GetInsight(ctx context.Context, filter request_models.GroupFilter, metric request_models.InsightMetric) (response_models.Insight, error) {
	m.lastFilter = filter
	if !metric.Valid() {
		return response_models.Insight{}, utils.ErrInvalidMetric
	}
	if m.shouldFail {
		return response_models.Insight{}, utils.ErrDatabaseError
	}
	return m.insight, nil
}

func (m *MockListingService) BuildPage(ctx context.Context, req request_models.PageRequest) (*response_models.ListingPage, error) {
	m.lastPage = req
	if req.View == "map" {
		return nil, utils.ErrInvalidView
	}
	if m.shouldFail {
		return nil, utils.ErrDatabaseError
	}
	return m.page, nil
}
