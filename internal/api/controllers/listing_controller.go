package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aroundtown/internal/models/request_models"
	"aroundtown/internal/services"
	"aroundtown/internal/web"
	"aroundtown/pkg/charts"
	"aroundtown/pkg/utils"
)

type ListingController struct {
	listingService services.ListingServiceInterface
	renderer       *web.Renderer
	log            *zap.Logger
}

func NewListingController(listingService services.ListingServiceInterface, renderer *web.Renderer, log *zap.Logger) *ListingController {
	return &ListingController{
		listingService: listingService,
		renderer:       renderer,
		log:            log,
	}
}

// GetPage renders the directory page for the current filters.
func (lc *ListingController) GetPage(c *gin.Context) {
	var req request_models.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		lc.renderError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := lc.listingService.BuildPage(c.Request.Context(), req)
	if err != nil {
		code, message := utils.StatusFor(err)
		if code >= http.StatusInternalServerError {
			_ = c.Error(err)
		}
		lc.renderError(c, code, message)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := lc.renderer.RenderPage(c.Writer, page); err != nil {
		lc.log.Error("error rendering page", zap.Error(err))
		_ = c.Error(err)
	}
}

// GetFilterOptions godoc
// @Summary List filter options
// @Description Distinct categories, age groups and areas, each starting with "All"
// @Tags Directory
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/filters [get]
func (lc *ListingController) GetFilterOptions(c *gin.Context) {
	options, err := lc.listingService.GetFilterOptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Filter options fetched successfully")
}

// ListGroups godoc
// @Summary List groups
// @Description Groups matching every filter, sorted by name
// @Tags Directory
// @Produce json
// @Param category  query string false "Category name or All"
// @Param age_group query []string false "Age groups; any All disables the filter"
// @Param area      query string false "Area or All"
// @Param q         query string false "Case-insensitive text in name, description or area"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/groups [get]
func (lc *ListingController) ListGroups(c *gin.Context) {
	var filter request_models.GroupFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	groups, err := lc.listingService.ListGroups(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, groups, "Groups fetched successfully")
}

// GetInsight godoc
// @Summary Get an insight
// @Description Counts of the filtered groups by area, category or age group
// @Tags Directory
// @Produce json
// @Param metric path string true "area | category | age_group"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/insights/{metric} [get]
func (lc *ListingController) GetInsight(c *gin.Context) {
	metric := request_models.InsightMetric(c.Param("metric"))

	var filter request_models.GroupFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	insight, err := lc.listingService.GetInsight(c.Request.Context(), filter, metric)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, insight, "Insight fetched successfully")
}

// GetChart serves /charts/<metric>.svg.
func (lc *ListingController) GetChart(c *gin.Context) {
	name, ok := strings.CutSuffix(c.Param("file"), ".svg")
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "Chart not found")
		return
	}

	var filter request_models.GroupFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	insight, err := lc.listingService.GetInsight(c.Request.Context(), filter, request_models.InsightMetric(name))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	svg, err := web.ChartSVG(insight)
	if err != nil {
		if errors.Is(err, charts.ErrNoData) {
			c.Status(http.StatusNoContent)
			return
		}
		lc.log.Error("error rendering chart", zap.String("metric", name), zap.Error(err))
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// GetStylesheet serves the embedded stylesheet.
func (lc *ListingController) GetStylesheet(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", web.Stylesheet())
}

func (lc *ListingController) renderError(c *gin.Context, code int, message string) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := lc.renderer.RenderError(c.Writer, message, c.GetString("trace_id")); err != nil {
		lc.log.Error("error rendering error page", zap.Error(err))
	}
}
