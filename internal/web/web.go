// Package web renders the directory page from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"slices"

	"aroundtown/internal/models/request_models"
	"aroundtown/internal/models/response_models"
	"aroundtown/internal/services"
	"aroundtown/pkg/charts"
)

//go:embed templates/*.html static/styles.css
var assets embed.FS

// Stylesheet returns the embedded stylesheet verbatim.
func Stylesheet() []byte {
	css, err := assets.ReadFile("static/styles.css")
	if err != nil {
		// Embedded at build time; cannot be missing.
		panic(err)
	}
	return css
}

type RendererConfig struct {
	SubmitGroupURL string
	CardColumns    int
}

type Renderer struct {
	tpl       *template.Template
	css       template.CSS
	submitURL string
	columns   int
}

type metricOption struct {
	Value string
	Label string
}

type pageData struct {
	CSS       template.CSS
	SubmitURL string
	Page      *response_models.ListingPage
	Columns   [][]response_models.GroupCard
	Metrics   []metricOption
	ChartURL  string
}

type errorData struct {
	CSS     template.CSS
	Message string
	TraceID string
}

func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	if cfg.CardColumns < 1 {
		return nil, fmt.Errorf("card columns must be positive, got %d", cfg.CardColumns)
	}
	tpl, err := template.New("web").Funcs(template.FuncMap{
		"contains": func(list []string, v string) bool { return slices.Contains(list, v) },
	}).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		tpl:       tpl,
		css:       template.CSS(Stylesheet()),
		submitURL: cfg.SubmitGroupURL,
		columns:   cfg.CardColumns,
	}, nil
}

// RenderPage writes the full directory page. In the insights view the chart
// is referenced as an image so its labels never execute in the page.
func (r *Renderer) RenderPage(w io.Writer, page *response_models.ListingPage) error {
	data := pageData{
		CSS:       r.css,
		SubmitURL: r.submitURL,
		Page:      page,
		Columns:   Columns(page.List.Groups, r.columns),
	}
	for _, m := range request_models.Metrics {
		data.Metrics = append(data.Metrics, metricOption{Value: string(m), Label: services.MetricLabel(m)})
	}

	if page.View == request_models.ViewInsights && page.SelectedInsight().Total > 0 {
		data.ChartURL = ChartURL(page.Metric, page.Filter)
	}

	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) RenderError(w io.Writer, message, traceID string) error {
	return r.tpl.ExecuteTemplate(w, "error", errorData{CSS: r.css, Message: message, TraceID: traceID})
}

// ChartSVG draws one insight. It returns charts.ErrNoData for an empty set.
func ChartSVG(in response_models.Insight) ([]byte, error) {
	points := make([]charts.Point, 0, len(in.Points))
	for _, p := range in.Points {
		points = append(points, charts.Point{Label: p.Label, Count: p.Count})
	}
	var buf bytes.Buffer
	if err := charts.RenderSVG(&buf, in.Chart, in.Title, points); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ChartURL is the chart endpoint for metric under filter.
func ChartURL(metric string, filter request_models.GroupFilter) string {
	q := url.Values{}
	q.Set("category", filter.Category)
	q.Set("area", filter.Area)
	for _, a := range filter.AgeGroups {
		q.Add("age_group", a)
	}
	if filter.Search != "" {
		q.Set("q", filter.Search)
	}
	return "/charts/" + url.PathEscape(metric) + ".svg?" + q.Encode()
}

// Columns deals cards round-robin: card i lands in column i mod n.
func Columns(cards []response_models.GroupCard, n int) [][]response_models.GroupCard {
	if n < 1 {
		n = 1
	}
	cols := make([][]response_models.GroupCard, n)
	for i, card := range cards {
		cols[i%n] = append(cols[i%n], card)
	}
	return cols
}
