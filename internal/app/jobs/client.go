package jobs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/apostle2t/jobboard/internal/domain"
	"github.com/apostle2t/jobboard/pkg/httpclient"
)

// Client is the jobs API consumed by the transport layer. Job data is never
// persisted locally; every read goes to the upstream backend.
type Client interface {
	All(ctx context.Context, params SearchParams) ([]domain.Job, error)
	Recent(ctx context.Context, limit int) ([]domain.Job, error)
	Search(ctx context.Context, params SearchParams) ([]domain.Job, error)
	English(ctx context.Context, params SearchParams) ([]domain.Job, error)
}

type client struct {
	http *httpclient.Client
}

func New(http *httpclient.Client) Client {
	return &client{http: http}
}

func (c *client) All(ctx context.Context, params SearchParams) ([]domain.Job, error) {
	return c.list(ctx, "/api/jobs/all", params)
}

func (c *client) Search(ctx context.Context, params SearchParams) ([]domain.Job, error) {
	return c.list(ctx, "/api/jobs/search", params)
}

func (c *client) English(ctx context.Context, params SearchParams) ([]domain.Job, error) {
	return c.list(ctx, "/api/jobs/english", params)
}

func (c *client) Recent(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out []domain.Job
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/jobs/recent", q, nil, &out); err != nil {
		return nil, fmt.Errorf("jobs.Recent: %w", err)
	}
	return out, nil
}

func (c *client) list(ctx context.Context, path string, params SearchParams) ([]domain.Job, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	if params.Keyword != "" {
		q.Set("keyword", params.Keyword)
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}

	var out []domain.Job
	if err := c.http.DoJSON(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, fmt.Errorf("jobs list %s: %w", path, err)
	}
	return out, nil
}
