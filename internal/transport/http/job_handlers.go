package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/apostle2t/jobboard/internal/app/jobs"
	"github.com/apostle2t/jobboard/internal/domain"
	"github.com/apostle2t/jobboard/pkg/errs"
	"github.com/apostle2t/jobboard/pkg/httputil"
)

type JobHandlers struct {
	Jobs jobs.Client
}

// GET /jobs?page=&keyword=&location=
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Jobs.All)
}

// GET /jobs/search?page=&keyword=&location=
func (h *JobHandlers) Search(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Jobs.Search)
}

// GET /jobs/english?page=&keyword=&location=
func (h *JobHandlers) English(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Jobs.English)
}

// GET /jobs/recent?limit=
func (h *JobHandlers) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	items, err := h.Jobs.Recent(r.Context(), limit)
	if err != nil {
		writeUpstreamError(w, r, "fetch recent jobs failed", err)
		return
	}
	httputil.OK(w, items)
}

func (h *JobHandlers) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, jobs.SearchParams) ([]domain.Job, error)) {
	params := jobs.SearchParams{
		Keyword:  r.URL.Query().Get("keyword"),
		Location: r.URL.Query().Get("location"),
	}
	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			params.Page = n
		}
	}

	items, err := fetch(r.Context(), params)
	if err != nil {
		writeUpstreamError(w, r, "fetch jobs failed", err)
		return
	}
	httputil.OK(w, items)
}

func writeUpstreamError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := errs.ToHTTP(err)
	if status >= http.StatusInternalServerError {
		slog.Error(msg, slog.Any("err", err))
	}
	httputil.Error(r.Context(), w, status, msg, map[string]any{"reason": err.Error()})
}
