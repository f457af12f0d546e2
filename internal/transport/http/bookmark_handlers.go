package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apostle2t/jobboard/internal/domain"
	"github.com/apostle2t/jobboard/internal/localstore"
	"github.com/apostle2t/jobboard/pkg/httputil"
)

type BookmarkHandlers struct {
	Mirror *localstore.Store
}

// GET /bookmarks
func (h *BookmarkHandlers) List(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, BookmarksResponse{Items: h.Mirror.Bookmarks()})
}

// POST /bookmarks
func (h *BookmarkHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var job domain.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "invalid JSON", nil)
		return
	}
	if job.ID == "" {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "job id is required", nil)
		return
	}

	if err := h.Mirror.AddBookmark(job); err != nil {
		slog.Error("handler.AddBookmark:", slog.Any("err", err))
		httputil.Error(r.Context(), w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httputil.JSON(w, http.StatusCreated, job)
}

// DELETE /bookmarks/{id}
func (h *BookmarkHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Mirror.RemoveBookmark(chi.URLParam(r, "id")); err != nil {
		slog.Error("handler.RemoveBookmark:", slog.Any("err", err))
		httputil.Error(r.Context(), w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httputil.OK(w, map[string]string{"status": "removed"})
}

// DELETE /bookmarks
func (h *BookmarkHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Mirror.ClearBookmarks(); err != nil {
		slog.Error("handler.ClearBookmarks:", slog.Any("err", err))
		httputil.Error(r.Context(), w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	httputil.OK(w, map[string]string{"status": "cleared"})
}
