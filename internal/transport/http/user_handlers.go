package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apostle2t/jobboard/internal/app/users"
	"github.com/apostle2t/jobboard/pkg/httputil"
)

type UserHandlers struct {
	Users users.Client
}

// GET /users/me
func (h *UserHandlers) Me(w http.ResponseWriter, r *http.Request) {
	out, err := h.Users.Me(r.Context())
	if err != nil {
		writeUpstreamError(w, r, "fetch current user failed", err)
		return
	}
	httputil.OK(w, out)
}

// GET /users/{id}
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	out, err := h.Users.Get(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, r, "fetch user failed", err)
		return
	}
	httputil.OK(w, out)
}

// PUT /users/{id}
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var in users.UpdateData
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "invalid JSON", nil)
		return
	}

	out, err := h.Users.Update(r.Context(), id, in)
	if err != nil {
		writeUpstreamError(w, r, "update user failed", err)
		return
	}
	httputil.OK(w, out)
}

// POST /users/{id}/profile-picture
func (h *UserHandlers) UploadPicture(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "file field is required", nil)
		return
	}
	defer func() { _ = file.Close() }()

	out, err := h.Users.UploadProfilePicture(r.Context(), id, header.Filename, file)
	if err != nil {
		writeUpstreamError(w, r, "upload profile picture failed", err)
		return
	}
	httputil.OK(w, out)
}

// DELETE /users/{id}/profile-picture
func (h *UserHandlers) DeletePicture(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.Users.DeleteProfilePicture(r.Context(), id); err != nil {
		writeUpstreamError(w, r, "delete profile picture failed", err)
		return
	}
	httputil.OK(w, map[string]string{"status": "deleted"})
}

// DELETE /users/{id}
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		writeUpstreamError(w, r, "delete user failed", err)
		return
	}
	httputil.OK(w, map[string]string{"status": "deleted"})
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "invalid user id", nil)
		return 0, false
	}
	return id, true
}
