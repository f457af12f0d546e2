package http

import (
	"encoding/json"
	"net/http"

	appauth "github.com/apostle2t/jobboard/internal/app/auth"
	"github.com/apostle2t/jobboard/pkg/httputil"
)

type AuthHandlers struct {
	Auth appauth.Client
}

func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var in appauth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "invalid JSON", nil)
		return
	}

	token, err := h.Auth.Login(r.Context(), in)
	if err != nil {
		writeUpstreamError(w, r, "login failed", err)
		return
	}

	httputil.OK(w, map[string]string{"token": token})
}

func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var in appauth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "invalid JSON", nil)
		return
	}

	out, err := h.Auth.Register(r.Context(), in)
	if err != nil {
		writeUpstreamError(w, r, "register failed", err)
		return
	}

	httputil.JSON(w, http.StatusCreated, out)
}

func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(); err != nil {
		writeUpstreamError(w, r, "logout failed", err)
		return
	}
	httputil.OK(w, map[string]string{"status": "logged out"})
}
