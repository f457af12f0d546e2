package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apostle2t/jobboard/internal/chat"
	"github.com/apostle2t/jobboard/internal/directory"
	"github.com/apostle2t/jobboard/internal/domain"
	"github.com/apostle2t/jobboard/internal/share"
	"github.com/apostle2t/jobboard/pkg/httputil"
)

type ChatHandlers struct {
	Dir   *directory.Directory
	Store *chat.Store
	Share *share.Service
}

// GET /chat/users?query=
func (h *ChatHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.Dir.Search(r.URL.Query().Get("query"))
	httputil.OK(w, UsersResponse{Items: users})
}

// GET /chat/conversations
//
// Listing drains a pending share first, mirroring how the messages screen
// delivered a relayed job on mount; the touched conversation comes back as
// the selected one.
func (h *ChatHandlers) ListConversations(w http.ResponseWriter, r *http.Request) {
	selected, _ := h.Share.DrainPending()

	convs := h.Store.Conversations()
	resp := ConversationsResponse{
		Items:    make([]ConversationItem, 0, len(convs)),
		Selected: selected,
	}
	for _, c := range convs {
		resp.Items = append(resp.Items, h.conversationItem(c))
	}

	httputil.OK(w, resp)
}

// GET /chat/conversations/{id}/messages
func (h *ChatHandlers) GetMessages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// an unknown conversation id yields an empty list, not an error
	httputil.OK(w, MessagesResponse{Items: h.Store.Messages(id)})
}

// POST /chat/conversations/{id}/messages
func (h *ChatHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "invalid JSON", nil)
		return
	}

	msg, err := h.Share.SendText(chi.URLParam(r, "id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConversationNotFound):
			httputil.Error(r.Context(), w, http.StatusNotFound, "conversation not found", nil)
		case errors.Is(err, domain.ErrEmptyMessage), errors.Is(err, domain.ErrMessageTooLong):
			httputil.Error(r.Context(), w, http.StatusBadRequest, err.Error(), nil)
		default:
			slog.Error("handler.SendMessage:", slog.Any("err", err))
			httputil.Error(r.Context(), w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	httputil.JSON(w, http.StatusCreated, msg)
}

// POST /chat/conversations/{id}/read
func (h *ChatHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.MarkRead(chi.URLParam(r, "id")); err != nil {
		httputil.Error(r.Context(), w, http.StatusNotFound, "conversation not found", nil)
		return
	}
	httputil.OK(w, map[string]string{"status": "read"})
}

// POST /chat/share
func (h *ChatHandlers) ShareJob(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "invalid JSON", nil)
		return
	}

	res, err := h.Share.Share(req.UserIDs, req.Message, req.Job)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyRecipients), errors.Is(err, domain.ErrInvalidJob):
			httputil.Error(r.Context(), w, http.StatusBadRequest, err.Error(), nil)
		default:
			slog.Error("handler.ShareJob:", slog.Any("err", err))
			httputil.Error(r.Context(), w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	httputil.OK(w, res)
}

// POST /chat/pending-share
func (h *ChatHandlers) SavePendingShare(w http.ResponseWriter, r *http.Request) {
	var req PendingShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(r.Context(), w, http.StatusBadRequest, "invalid JSON", nil)
		return
	}
	if req.Job.ID == "" || req.Job.Title == "" {
		httputil.Error(r.Context(), w, http.StatusBadRequest, domain.ErrInvalidJob.Error(), nil)
		return
	}

	if err := h.Share.SavePending(req.Job); err != nil {
		slog.Error("handler.SavePendingShare:", slog.Any("err", err))
		httputil.Error(r.Context(), w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	httputil.JSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
}

func (h *ChatHandlers) conversationItem(c domain.Conversation) ConversationItem {
	other := c.Other()
	participant, err := h.Dir.User(other)
	if err != nil {
		// shares to unknown ids still create conversations; show the bare id
		participant = domain.ChatUser{ID: other, Name: other}
	}
	return ConversationItem{
		ID:          c.ID,
		Participant: participant,
		LastMessage: c.LastMessage,
		UnreadCount: c.UnreadCount,
		UpdatedAt:   c.UpdatedAt,
	}
}
