package http

import (
	"time"

	"github.com/apostle2t/jobboard/internal/domain"
)

type ShareRequest struct {
	UserIDs []string      `json:"userIds"`
	Message string        `json:"message"`
	Job     domain.JobRef `json:"job"`
}

type PendingShareRequest struct {
	Job domain.Job `json:"job"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type ConversationItem struct {
	ID          string          `json:"id"`
	Participant domain.ChatUser `json:"participant"`
	LastMessage *domain.Message `json:"lastMessage,omitempty"`
	UnreadCount int             `json:"unreadCount"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ConversationsResponse struct {
	Items    []ConversationItem `json:"items"`
	Selected string             `json:"selected,omitempty"`
}

type MessagesResponse struct {
	Items []domain.Message `json:"items"`
}

type UsersResponse struct {
	Items []domain.ChatUser `json:"items"`
}

type BookmarksResponse struct {
	Items []domain.Job `json:"items"`
}
