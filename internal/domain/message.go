package domain

import "time"

type MessageType string

const (
	MessageText     MessageType = "text"
	MessageJobShare MessageType = "job_share"
)

type Message struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"senderId"`
	ReceiverID string      `json:"receiverId"`
	Content    string      `json:"content"`
	Type       MessageType `json:"type"`
	JobID      string      `json:"jobId,omitempty"`
	IsRead     bool        `json:"isRead"`
	Timestamp  time.Time   `json:"timestamp"`
}
