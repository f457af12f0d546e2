package domain

import "time"

// Conversation is a one-to-one thread between the current user and another
// chat user. At most one conversation exists per unordered participant pair.
type Conversation struct {
	ID           string    `json:"id"`
	Participants [2]string `json:"participants"`
	LastMessage  *Message  `json:"lastMessage,omitempty"`
	UnreadCount  int       `json:"unreadCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Has reports whether userID is one of the two participants.
func (c *Conversation) Has(userID string) bool {
	return c.Participants[0] == userID || c.Participants[1] == userID
}

// Other returns the participant that is not the current user.
func (c *Conversation) Other() string {
	if c.Participants[0] == CurrentUserID {
		return c.Participants[1]
	}
	return c.Participants[0]
}
