package domain

import "time"

// CurrentUserID is the sentinel id for the signed-in user in any
// conversation participant pair.
const CurrentUserID = "current-user"

type ChatUser struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Avatar   string     `json:"avatar,omitempty"`
	Title    string     `json:"title,omitempty"`
	Company  string     `json:"company,omitempty"`
	IsOnline bool       `json:"isOnline"`
	LastSeen *time.Time `json:"lastSeen,omitempty"`
}
