package domain

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmptyRecipients      = errors.New("at least one recipient is required")
	ErrInvalidJob           = errors.New("job must carry an id and a title")
	ErrEmptyMessage         = errors.New("empty message")
	ErrMessageTooLong       = errors.New("message too long")
)
