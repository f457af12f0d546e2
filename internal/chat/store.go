package chat

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apostle2t/jobboard/internal/domain"
)

// Store owns the canonical conversation and message collections for the
// lifetime of the process. All access goes through its methods; the mutex
// makes the find-or-create step self-enforcing, so at most one conversation
// ever exists per unordered participant pair.
type Store struct {
	mu            sync.Mutex
	conversations []*domain.Conversation
	messages      []domain.Message
}

func NewStore() *Store {
	return &Store{}
}

// Find returns the conversation between the current user and userID.
func (s *Store) Find(userID string) (domain.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.findLocked(userID); c != nil {
		return clone(c), true
	}
	return domain.Conversation{}, false
}

// Upsert returns the conversation with userID, creating it when absent.
// Recipient ids are not validated against the directory: a conversation is
// created even for an unknown id.
func (s *Store) Upsert(userID string) domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.findLocked(userID); c != nil {
		return clone(c)
	}

	c := &domain.Conversation{
		ID:           "conv-" + uuid.NewString(),
		Participants: [2]string{domain.CurrentUserID, userID},
		UnreadCount:  0,
		UpdatedAt:    time.Now(),
	}
	s.conversations = append(s.conversations, c)
	return clone(c)
}

// Append adds msg to the global message collection and refreshes the
// conversation's lastMessage/updatedAt cache.
func (s *Store) Append(conversationID string, msg domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(conversationID)
	if c == nil {
		return domain.ErrConversationNotFound
	}

	s.messages = append(s.messages, msg)

	last := msg
	c.LastMessage = &last
	c.UpdatedAt = msg.Timestamp
	if msg.SenderID != domain.CurrentUserID && !msg.IsRead {
		c.UnreadCount++
	}
	return nil
}

// Messages rehydrates the visible message list of a conversation by
// filtering the global collection for the conversation's participant pair.
// Insertion order is preserved; an unknown id yields an empty slice.
func (s *Store) Messages(conversationID string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(conversationID)
	if c == nil {
		return []domain.Message{}
	}

	out := make([]domain.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if c.Has(m.SenderID) && c.Has(m.ReceiverID) {
			out = append(out, m)
		}
	}
	return out
}

// Conversations returns a snapshot sorted by most recent activity.
func (s *Store) Conversations() []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, clone(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Get returns a conversation by id.
func (s *Store) Get(conversationID string) (domain.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.getLocked(conversationID); c != nil {
		return clone(c), true
	}
	return domain.Conversation{}, false
}

// MarkRead flips the read flag on inbound messages of a conversation and
// zeroes its unread counter.
func (s *Store) MarkRead(conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(conversationID)
	if c == nil {
		return domain.ErrConversationNotFound
	}

	for i := range s.messages {
		m := &s.messages[i]
		if c.Has(m.SenderID) && c.Has(m.ReceiverID) && m.SenderID != domain.CurrentUserID {
			m.IsRead = true
		}
	}
	c.UnreadCount = 0
	if c.LastMessage != nil && c.LastMessage.SenderID != domain.CurrentUserID {
		c.LastMessage.IsRead = true
	}
	return nil
}

func (s *Store) findLocked(userID string) *domain.Conversation {
	for _, c := range s.conversations {
		if c.Has(domain.CurrentUserID) && c.Has(userID) {
			return c
		}
	}
	return nil
}

func (s *Store) getLocked(conversationID string) *domain.Conversation {
	for _, c := range s.conversations {
		if c.ID == conversationID {
			return c
		}
	}
	return nil
}

// clone detaches a conversation from store-owned memory. LastMessage is
// duplicated so a snapshot can be read outside the store mutex while
// MarkRead mutates the original in place.
func clone(c *domain.Conversation) domain.Conversation {
	out := *c
	if c.LastMessage != nil {
		last := *c.LastMessage
		out.LastMessage = &last
	}
	return out
}
