package share

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/apostle2t/jobboard/internal/chat"
	"github.com/apostle2t/jobboard/internal/domain"
	"github.com/apostle2t/jobboard/internal/localstore"
)

// Service fans a job share out to one or more recipients: every recipient
// ends up with exactly one new job-share message in its conversation with
// the current user, conversations being created on first contact. It is
// constructed once at startup and injected into the transport layer.
type Service struct {
	store  *chat.Store
	mirror *localstore.Store

	mu      sync.Mutex
	subs    map[int]func([]domain.Conversation)
	nextSub int
}

func New(store *chat.Store, mirror *localstore.Store) *Service {
	return &Service{
		store:  store,
		mirror: mirror,
		subs:   map[int]func([]domain.Conversation){},
	}
}

// Result reports which conversations a share touched so a caller can
// refresh its view and auto-select the last one.
type Result struct {
	ConversationIDs    []string `json:"conversationIds"`
	LastConversationID string   `json:"lastConversationId"`
}

// Share delivers one job-share message per distinct recipient, in input
// order. Duplicate ids collapse to a single recipient; recipient ids are
// not validated against the directory. Not idempotent: calling twice with
// the same arguments produces two messages per recipient.
func (s *Service) Share(recipients []string, note string, job domain.JobRef) (Result, error) {
	if job.ID == "" || job.Title == "" {
		return Result{}, domain.ErrInvalidJob
	}

	ids := lo.Uniq(lo.FilterMap(recipients, func(id string, _ int) (string, bool) {
		id = strings.TrimSpace(id)
		return id, id != ""
	}))
	if len(ids) == 0 {
		return Result{}, domain.ErrEmptyRecipients
	}

	content := strings.TrimSpace(note)
	if content == "" {
		content = "Shared a job: " + job.Title
	}

	res := Result{ConversationIDs: make([]string, 0, len(ids))}
	for _, userID := range ids {
		conv := s.store.Upsert(userID)

		msg := domain.Message{
			ID:         "msg-" + uuid.NewString(),
			SenderID:   domain.CurrentUserID,
			ReceiverID: userID,
			Content:    content,
			Type:       domain.MessageJobShare,
			JobID:      job.ID,
			IsRead:     false,
			Timestamp:  time.Now(),
		}
		if err := s.store.Append(conv.ID, msg); err != nil {
			return Result{}, fmt.Errorf("append to %s: %w", conv.ID, err)
		}

		res.ConversationIDs = append(res.ConversationIDs, conv.ID)
		res.LastConversationID = conv.ID
	}

	slog.Info("job shared", "job_id", job.ID, "recipients", len(ids))
	s.notify()
	return res, nil
}

// SendText composes a plain-text message into an existing conversation.
func (s *Service) SendText(conversationID, content string) (domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}
	if len(content) > 4000 {
		return domain.Message{}, domain.ErrMessageTooLong
	}

	conv, ok := s.store.Get(conversationID)
	if !ok {
		return domain.Message{}, domain.ErrConversationNotFound
	}

	msg := domain.Message{
		ID:         "msg-" + uuid.NewString(),
		SenderID:   domain.CurrentUserID,
		ReceiverID: conv.Other(),
		Content:    content,
		Type:       domain.MessageText,
		IsRead:     false,
		Timestamp:  time.Now(),
	}
	if err := s.store.Append(conversationID, msg); err != nil {
		return domain.Message{}, err
	}

	s.notify()
	return msg, nil
}

// SavePending stores a share for later delivery. This is the degraded relay
// used when the live fan-out path is unavailable to the caller.
func (s *Service) SavePending(job domain.Job) error {
	if s.mirror == nil {
		return nil
	}
	return s.mirror.SavePendingShare(job)
}

// DrainPending delivers a stored pending share into the most recently
// active conversation and clears the record. It returns the touched
// conversation id when a record was present.
func (s *Service) DrainPending() (string, bool) {
	if s.mirror == nil {
		return "", false
	}
	job, ok := s.mirror.TakePendingShare()
	if !ok {
		return "", false
	}

	convs := s.store.Conversations()
	if len(convs) == 0 {
		slog.Warn("pending share dropped, no conversation to deliver into", "job_id", job.ID)
		return "", false
	}
	target := convs[0]

	msg := domain.Message{
		ID:         "msg-" + uuid.NewString(),
		SenderID:   domain.CurrentUserID,
		ReceiverID: target.Other(),
		Content:    "Shared a job: " + job.Title,
		Type:       domain.MessageJobShare,
		JobID:      job.ID,
		IsRead:     false,
		Timestamp:  time.Now(),
	}
	if err := s.store.Append(target.ID, msg); err != nil {
		slog.Error("deliver pending share failed", "err", err)
		return "", false
	}

	s.notify()
	return target.ID, true
}

// Subscribe registers a conversation-update listener and returns its
// unsubscribe func. Listeners fire after every share or send.
func (s *Service) Subscribe(fn func([]domain.Conversation)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Service) notify() {
	s.mu.Lock()
	fns := lo.Values(s.subs)
	s.mu.Unlock()

	if len(fns) == 0 {
		return
	}
	snapshot := s.store.Conversations()
	for _, fn := range fns {
		fn(snapshot)
	}
}
