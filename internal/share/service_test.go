package share

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/apostle2t/jobboard/internal/chat"
	"github.com/apostle2t/jobboard/internal/domain"
	"github.com/apostle2t/jobboard/internal/localstore"
)

func seededService(t *testing.T) (*Service, *chat.Store) {
	t.Helper()
	store := chat.NewStore()
	chat.SeedDemo(store)
	return New(store, nil), store
}

func TestShare_ExistingConversation(t *testing.T) {
	svc, store := seededService(t)

	before, _ := store.Find("sarah-johnson")
	msgsBefore := len(store.Messages(before.ID))

	res, err := svc.Share([]string{"sarah-johnson"}, "Check this out", domain.JobRef{ID: "1", Title: "Senior Frontend Developer"})
	if err != nil {
		t.Fatalf("share: %v", err)
	}

	if len(store.Conversations()) != 3 {
		t.Fatalf("share to existing contact must not create conversations, got %d", len(store.Conversations()))
	}
	if res.LastConversationID != before.ID {
		t.Fatalf("expected last conversation %s, got %s", before.ID, res.LastConversationID)
	}

	msgs := store.Messages(before.ID)
	if len(msgs) != msgsBefore+1 {
		t.Fatalf("expected exactly one new message, got %d", len(msgs)-msgsBefore)
	}
	last := msgs[len(msgs)-1]
	if last.Content != "Check this out" {
		t.Fatalf("unexpected content %q", last.Content)
	}
	if last.Type != domain.MessageJobShare {
		t.Fatalf("unexpected type %s", last.Type)
	}
	if last.JobID != "1" {
		t.Fatalf("unexpected jobId %q", last.JobID)
	}
	if last.SenderID != domain.CurrentUserID || last.ReceiverID != "sarah-johnson" {
		t.Fatalf("unexpected endpoints %s -> %s", last.SenderID, last.ReceiverID)
	}
	if last.IsRead {
		t.Fatal("new share must start unread")
	}
}

func TestShare_NewConversationsWithFallbackNote(t *testing.T) {
	svc, store := seededService(t)

	res, err := svc.Share([]string{"alex-rodriguez", "lisa-wang"}, "", domain.JobRef{ID: "4", Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("share: %v", err)
	}

	if len(store.Conversations()) != 5 {
		t.Fatalf("expected 2 new conversations, total 5, got %d", len(store.Conversations()))
	}
	if len(res.ConversationIDs) != 2 {
		t.Fatalf("expected 2 affected conversations, got %d", len(res.ConversationIDs))
	}
	if res.LastConversationID != res.ConversationIDs[1] {
		t.Fatal("last conversation must be the last recipient's")
	}

	for _, userID := range []string{"alex-rodriguez", "lisa-wang"} {
		conv, ok := store.Find(userID)
		if !ok {
			t.Fatalf("conversation with %s missing", userID)
		}
		msgs := store.Messages(conv.ID)
		if len(msgs) != 1 {
			t.Fatalf("expected exactly 1 message for %s, got %d", userID, len(msgs))
		}
		if msgs[0].Content != "Shared a job: Backend Engineer" {
			t.Fatalf("fallback content wrong: %q", msgs[0].Content)
		}
	}
}

func TestShare_DuplicateRecipientsCollapse(t *testing.T) {
	svc, store := seededService(t)

	res, err := svc.Share([]string{"lisa-wang", "lisa-wang", " lisa-wang "}, "hi", domain.JobRef{ID: "2", Title: "UX Designer"})
	if err != nil {
		t.Fatalf("share: %v", err)
	}

	if len(res.ConversationIDs) != 1 {
		t.Fatalf("duplicates must collapse, got %d conversations", len(res.ConversationIDs))
	}
	conv, _ := store.Find("lisa-wang")
	if got := len(store.Messages(conv.ID)); got != 1 {
		t.Fatalf("expected a single message, got %d", got)
	}
}

func TestShare_SecondCallAppendsAgain(t *testing.T) {
	svc, store := seededService(t)
	job := domain.JobRef{ID: "7", Title: "SRE"}

	if _, err := svc.Share([]string{"mike-chen"}, "once", job); err != nil {
		t.Fatalf("share: %v", err)
	}
	if _, err := svc.Share([]string{"mike-chen"}, "once", job); err != nil {
		t.Fatalf("share: %v", err)
	}

	conv, _ := store.Find("mike-chen")
	shares := 0
	for _, m := range store.Messages(conv.ID) {
		if m.Type == domain.MessageJobShare && m.JobID == "7" {
			shares++
		}
	}
	if shares != 2 {
		t.Fatalf("share is not idempotent by design, expected 2 messages, got %d", shares)
	}
}

func TestShare_Validation(t *testing.T) {
	svc, _ := seededService(t)

	if _, err := svc.Share(nil, "hi", domain.JobRef{ID: "1", Title: "x"}); !errors.Is(err, domain.ErrEmptyRecipients) {
		t.Fatalf("expected ErrEmptyRecipients, got %v", err)
	}
	if _, err := svc.Share([]string{"  "}, "hi", domain.JobRef{ID: "1", Title: "x"}); !errors.Is(err, domain.ErrEmptyRecipients) {
		t.Fatalf("expected ErrEmptyRecipients for blank ids, got %v", err)
	}
	if _, err := svc.Share([]string{"a"}, "hi", domain.JobRef{Title: "x"}); !errors.Is(err, domain.ErrInvalidJob) {
		t.Fatalf("expected ErrInvalidJob without id, got %v", err)
	}
	if _, err := svc.Share([]string{"a"}, "hi", domain.JobRef{ID: "1"}); !errors.Is(err, domain.ErrInvalidJob) {
		t.Fatalf("expected ErrInvalidJob without title, got %v", err)
	}
}

func TestShare_UnknownRecipientStillGetsConversation(t *testing.T) {
	svc, store := seededService(t)

	res, err := svc.Share([]string{"nobody-here"}, "", domain.JobRef{ID: "9", Title: "Data Engineer"})
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if _, ok := store.Find("nobody-here"); !ok {
		t.Fatal("conversation for unknown id must still be created")
	}
	if res.LastConversationID == "" {
		t.Fatal("missing last conversation id")
	}
}

func TestSendText(t *testing.T) {
	svc, store := seededService(t)
	conv, _ := store.Find("sarah-johnson")

	msg, err := svc.SendText(conv.ID, "  see you tomorrow  ")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Content != "see you tomorrow" {
		t.Fatalf("content not trimmed: %q", msg.Content)
	}
	if msg.Type != domain.MessageText {
		t.Fatalf("unexpected type %s", msg.Type)
	}
	if msg.ReceiverID != "sarah-johnson" {
		t.Fatalf("unexpected receiver %s", msg.ReceiverID)
	}

	if _, err := svc.SendText(conv.ID, "   "); !errors.Is(err, domain.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := svc.SendText("nope", "hi"); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestSubscribe_NotifiesAndUnsubscribes(t *testing.T) {
	svc, _ := seededService(t)

	var calls int
	var lastSnapshot []domain.Conversation
	unsub := svc.Subscribe(func(convs []domain.Conversation) {
		calls++
		lastSnapshot = convs
	})

	if _, err := svc.Share([]string{"lisa-wang"}, "", domain.JobRef{ID: "3", Title: "QA"}); err != nil {
		t.Fatalf("share: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}
	if len(lastSnapshot) != 4 {
		t.Fatalf("snapshot should carry all conversations, got %d", len(lastSnapshot))
	}

	unsub()
	if _, err := svc.Share([]string{"lisa-wang"}, "", domain.JobRef{ID: "3", Title: "QA"}); err != nil {
		t.Fatalf("share: %v", err)
	}
	if calls != 1 {
		t.Fatalf("listener fired after unsubscribe, calls=%d", calls)
	}
}

func TestDrainPending(t *testing.T) {
	mirror, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("open mirror: %v", err)
	}

	store := chat.NewStore()
	chat.SeedDemo(store)
	svc := New(store, mirror)

	if _, ok := svc.DrainPending(); ok {
		t.Fatal("nothing pending yet")
	}

	if err := svc.SavePending(domain.Job{ID: "5", Title: "Platform Engineer"}); err != nil {
		t.Fatalf("save pending: %v", err)
	}

	convID, ok := svc.DrainPending()
	if !ok {
		t.Fatal("expected a pending share to drain")
	}

	msgs := store.Messages(convID)
	last := msgs[len(msgs)-1]
	if last.Type != domain.MessageJobShare || last.JobID != "5" {
		t.Fatalf("pending share not delivered: %+v", last)
	}
	if last.Content != "Shared a job: Platform Engineer" {
		t.Fatalf("unexpected content %q", last.Content)
	}

	// record is consumed
	if _, ok := svc.DrainPending(); ok {
		t.Fatal("pending share must drain once")
	}
}
