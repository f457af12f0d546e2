package chat

import (
	"testing"
	"time"

	"github.com/apostle2t/jobboard/internal/domain"
)

func textMsg(id, sender, receiver, content string) domain.Message {
	return domain.Message{
		ID:         id,
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		Type:       domain.MessageText,
		Timestamp:  time.Now(),
	}
}

func TestUpsert_CreatesOnce(t *testing.T) {
	s := NewStore()

	first := s.Upsert("sarah-johnson")
	second := s.Upsert("sarah-johnson")

	if first.ID != second.ID {
		t.Fatalf("upsert created a second conversation for the same pair: %s vs %s", first.ID, second.ID)
	}
	if got := len(s.Conversations()); got != 1 {
		t.Fatalf("expected 1 conversation, got %d", got)
	}
}

func TestUpsert_PairUniquenessAcrossRecipients(t *testing.T) {
	s := NewStore()

	for _, id := range []string{"a", "b", "a", "c", "b", "a"} {
		s.Upsert(id)
	}

	convs := s.Conversations()
	if len(convs) != 3 {
		t.Fatalf("expected 3 conversations, got %d", len(convs))
	}

	seen := map[[2]string]bool{}
	for _, c := range convs {
		pair := c.Participants
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		if seen[pair] {
			t.Fatalf("duplicate participant pair %v", pair)
		}
		seen[pair] = true
	}
}

func TestFind_MissingPair(t *testing.T) {
	s := NewStore()
	s.Upsert("mike-chen")

	if _, ok := s.Find("sarah-johnson"); ok {
		t.Fatal("found a conversation that was never created")
	}
	if _, ok := s.Find("mike-chen"); !ok {
		t.Fatal("existing conversation not found")
	}
}

func TestAppend_UpdatesConversationCache(t *testing.T) {
	s := NewStore()
	conv := s.Upsert("emily-davis")

	msg := textMsg("m1", domain.CurrentUserID, "emily-davis", "hello")
	if err := s.Append(conv.ID, msg); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, ok := s.Get(conv.ID)
	if !ok {
		t.Fatal("conversation disappeared")
	}
	if got.LastMessage == nil || got.LastMessage.ID != "m1" {
		t.Fatalf("lastMessage not updated: %+v", got.LastMessage)
	}
	if !got.UpdatedAt.Equal(msg.Timestamp) {
		t.Fatalf("updatedAt not refreshed: %v", got.UpdatedAt)
	}
	if got.UnreadCount != 0 {
		t.Fatalf("outbound message must not bump unread, got %d", got.UnreadCount)
	}
}

func TestAppend_InboundBumpsUnread(t *testing.T) {
	s := NewStore()
	conv := s.Upsert("emily-davis")

	if err := s.Append(conv.ID, textMsg("m1", "emily-davis", domain.CurrentUserID, "hi")); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, _ := s.Get(conv.ID)
	if got.UnreadCount != 1 {
		t.Fatalf("expected unread 1, got %d", got.UnreadCount)
	}

	if err := s.MarkRead(conv.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	got, _ = s.Get(conv.ID)
	if got.UnreadCount != 0 {
		t.Fatalf("unread not reset, got %d", got.UnreadCount)
	}
	for _, m := range s.Messages(conv.ID) {
		if m.SenderID != domain.CurrentUserID && !m.IsRead {
			t.Fatalf("inbound message %s still unread", m.ID)
		}
	}
}

func TestAppend_UnknownConversation(t *testing.T) {
	s := NewStore()
	if err := s.Append("nope", textMsg("m1", domain.CurrentUserID, "x", "hi")); err == nil {
		t.Fatal("expected error for unknown conversation")
	}
}

func TestMessages_OrderPreservingAndDeterministic(t *testing.T) {
	s := NewStore()
	conv := s.Upsert("sarah-johnson")
	other := s.Upsert("mike-chen")

	s.Append(conv.ID, textMsg("m1", domain.CurrentUserID, "sarah-johnson", "one"))
	s.Append(other.ID, textMsg("x1", domain.CurrentUserID, "mike-chen", "noise"))
	s.Append(conv.ID, textMsg("m2", "sarah-johnson", domain.CurrentUserID, "two"))
	s.Append(conv.ID, textMsg("m3", domain.CurrentUserID, "sarah-johnson", "three"))

	first := s.Messages(conv.ID)
	second := s.Messages(conv.ID)

	if len(first) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(first))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if first[i].ID != want {
			t.Fatalf("message %d: expected %s, got %s", i, want, first[i].ID)
		}
	}
	if len(second) != len(first) {
		t.Fatalf("rehydration not deterministic: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("rehydration order changed at %d", i)
		}
	}
}

func TestMessages_UnknownConversationIsEmpty(t *testing.T) {
	s := NewStore()
	SeedDemo(s)

	msgs := s.Messages("nonexistent-id")
	if msgs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no messages, got %d", len(msgs))
	}
}

func TestConversations_SnapshotDetached(t *testing.T) {
	s := NewStore()
	SeedDemo(s)

	var emily *domain.Message
	for _, c := range s.Conversations() {
		if c.ID == "conv-3" {
			emily = c.LastMessage
		}
	}
	if emily == nil || emily.IsRead {
		t.Fatalf("seed expects an unread last message with emily-davis, got %+v", emily)
	}

	if err := s.MarkRead("conv-3"); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	if emily.IsRead {
		t.Fatal("snapshot must not observe store mutations")
	}
	got, _ := s.Get("conv-3")
	if got.LastMessage == nil || !got.LastMessage.IsRead {
		t.Fatal("store-side last message must be marked read")
	}
}

func TestConversations_SnapshotSafeForConcurrentReaders(t *testing.T) {
	s := NewStore()
	SeedDemo(s)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = s.Append("conv-3", textMsg("r", "emily-davis", domain.CurrentUserID, "ping"))
			_ = s.MarkRead("conv-3")
		}
	}()

	for i := 0; i < 200; i++ {
		for _, c := range s.Conversations() {
			if c.LastMessage != nil {
				_ = c.LastMessage.IsRead
			}
		}
	}
	<-done
}

func TestSeedDemo(t *testing.T) {
	s := NewStore()
	SeedDemo(s)

	convs := s.Conversations()
	if len(convs) != 3 {
		t.Fatalf("expected 3 seeded conversations, got %d", len(convs))
	}

	sarah, ok := s.Find("sarah-johnson")
	if !ok {
		t.Fatal("seeded conversation with sarah-johnson missing")
	}
	if got := len(s.Messages(sarah.ID)); got != 5 {
		t.Fatalf("expected 5 messages in conv-1, got %d", got)
	}

	emily, _ := s.Find("emily-davis")
	if emily.UnreadCount != 1 {
		t.Fatalf("expected 1 unread with emily-davis, got %d", emily.UnreadCount)
	}
}
